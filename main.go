package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/culturarte/actividades-api/cmd/app"
)

// @contact.name   API Support
// @contact.email  soporte@culturarte.dev
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
