package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/culturarte/actividades-api/docs"
	v1 "github.com/culturarte/actividades-api/internal/api/handler/v1"
	"github.com/culturarte/actividades-api/internal/api/middleware"
	"github.com/culturarte/actividades-api/internal/config"
	"github.com/culturarte/actividades-api/internal/repository"
	"github.com/culturarte/actividades-api/internal/repository/dao"
	"github.com/culturarte/actividades-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	actividadHandler := s.initActividadHandler(db)
	s.MountHandlers(authHandler, actividadHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initActividadHandler(db *gorm.DB) *v1.ActividadHandler {
	actividadDAO := dao.NewActividadDAO(db)
	repo := repository.NewActividadRepository(actividadDAO)
	svc := service.NewActividadService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewActividadHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, actividadHandler *v1.ActividadHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	actividades := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		actividades.GET("/actividades", actividadHandler.HandleListActividades)
		actividades.GET("/actividades/options", actividadHandler.HandleGetCreateForm)
		actividades.POST("/actividades", actividadHandler.HandleCreateActividad)
		actividades.GET("/actividades/:actividadID", actividadHandler.HandleGetActividad)
		actividades.GET("/actividades/:actividadID/edit", actividadHandler.HandleGetEditForm)
		actividades.PUT("/actividades/:actividadID", actividadHandler.HandleUpdateActividad)
		actividades.DELETE("/actividades/:actividadID", actividadHandler.HandleDeleteActividad)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Actividades API"
	docs.SwaggerInfo.Description = "Record management for cultural activities."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
