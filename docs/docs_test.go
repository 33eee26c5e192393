package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocCoversMountedRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]interface{} `json:"paths"`
		Definitions map[string]interface{}            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes := map[string][]string{
		"/":                               {"get"},
		"/auth/signup":                    {"post"},
		"/auth/login":                     {"post"},
		"/actividades":                    {"get", "post"},
		"/actividades/options":            {"get"},
		"/actividades/{actividadID}":      {"get", "put", "delete"},
		"/actividades/{actividadID}/edit": {"get"},
	}

	for path, methods := range routes {
		entry, ok := doc.Paths[path]
		require.True(t, ok, "path %v is not documented", path)
		for _, method := range methods {
			assert.Contains(t, entry, method, "%v %v is not documented", method, path)
		}
	}

	for _, definition := range []string{
		"request.SaveActividadRequest",
		"response.Actividad",
		"response.ActividadSaved",
		"response.EditForm",
		"response.Err",
		"catalog.Catalog",
	} {
		assert.Contains(t, doc.Definitions, definition)
	}
}
