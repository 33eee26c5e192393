package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturarte/actividades-api/internal/api/middleware"
	"github.com/culturarte/actividades-api/internal/domain"
	"github.com/culturarte/actividades-api/internal/service"
)

type mockActividadService struct {
	records map[uint]domain.Actividad
	nextID  uint
}

func newMockActividadService() *mockActividadService {
	return &mockActividadService{
		records: map[uint]domain.Actividad{},
		nextID:  1,
	}
}

func (m *mockActividadService) ListOwned(_ context.Context, actingUserID uint) ([]domain.Actividad, error) {
	var actividades []domain.Actividad
	for _, a := range m.records {
		if a.OwnerID == actingUserID {
			actividades = append(actividades, a)
		}
	}

	return actividades, nil
}

func (m *mockActividadService) Get(_ context.Context, id, actingUserID uint) (domain.Actividad, error) {
	a, ok := m.records[id]
	if !ok {
		return domain.Actividad{}, service.ErrActividadNotFound
	}
	if a.OwnerID != actingUserID {
		return domain.Actividad{}, service.ErrNotOwner
	}

	return a, nil
}

func (m *mockActividadService) Create(_ context.Context, actividad domain.Actividad, actingUserID uint) (domain.Actividad, error) {
	actividad.ID = m.nextID
	m.nextID++
	actividad.OwnerID = actingUserID
	m.records[actividad.ID] = actividad

	return actividad, nil
}

func (m *mockActividadService) Update(_ context.Context, actividad domain.Actividad, actingUserID uint) (domain.Actividad, error) {
	stored, ok := m.records[actividad.ID]
	if !ok {
		return domain.Actividad{}, service.ErrActividadNotFound
	}
	if stored.OwnerID != actingUserID {
		return domain.Actividad{}, service.ErrNotOwner
	}
	actividad.OwnerID = stored.OwnerID
	m.records[actividad.ID] = actividad

	return actividad, nil
}

func (m *mockActividadService) Delete(_ context.Context, id, actingUserID uint) error {
	stored, ok := m.records[id]
	if !ok {
		return service.ErrActividadNotFound
	}
	if stored.OwnerID != actingUserID {
		return service.ErrNotOwner
	}
	delete(m.records, id)

	return nil
}

type mockUserService struct{}

func (m *mockUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	return domain.User{ID: id, Email: fmt.Sprintf("user%v@example.com", id)}, nil
}

// setupRouter mounts the actividad routes behind a stub middleware acting
// as the given user.
func setupRouter(svc ActividadService, actingUserID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewActividadHandler(svc, &mockUserService{})

	router := gin.New()
	group := router.Group("/api/v1", func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, actingUserID)
		ctx.Next()
	})
	group.GET("/actividades", h.HandleListActividades)
	group.GET("/actividades/options", h.HandleGetCreateForm)
	group.POST("/actividades", h.HandleCreateActividad)
	group.GET("/actividades/:actividadID", h.HandleGetActividad)
	group.GET("/actividades/:actividadID/edit", h.HandleGetEditForm)
	group.PUT("/actividades/:actividadID", h.HandleUpdateActividad)
	group.DELETE("/actividades/:actividadID", h.HandleDeleteActividad)

	return router
}

func seedActividad(svc *mockActividadService, ownerID uint) domain.Actividad {
	created, _ := svc.Create(context.Background(), domain.Actividad{
		ActivityType:  domain.ActivityTypeGeneralModel,
		Institution:   "Casa de la Cultura",
		ActivityName:  "Concierto de trova",
		Day:           time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC),
		TimeOfDay:     "20:00",
		Manifestation: "Música",
		TalentTags:    []string{"Músicos"},
	}, ownerID)

	return created
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func validCreateBody() map[string]interface{} {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	return map[string]interface{}{
		"activity_type":          domain.ActivityTypeGeneralModel,
		"institution":            "Casa de la Cultura",
		"activity_name":          "Peña literaria",
		"day":                    tomorrow,
		"time":                   "19:30",
		"cultural_manifestation": "Literatura",
		"talent_tags":            []string{"Escritores"},
	}
}

func TestHandleListActividades(t *testing.T) {
	svc := newMockActividadService()
	seedActividad(svc, 1)
	seedActividad(svc, 2)

	w := doJSON(setupRouter(svc, 1), http.MethodGet, "/api/v1/actividades", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1, "only the caller's own records are listed")

	record := got[0]
	assert.Equal(t, "General Model", record["type_label"])
	assert.Equal(t, "01/05/2030 20:00", record["full_date_label"])
	assert.Equal(t, true, record["is_upcoming"])
	assert.Equal(t, float64(0), record["total_artists"])
}

func TestHandleGetCreateForm(t *testing.T) {
	w := doJSON(setupRouter(newMockActividadService(), 1), http.MethodGet, "/api/v1/actividades/options", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Options map[string][]map[string]string `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	for _, set := range []string{
		"activity_types",
		"cultural_manifestations",
		"talent_roles",
		"age_groups",
		"sociocultural_projects",
		"professional_kinds",
		"amateur_categories",
	} {
		assert.NotEmpty(t, got.Options[set], "missing option set %v", set)
	}
}

func TestHandleCreateActividad(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		svc := newMockActividadService()

		w := doJSON(setupRouter(svc, 7), http.MethodPost, "/api/v1/actividades", validCreateBody())
		require.Equal(t, http.StatusCreated, w.Code)

		var got struct {
			Message   string                 `json:"message"`
			Actividad map[string]interface{} `json:"actividad"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Actividad creada exitosamente.", got.Message)
		assert.Equal(t, float64(7), got.Actividad["owner_id"])
	})

	t.Run("day in the past fails with a field error", func(t *testing.T) {
		body := validCreateBody()
		body["day"] = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		w := doJSON(setupRouter(newMockActividadService(), 7), http.MethodPost, "/api/v1/actividades", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var got struct {
			Fields map[string]interface{} `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Contains(t, got.Fields, "day")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := newMockActividadService()
		router := setupRouter(svc, 7)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/actividades", bytes.NewReader([]byte(`{"talent_tags": [1, 2]}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetActividad(t *testing.T) {
	svc := newMockActividadService()
	created := seedActividad(svc, 1)

	t.Run("owner", func(t *testing.T) {
		w := doJSON(setupRouter(svc, 1), http.MethodGet, fmt.Sprintf("/api/v1/actividades/%v", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Concierto de trova", got["activity_name"])
		assert.Equal(t, "General Model", got["type_label"])
	})

	t.Run("non-owner gets 403, not 404", func(t *testing.T) {
		w := doJSON(setupRouter(svc, 2), http.MethodGet, fmt.Sprintf("/api/v1/actividades/%v", created.ID), nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "permission denied", got["error"])
		assert.NotContains(t, got, "fields")
	})

	t.Run("missing record gets 404", func(t *testing.T) {
		w := doJSON(setupRouter(svc, 1), http.MethodGet, "/api/v1/actividades/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := doJSON(setupRouter(svc, 1), http.MethodGet, "/api/v1/actividades/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetEditForm(t *testing.T) {
	svc := newMockActividadService()
	created := seedActividad(svc, 1)

	w := doJSON(setupRouter(svc, 1), http.MethodGet, fmt.Sprintf("/api/v1/actividades/%v/edit", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Actividad map[string]interface{}         `json:"actividad"`
		Options   map[string][]map[string]string `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Concierto de trova", got.Actividad["activity_name"])
	assert.NotContains(t, got.Actividad, "type_label", "edit form carries editable fields only")
	assert.NotEmpty(t, got.Options["cultural_manifestations"])

	t.Run("non-owner", func(t *testing.T) {
		w := doJSON(setupRouter(svc, 2), http.MethodGet, fmt.Sprintf("/api/v1/actividades/%v/edit", created.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandleUpdateActividad(t *testing.T) {
	t.Run("owner updates", func(t *testing.T) {
		svc := newMockActividadService()
		created := seedActividad(svc, 1)

		body := validCreateBody()
		body["activity_name"] = "Peña renovada"

		w := doJSON(setupRouter(svc, 1), http.MethodPut, fmt.Sprintf("/api/v1/actividades/%v", created.ID), body)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			Message   string                 `json:"message"`
			Actividad map[string]interface{} `json:"actividad"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Actividad actualizada exitosamente.", got.Message)
		assert.Equal(t, "Peña renovada", got.Actividad["activity_name"])
		assert.Equal(t, float64(1), got.Actividad["owner_id"])
	})

	t.Run("non-owner is rejected before validation runs", func(t *testing.T) {
		svc := newMockActividadService()
		created := seedActividad(svc, 1)

		// Deliberately invalid payload: the ownership rejection must win.
		body := map[string]interface{}{"day": "not-a-date"}

		w := doJSON(setupRouter(svc, 2), http.MethodPut, fmt.Sprintf("/api/v1/actividades/%v", created.ID), body)
		require.Equal(t, http.StatusForbidden, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotContains(t, got, "fields")
	})

	t.Run("missing record", func(t *testing.T) {
		w := doJSON(setupRouter(newMockActividadService(), 1), http.MethodPut, "/api/v1/actividades/9999", validCreateBody())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleDeleteActividad(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		svc := newMockActividadService()
		created := seedActividad(svc, 1)

		w := doJSON(setupRouter(svc, 1), http.MethodDelete, fmt.Sprintf("/api/v1/actividades/%v", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Actividad eliminada exitosamente.", got["message"])

		w = doJSON(setupRouter(svc, 1), http.MethodGet, fmt.Sprintf("/api/v1/actividades/%v", created.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		svc := newMockActividadService()
		created := seedActividad(svc, 1)

		w := doJSON(setupRouter(svc, 2), http.MethodDelete, fmt.Sprintf("/api/v1/actividades/%v", created.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
