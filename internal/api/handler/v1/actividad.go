package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/culturarte/actividades-api/internal/api/handler/v1/request"
	"github.com/culturarte/actividades-api/internal/api/handler/v1/response"
	"github.com/culturarte/actividades-api/internal/catalog"
	"github.com/culturarte/actividades-api/internal/domain"
	"github.com/culturarte/actividades-api/internal/service"
)

const (
	noticeCreated = "Actividad creada exitosamente."
	noticeUpdated = "Actividad actualizada exitosamente."
	noticeDeleted = "Actividad eliminada exitosamente."
)

type ActividadService interface {
	ListOwned(ctx context.Context, actingUserID uint) ([]domain.Actividad, error)
	Get(ctx context.Context, id, actingUserID uint) (domain.Actividad, error)
	Create(ctx context.Context, actividad domain.Actividad, actingUserID uint) (domain.Actividad, error)
	Update(ctx context.Context, actividad domain.Actividad, actingUserID uint) (domain.Actividad, error)
	Delete(ctx context.Context, id, actingUserID uint) error
}

type ActividadHandler struct {
	svc  ActividadService
	uSvc UserService
}

func NewActividadHandler(svc ActividadService, uSvc UserService) *ActividadHandler {
	return &ActividadHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListActividades godoc
// @Summary      List the caller's actividades
// @Description  Returns every record owned by the authenticated user, day descending then time descending
// @Tags         actividades
// @Produce      json
// @Success      200  {array}   response.Actividad
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /actividades [get]
// @Security     BearerAuth
func (h *ActividadHandler) HandleListActividades(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	actividades, err := h.svc.ListOwned(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("HandleListActividades -> h.svc.ListOwned -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewActividadList(actividades, time.Now()))
}

// HandleGetCreateForm godoc
// @Summary      Option sets for the create form
// @Tags         actividades
// @Produce      json
// @Success      200  {object}  response.CreateForm
// @Failure      401  {object}  response.Err
// @Router       /actividades/options [get]
// @Security     BearerAuth
func (h *ActividadHandler) HandleGetCreateForm(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, response.CreateForm{
		Options: catalog.Default(),
	})
}

// HandleCreateActividad godoc
// @Summary      Create an actividad
// @Description  Validates the payload and creates a record owned by the authenticated user
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveActividadRequest  true  "Actividad fields"
// @Success      201    {object}  response.ActividadSaved
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /actividades [post]
// @Security     BearerAuth
func (h *ActividadHandler) HandleCreateActividad(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.SaveActividadRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		renderValidationErr(ctx, err)
		return
	}

	actividad, err := input.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), actividad, user.ID)
	if err != nil {
		err = fmt.Errorf("HandleCreateActividad -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.ActividadSaved{
		Message:   noticeCreated,
		Actividad: response.NewActividad(created, time.Now()),
	})
}

// HandleGetActividad godoc
// @Summary      Show an actividad
// @Description  Returns the full record including derived fields. Owner only.
// @Tags         actividades
// @Produce      json
// @Param        actividadID  path      int  true  "Actividad ID"
// @Success      200  {object}  response.Actividad
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /actividades/{actividadID} [get]
// @Security     BearerAuth
func (h *ActividadHandler) HandleGetActividad(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseActividadID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	actividad, err := h.svc.Get(ctx.Request.Context(), id, user.ID)
	if err != nil {
		renderActividadErr(ctx, id, fmt.Errorf("HandleGetActividad -> h.svc.Get -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewActividad(actividad, time.Now()))
}

// HandleGetEditForm godoc
// @Summary      Editable fields and option sets for the edit form
// @Tags         actividades
// @Produce      json
// @Param        actividadID  path      int  true  "Actividad ID"
// @Success      200  {object}  response.EditForm
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /actividades/{actividadID}/edit [get]
// @Security     BearerAuth
func (h *ActividadHandler) HandleGetEditForm(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseActividadID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	actividad, err := h.svc.Get(ctx.Request.Context(), id, user.ID)
	if err != nil {
		renderActividadErr(ctx, id, fmt.Errorf("HandleGetEditForm -> h.svc.Get -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.EditForm{
		Actividad: response.NewActividadForm(actividad),
		Options:   catalog.Default(),
	})
}

// HandleUpdateActividad godoc
// @Summary      Update an actividad
// @Description  Ownership is checked before the payload is validated. Owner and creation time never change.
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        actividadID  path      int                            true  "Actividad ID"
// @Param        input        body      request.SaveActividadRequest  true  "Actividad fields"
// @Success      200  {object}  response.ActividadSaved
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /actividades/{actividadID} [put]
// @Security     BearerAuth
func (h *ActividadHandler) HandleUpdateActividad(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseActividadID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	// Ownership first: a non-owner is rejected before the payload is even
	// looked at, with no field detail.
	if _, err := h.svc.Get(ctx.Request.Context(), id, user.ID); err != nil {
		renderActividadErr(ctx, id, fmt.Errorf("HandleUpdateActividad -> h.svc.Get -> %w", err))
		return
	}

	var input request.SaveActividadRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		renderValidationErr(ctx, err)
		return
	}

	actividad, err := input.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	actividad.ID = id

	updated, err := h.svc.Update(ctx.Request.Context(), actividad, user.ID)
	if err != nil {
		renderActividadErr(ctx, id, fmt.Errorf("HandleUpdateActividad -> h.svc.Update -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.ActividadSaved{
		Message:   noticeUpdated,
		Actividad: response.NewActividad(updated, time.Now()),
	})
}

// HandleDeleteActividad godoc
// @Summary      Delete an actividad
// @Tags         actividades
// @Produce      json
// @Param        actividadID  path      int  true  "Actividad ID"
// @Success      200  {object}  response.ActividadDeleted
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /actividades/{actividadID} [delete]
// @Security     BearerAuth
func (h *ActividadHandler) HandleDeleteActividad(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseActividadID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id, user.ID); err != nil {
		renderActividadErr(ctx, id, fmt.Errorf("HandleDeleteActividad -> h.svc.Delete -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.ActividadDeleted{
		Message: noticeDeleted,
	})
}

func parseActividadID(ctx *gin.Context) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param("actividadID"), 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid actividad ID: %v", err))
	}

	return uint(id), nil
}

// renderActividadErr maps the service sentinels: missing record is 404,
// foreign record is an opaque 403, anything else is 500.
func renderActividadErr(ctx *gin.Context, id uint, err error) {
	switch {
	case errors.Is(err, service.ErrActividadNotFound):
		response.RenderErr(ctx, response.ErrNotFound("actividad", "ID", id))
	case errors.Is(err, service.ErrNotOwner):
		response.RenderErr(ctx, response.ErrPermissionDenied(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func renderValidationErr(ctx *gin.Context, err error) {
	var errs validation.Errors
	if errors.As(err, &errs) {
		response.RenderErr(ctx, response.ErrValidationFailed(errs))
		return
	}

	response.RenderErr(ctx, response.ErrBadRequest(err))
}
