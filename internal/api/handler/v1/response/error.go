package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Err is the uniform error payload. Field-level validation messages travel
// in Fields; authorization failures carry no detail beyond the message.
type Err struct {
	StatusCode int               `json:"-"`
	ErrorMsg   string            `json:"error"`
	Fields     validation.Errors `json:"fields,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   err.Error(),
	}
}

// ErrValidationFailed keys every message by the offending field so the
// client can redisplay the form with inline errors.
func ErrValidationFailed(errs validation.Errors) *Err {
	return &Err{
		StatusCode: http.StatusUnprocessableEntity,
		ErrorMsg:   "validation failed",
		Fields:     errs,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorMsg:   "wrong credentials",
	}
}

// ErrPermissionDenied is intentionally opaque. The record's existence was
// confirmed before rejecting, but the caller only learns "forbidden".
func ErrPermissionDenied(err error) *Err {
	zap.L().Warn("permission denied", zap.Error(err))

	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorMsg:   "permission denied",
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorMsg:   fmt.Sprintf("%v with %v %v not found", resource, key, value),
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   "internal server error",
	}
}
