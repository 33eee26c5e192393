package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/culturarte/actividades-api/internal/api/handler/v1/response"
	"github.com/culturarte/actividades-api/internal/api/middleware"
	"github.com/culturarte/actividades-api/internal/domain"
	"github.com/culturarte/actividades-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// getUserFromContext resolves the authenticated user placed in the context
// by the JWT middleware. A token for a since-deleted user is unauthorized.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrWrongCredentials(errors.New("no user in context"))
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrWrongCredentials(errors.New("invalid user ID in context"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrWrongCredentials(err)
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err))
	}

	return user, nil
}
