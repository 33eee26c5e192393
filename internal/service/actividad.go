package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/culturarte/actividades-api/internal/domain"
	"github.com/culturarte/actividades-api/internal/repository"
)

var (
	ErrActividadNotFound = repository.ErrActividadNotFound

	// ErrNotOwner is returned when the acting user is not the owner of the
	// record. It is deliberately opaque: callers render it as a generic
	// "permission denied" without confirming anything about the record.
	ErrNotOwner = errors.New("actividad belongs to another user")
)

type ActividadRepository interface {
	Create(ctx context.Context, actividad domain.Actividad) (domain.Actividad, error)
	FindByID(ctx context.Context, id uint) (domain.Actividad, error)
	FindByOwnerID(ctx context.Context, ownerID uint) ([]domain.Actividad, error)
	Update(ctx context.Context, actividad domain.Actividad) (domain.Actividad, error)
	Delete(ctx context.Context, id uint) error
}

type ActividadService struct {
	repo ActividadRepository
}

func NewActividadService(repo ActividadRepository) *ActividadService {
	return &ActividadService{
		repo: repo,
	}
}

// ListOwned returns every record owned by the acting user, ordered by day
// then time, both descending.
func (s *ActividadService) ListOwned(ctx context.Context, actingUserID uint) ([]domain.Actividad, error) {
	actividades, err := s.repo.FindByOwnerID(ctx, actingUserID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOwnerID -> %w", err)
	}

	return actividades, nil
}

// Get fetches a single record. An existing record owned by someone else
// yields ErrNotOwner, never ErrActividadNotFound.
func (s *ActividadService) Get(ctx context.Context, id, actingUserID uint) (domain.Actividad, error) {
	actividad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if actividad.OwnerID != actingUserID {
		return domain.Actividad{}, ErrNotOwner
	}

	return actividad, nil
}

// Create persists a new record owned by the acting user. Whatever owner the
// payload carried is discarded.
func (s *ActividadService) Create(ctx context.Context, actividad domain.Actividad, actingUserID uint) (domain.Actividad, error) {
	actividad.ID = 0
	actividad.OwnerID = actingUserID

	created, err := s.repo.Create(ctx, actividad)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update overwrites the mutable fields of the record identified by
// actividad.ID. Ownership is checked against the stored row before any
// mutation; owner and creation timestamp never change.
func (s *ActividadService) Update(ctx context.Context, actividad domain.Actividad, actingUserID uint) (domain.Actividad, error) {
	stored, err := s.repo.FindByID(ctx, actividad.ID)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if stored.OwnerID != actingUserID {
		return domain.Actividad{}, ErrNotOwner
	}

	actividad.OwnerID = stored.OwnerID
	actividad.CreatedAt = stored.CreatedAt

	updated, err := s.repo.Update(ctx, actividad)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Delete removes the record after the same ownership check as Update.
func (s *ActividadService) Delete(ctx context.Context, id, actingUserID uint) error {
	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if stored.OwnerID != actingUserID {
		return ErrNotOwner
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
