package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturarte/actividades-api/internal/domain"
	"github.com/culturarte/actividades-api/internal/repository"
)

type mockActividadRepo struct {
	records map[uint]domain.Actividad
	nextID  uint
}

func newMockActividadRepo() *mockActividadRepo {
	return &mockActividadRepo{
		records: map[uint]domain.Actividad{},
		nextID:  1,
	}
}

func (m *mockActividadRepo) Create(_ context.Context, actividad domain.Actividad) (domain.Actividad, error) {
	actividad.ID = m.nextID
	m.nextID++
	actividad.CreatedAt = time.Now()
	actividad.UpdatedAt = actividad.CreatedAt
	m.records[actividad.ID] = actividad

	return actividad, nil
}

func (m *mockActividadRepo) FindByID(_ context.Context, id uint) (domain.Actividad, error) {
	actividad, ok := m.records[id]
	if !ok {
		return domain.Actividad{}, repository.ErrActividadNotFound
	}

	return actividad, nil
}

func (m *mockActividadRepo) FindByOwnerID(_ context.Context, ownerID uint) ([]domain.Actividad, error) {
	var actividades []domain.Actividad
	for _, a := range m.records {
		if a.OwnerID == ownerID {
			actividades = append(actividades, a)
		}
	}

	return actividades, nil
}

func (m *mockActividadRepo) Update(_ context.Context, actividad domain.Actividad) (domain.Actividad, error) {
	if _, ok := m.records[actividad.ID]; !ok {
		return domain.Actividad{}, repository.ErrActividadNotFound
	}
	actividad.UpdatedAt = time.Now()
	m.records[actividad.ID] = actividad

	return actividad, nil
}

func (m *mockActividadRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.records[id]; !ok {
		return repository.ErrActividadNotFound
	}
	delete(m.records, id)

	return nil
}

func sampleActividad() domain.Actividad {
	return domain.Actividad{
		ActivityType:  domain.ActivityTypeGeneralModel,
		Institution:   "Casa de la Cultura",
		ActivityName:  "Concierto de trova",
		Day:           time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC),
		TimeOfDay:     "20:00",
		Manifestation: "Música",
	}
}

func TestActividadServiceCreate(t *testing.T) {
	svc := NewActividadService(newMockActividadRepo())

	created, err := svc.Create(context.Background(), sampleActividad(), 42)
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, uint(42), created.OwnerID, "owner is the acting user")

	t.Run("payload cannot pick its own owner", func(t *testing.T) {
		forged := sampleActividad()
		forged.OwnerID = 99

		created, err := svc.Create(context.Background(), forged, 42)
		require.NoError(t, err)
		assert.Equal(t, uint(42), created.OwnerID)
	})
}

func TestActividadServiceGet(t *testing.T) {
	svc := NewActividadService(newMockActividadRepo())

	created, err := svc.Create(context.Background(), sampleActividad(), 1)
	require.NoError(t, err)

	t.Run("owner reads back the record", func(t *testing.T) {
		got, err := svc.Get(context.Background(), created.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Concierto de trova", got.ActivityName)
	})

	t.Run("non-owner gets an authorization error, not a not-found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), created.ID, 2)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.NotErrorIs(t, err, ErrActividadNotFound)
	})

	t.Run("missing record is not-found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), 9999, 1)
		assert.ErrorIs(t, err, ErrActividadNotFound)
	})
}

func TestActividadServiceUpdate(t *testing.T) {
	repo := newMockActividadRepo()
	svc := NewActividadService(repo)

	created, err := svc.Create(context.Background(), sampleActividad(), 1)
	require.NoError(t, err)

	t.Run("non-owner is rejected before any mutation", func(t *testing.T) {
		changed := created
		changed.ActivityName = "Intento ajeno"

		_, err := svc.Update(context.Background(), changed, 2)
		assert.ErrorIs(t, err, ErrNotOwner)

		stored, err := repo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Concierto de trova", stored.ActivityName)
	})

	t.Run("owner updates fields, owner and created_at survive", func(t *testing.T) {
		changed := created
		changed.ActivityName = "Concierto de son"
		changed.OwnerID = 77 // must be ignored

		updated, err := svc.Update(context.Background(), changed, 1)
		require.NoError(t, err)
		assert.Equal(t, "Concierto de son", updated.ActivityName)
		assert.Equal(t, uint(1), updated.OwnerID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("missing record is not-found", func(t *testing.T) {
		ghost := sampleActividad()
		ghost.ID = 9999

		_, err := svc.Update(context.Background(), ghost, 1)
		assert.ErrorIs(t, err, ErrActividadNotFound)
	})
}

func TestActividadServiceDelete(t *testing.T) {
	repo := newMockActividadRepo()
	svc := NewActividadService(repo)

	created, err := svc.Create(context.Background(), sampleActividad(), 1)
	require.NoError(t, err)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := svc.Delete(context.Background(), created.ID, 2)
		assert.ErrorIs(t, err, ErrNotOwner)

		_, err = repo.FindByID(context.Background(), created.ID)
		assert.NoError(t, err)
	})

	t.Run("owner deletes", func(t *testing.T) {
		err := svc.Delete(context.Background(), created.ID, 1)
		require.NoError(t, err)

		_, err = svc.Get(context.Background(), created.ID, 1)
		assert.ErrorIs(t, err, ErrActividadNotFound)
	})
}

func TestActividadServiceListOwned(t *testing.T) {
	svc := NewActividadService(newMockActividadRepo())

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), sampleActividad(), 1)
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), sampleActividad(), 2)
	require.NoError(t, err)

	mine, err := svc.ListOwned(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
	for _, a := range mine {
		assert.Equal(t, uint(1), a.OwnerID)
	}
}
