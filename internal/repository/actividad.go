package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/culturarte/actividades-api/internal/domain"
	"github.com/culturarte/actividades-api/internal/repository/dao"
)

var ErrActividadNotFound = dao.ErrActividadNotFound

type ActividadDAO interface {
	Insert(ctx context.Context, actividad dao.Actividad) (dao.Actividad, error)
	FindByID(ctx context.Context, id uint) (dao.Actividad, error)
	FindByOwnerID(ctx context.Context, ownerID uint) ([]dao.Actividad, error)
	Update(ctx context.Context, actividad dao.Actividad) (dao.Actividad, error)
	Delete(ctx context.Context, id uint) error
}

type ActividadRepository struct {
	dao ActividadDAO
}

func NewActividadRepository(dao ActividadDAO) *ActividadRepository {
	return &ActividadRepository{
		dao: dao,
	}
}

func (r *ActividadRepository) Create(ctx context.Context, actividad domain.Actividad) (domain.Actividad, error) {
	daoActividad, err := r.domainToDao(actividad)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("r.domainToDao -> %w", err)
	}

	created, err := r.dao.Insert(ctx, daoActividad)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created)
}

func (r *ActividadRepository) FindByID(ctx context.Context, id uint) (domain.Actividad, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found)
}

func (r *ActividadRepository) FindByOwnerID(ctx context.Context, ownerID uint) ([]domain.Actividad, error) {
	found, err := r.dao.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOwnerID -> %w", err)
	}

	actividades := make([]domain.Actividad, 0, len(found))
	for _, f := range found {
		actividad, err := r.daoToDomain(f)
		if err != nil {
			return nil, fmt.Errorf("r.daoToDomain -> %w", err)
		}

		actividades = append(actividades, actividad)
	}

	return actividades, nil
}

func (r *ActividadRepository) Update(ctx context.Context, actividad domain.Actividad) (domain.Actividad, error) {
	daoActividad, err := r.domainToDao(actividad)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("r.domainToDao -> %w", err)
	}

	updated, err := r.dao.Update(ctx, daoActividad)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated)
}

func (r *ActividadRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ActividadRepository) domainToDao(a domain.Actividad) (dao.Actividad, error) {
	talentTags, err := marshalJSONColumn(a.TalentTags)
	if err != nil {
		return dao.Actividad{}, fmt.Errorf("marshal talent_tags -> %w", err)
	}

	ageGroups, err := marshalJSONColumn(a.AgeGroups)
	if err != nil {
		return dao.Actividad{}, fmt.Errorf("marshal age_groups -> %w", err)
	}

	projects, err := marshalJSONColumn(a.SocioculturalProjects)
	if err != nil {
		return dao.Actividad{}, fmt.Errorf("marshal sociocultural_projects -> %w", err)
	}

	var detailedTalent datatypes.JSON
	if a.DetailedTalent != nil {
		detailedTalent, err = json.Marshal(a.DetailedTalent)
		if err != nil {
			return dao.Actividad{}, fmt.Errorf("marshal detailed_talent -> %w", err)
		}
	}

	return dao.Actividad{
		ID:                    a.ID,
		OwnerID:               a.OwnerID,
		ActivityType:          a.ActivityType,
		Institution:           a.Institution,
		ActivityName:          a.ActivityName,
		Day:                   a.Day,
		TimeOfDay:             a.TimeOfDay,
		Place:                 a.Place,
		Manifestation:         a.Manifestation,
		TalentTags:            talentTags,
		DetailedTalent:        detailedTalent,
		AgeGroups:             ageGroups,
		SocioculturalProjects: projects,
		TributaryProgram:      a.TributaryProgram,
		Description:           a.Description,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}, nil
}

func (r *ActividadRepository) daoToDomain(a dao.Actividad) (domain.Actividad, error) {
	talentTags, err := unmarshalStringSet(a.TalentTags)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("unmarshal talent_tags -> %w", err)
	}

	ageGroups, err := unmarshalStringSet(a.AgeGroups)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("unmarshal age_groups -> %w", err)
	}

	projects, err := unmarshalStringSet(a.SocioculturalProjects)
	if err != nil {
		return domain.Actividad{}, fmt.Errorf("unmarshal sociocultural_projects -> %w", err)
	}

	var detailedTalent *domain.DetailedTalent
	if len(a.DetailedTalent) > 0 {
		detailedTalent = &domain.DetailedTalent{}
		if err = json.Unmarshal(a.DetailedTalent, detailedTalent); err != nil {
			return domain.Actividad{}, fmt.Errorf("unmarshal detailed_talent -> %w", err)
		}
	}

	return domain.Actividad{
		ID:                    a.ID,
		OwnerID:               a.OwnerID,
		ActivityType:          a.ActivityType,
		Institution:           a.Institution,
		ActivityName:          a.ActivityName,
		Day:                   a.Day,
		TimeOfDay:             a.TimeOfDay,
		Place:                 a.Place,
		Manifestation:         a.Manifestation,
		TalentTags:            talentTags,
		DetailedTalent:        detailedTalent,
		AgeGroups:             ageGroups,
		SocioculturalProjects: projects,
		TributaryProgram:      a.TributaryProgram,
		Description:           a.Description,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}, nil
}

// marshalJSONColumn keeps absent sets as SQL NULL instead of "null" JSON.
func marshalJSONColumn(values []string) (datatypes.JSON, error) {
	if values == nil {
		return nil, nil
	}

	return json.Marshal(values)
}

func unmarshalStringSet(column datatypes.JSON) ([]string, error) {
	if len(column) == 0 {
		return nil, nil
	}

	var values []string
	if err := json.Unmarshal(column, &values); err != nil {
		return nil, err
	}

	return values, nil
}
