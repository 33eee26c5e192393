package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrActividadNotFound = errors.New("actividad not found")

// Actividad is the storage shape of a cultural activity record. The nested
// collections live in JSON columns; everything else is a plain column.
type Actividad struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID uint `gorm:"index;not null"`

	ActivityType  string    `gorm:"size:255;not null;default:general_model"`
	Institution   string    `gorm:"size:255;not null"`
	ActivityName  string    `gorm:"size:255;not null"`
	Day           time.Time `gorm:"type:date;not null"`
	TimeOfDay     string    `gorm:"size:5;not null"` // "HH:MM", sorts chronologically
	Place         string    `gorm:"size:255"`
	Manifestation string    `gorm:"size:255;not null"`

	TalentTags            datatypes.JSON
	DetailedTalent        datatypes.JSON
	AgeGroups             datatypes.JSON
	SocioculturalProjects datatypes.JSON

	TributaryProgram string `gorm:"size:255"`
	Description      string `gorm:"size:2000"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Actividad) TableName() string {
	return "actividades"
}

// mutableColumns are the columns a caller may change through update. Owner,
// id and created_at are never part of an update statement.
var mutableColumns = []string{
	"activity_type",
	"institution",
	"activity_name",
	"day",
	"time_of_day",
	"place",
	"manifestation",
	"talent_tags",
	"detailed_talent",
	"age_groups",
	"sociocultural_projects",
	"tributary_program",
	"description",
	"updated_at",
}

type ActividadDAO struct {
	db *gorm.DB
}

func NewActividadDAO(db *gorm.DB) *ActividadDAO {
	return &ActividadDAO{
		db: db,
	}
}

func (d *ActividadDAO) Insert(ctx context.Context, actividad Actividad) (Actividad, error) {
	result := d.db.WithContext(ctx).Create(&actividad)
	if result.Error != nil {
		return Actividad{}, result.Error
	}

	return actividad, nil
}

func (d *ActividadDAO) FindByID(ctx context.Context, id uint) (Actividad, error) {
	var actividad Actividad

	result := d.db.WithContext(ctx).First(&actividad, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Actividad{}, ErrActividadNotFound
		}

		return Actividad{}, result.Error
	}

	return actividad, nil
}

// FindByOwnerID returns every record owned by ownerID, most recent activity
// first (day descending, then time descending).
func (d *ActividadDAO) FindByOwnerID(ctx context.Context, ownerID uint) ([]Actividad, error) {
	var actividades []Actividad

	result := d.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("day DESC").
		Order("time_of_day DESC").
		Find(&actividades)
	if result.Error != nil {
		return nil, result.Error
	}

	return actividades, nil
}

// Update overwrites the mutable columns of the row, including columns being
// set back to empty values. Owner and creation timestamp are untouched.
func (d *ActividadDAO) Update(ctx context.Context, actividad Actividad) (Actividad, error) {
	result := d.db.WithContext(ctx).
		Model(&Actividad{}).
		Where("id = ?", actividad.ID).
		Select(mutableColumns).
		Updates(&actividad)
	if result.Error != nil {
		return Actividad{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Actividad{}, ErrActividadNotFound
	}

	return d.FindByID(ctx, actividad.ID)
}

func (d *ActividadDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Actividad{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActividadNotFound
	}

	return nil
}
