package response

import (
	"time"

	"github.com/culturarte/actividades-api/internal/catalog"
	"github.com/culturarte/actividades-api/internal/domain"
)

// Actividad is the read view of a record: stored fields plus the derived
// presentation fields, which are recomputed on every request.
type Actividad struct {
	ID      uint `json:"id"`
	OwnerID uint `json:"owner_id"`

	ActivityType  string `json:"activity_type"`
	TypeLabel     string `json:"type_label"`
	Institution   string `json:"institution"`
	ActivityName  string `json:"activity_name"`
	Day           string `json:"day"`
	Time          string `json:"time"`
	Place         string `json:"place,omitempty"`
	Manifestation string `json:"cultural_manifestation"`

	TalentTags     []string               `json:"talent_tags"`
	DetailedTalent *domain.DetailedTalent `json:"detailed_talent,omitempty"`

	AgeGroups             []string `json:"age_groups"`
	SocioculturalProjects []string `json:"sociocultural_projects"`
	TributaryProgram      string   `json:"tributary_program,omitempty"`
	Description           string   `json:"description,omitempty"`

	FullDateLabel    string                `json:"full_date_label"`
	IsUpcoming       bool                  `json:"is_upcoming"`
	Professionals    []domain.Professional `json:"professionals"`
	Amateurs         []domain.Amateur      `json:"amateurs"`
	TotalArtists     int                   `json:"total_artists"`
	HasProfessionals bool                  `json:"has_professionals"`
	HasAmateurs      bool                  `json:"has_amateurs"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewActividad(a domain.Actividad, now time.Time) Actividad {
	return Actividad{
		ID:                    a.ID,
		OwnerID:               a.OwnerID,
		ActivityType:          a.ActivityType,
		TypeLabel:             a.TypeLabel(),
		Institution:           a.Institution,
		ActivityName:          a.ActivityName,
		Day:                   a.Day.Format("2006-01-02"),
		Time:                  a.TimeOfDay,
		Place:                 a.Place,
		Manifestation:         a.Manifestation,
		TalentTags:            a.TalentTags,
		DetailedTalent:        a.DetailedTalent,
		AgeGroups:             a.AgeGroups,
		SocioculturalProjects: a.SocioculturalProjects,
		TributaryProgram:      a.TributaryProgram,
		Description:           a.Description,
		FullDateLabel:         a.FullDateLabel(),
		IsUpcoming:            a.IsUpcoming(now),
		Professionals:         a.Professionals(),
		Amateurs:              a.Amateurs(),
		TotalArtists:          a.TotalArtists(),
		HasProfessionals:      a.HasProfessionals(),
		HasAmateurs:           a.HasAmateurs(),
		CreatedAt:             a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:             a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewActividadList(actividades []domain.Actividad, now time.Time) []Actividad {
	list := make([]Actividad, len(actividades))
	for i, a := range actividades {
		list[i] = NewActividad(a, now)
	}

	return list
}

// ActividadSaved is returned after a successful create or update, carrying
// the success notice the client shows.
type ActividadSaved struct {
	Message   string    `json:"message"`
	Actividad Actividad `json:"actividad"`
}

type ActividadDeleted struct {
	Message string `json:"message"`
}

// ActividadForm carries only the editable fields, for the edit form.
type ActividadForm struct {
	ID            uint   `json:"id"`
	ActivityType  string `json:"activity_type"`
	Institution   string `json:"institution"`
	ActivityName  string `json:"activity_name"`
	Day           string `json:"day"`
	Time          string `json:"time"`
	Place         string `json:"place"`
	Manifestation string `json:"cultural_manifestation"`

	TalentTags            []string               `json:"talent_tags"`
	DetailedTalent        *domain.DetailedTalent `json:"detailed_talent"`
	AgeGroups             []string               `json:"age_groups"`
	SocioculturalProjects []string               `json:"sociocultural_projects"`
	TributaryProgram      string                 `json:"tributary_program"`
	Description           string                 `json:"description"`
}

func NewActividadForm(a domain.Actividad) ActividadForm {
	return ActividadForm{
		ID:                    a.ID,
		ActivityType:          a.ActivityType,
		Institution:           a.Institution,
		ActivityName:          a.ActivityName,
		Day:                   a.Day.Format("2006-01-02"),
		Time:                  a.TimeOfDay,
		Place:                 a.Place,
		Manifestation:         a.Manifestation,
		TalentTags:            a.TalentTags,
		DetailedTalent:        a.DetailedTalent,
		AgeGroups:             a.AgeGroups,
		SocioculturalProjects: a.SocioculturalProjects,
		TributaryProgram:      a.TributaryProgram,
		Description:           a.Description,
	}
}

// CreateForm delivers the option sets the create form needs.
type CreateForm struct {
	Options catalog.Catalog `json:"options"`
}

// EditForm delivers the editable record plus the option sets.
type EditForm struct {
	Actividad ActividadForm   `json:"actividad"`
	Options   catalog.Catalog `json:"options"`
}
