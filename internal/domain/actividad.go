package domain

import "time"

// Activity type codes stored in the activity_type column.
const (
	ActivityTypeGeneralModel          = "general_model"
	ActivityTypeTransformingCommunity = "transforming_community"
)

// Professional kind codes.
const (
	ProfessionalKindSubsidized   = "subsidized"
	ProfessionalKindUnsubsidized = "unsubsidized"
)

// Amateur category codes.
const (
	AmateurCategoryGeneral         = "general"
	AmateurCategoryMunicipal       = "municipal"
	AmateurCategoryProvincial      = "provincial"
	AmateurCategoryNational        = "national"
	AmateurCategoryTraditionBearer = "tradition_bearer"
)

var activityTypeLabels = map[string]string{
	ActivityTypeGeneralModel:          "General Model",
	ActivityTypeTransformingCommunity: "Transforming Community",
}

// Actividad is a cultural activity record. Every record belongs to exactly
// one owner; the owner is fixed at creation and drives all access control.
type Actividad struct {
	ID      uint `json:"id"`
	OwnerID uint `json:"owner_id"`

	ActivityType  string    `json:"activity_type"`
	Institution   string    `json:"institution"`
	ActivityName  string    `json:"activity_name"`
	Day           time.Time `json:"day"`
	TimeOfDay     string    `json:"time"` // "HH:MM"
	Place         string    `json:"place,omitempty"`
	Manifestation string    `json:"cultural_manifestation"`

	// TalentTags is the legacy flat tag list. DetailedTalent supersedes it
	// but both are kept and surfaced independently.
	TalentTags     []string        `json:"talent_tags,omitempty"`
	DetailedTalent *DetailedTalent `json:"detailed_talent,omitempty"`

	AgeGroups             []string `json:"age_groups,omitempty"`
	SocioculturalProjects []string `json:"sociocultural_projects,omitempty"`
	TributaryProgram      string   `json:"tributary_program,omitempty"`
	Description           string   `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DetailedTalent struct {
	Professionals []Professional `json:"professionals"`
	Amateurs      []Amateur      `json:"amateurs"`
}

type Professional struct {
	Kind       string `json:"kind"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Occupation string `json:"occupation"`
}

type Amateur struct {
	Category   string `json:"category"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Occupation string `json:"occupation"`
}

// FullDateLabel renders day and time as "DD/MM/YYYY HH:MM".
func (a Actividad) FullDateLabel() string {
	return a.Day.Format("02/01/2006") + " " + a.TimeOfDay
}

// TypeLabel maps the activity type code to its display label. Unknown codes
// pass through unchanged so newly added types render as-is.
func (a Actividad) TypeLabel() string {
	if label, ok := activityTypeLabels[a.ActivityType]; ok {
		return label
	}

	return a.ActivityType
}

// IsUpcoming reports whether the activity day is on or after the calendar
// day of now.
func (a Actividad) IsUpcoming(now time.Time) bool {
	return OnOrAfterDay(a.Day, now)
}

// OnOrAfterDay reports whether t falls on or after ref's calendar day. Only
// the (year, month, day) components are compared, so the answer does not
// depend on either value's location. Day columns are stored at UTC midnight
// while now is usually local; comparing instants would shift the boundary
// in any non-UTC zone.
func OnOrAfterDay(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	if ty != ry {
		return ty > ry
	}
	if tm != rm {
		return tm > rm
	}

	return td >= rd
}

// Professionals returns the nested professional entries, never nil.
func (a Actividad) Professionals() []Professional {
	if a.DetailedTalent == nil {
		return []Professional{}
	}

	return a.DetailedTalent.Professionals
}

// Amateurs returns the nested amateur entries, never nil.
func (a Actividad) Amateurs() []Amateur {
	if a.DetailedTalent == nil {
		return []Amateur{}
	}

	return a.DetailedTalent.Amateurs
}

func (a Actividad) TotalArtists() int {
	return len(a.Professionals()) + len(a.Amateurs())
}

func (a Actividad) HasProfessionals() bool {
	return len(a.Professionals()) > 0
}

func (a Actividad) HasAmateurs() bool {
	return len(a.Amateurs()) > 0
}
