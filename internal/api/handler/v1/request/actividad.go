package request

import (
	"errors"
	"strconv"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/culturarte/actividades-api/internal/catalog"
	"github.com/culturarte/actividades-api/internal/domain"
)

const (
	dayLayout  = "2006-01-02"
	timeLayout = "15:04"

	maxStringLength      = 255
	maxDescriptionLength = 2000
)

var errDayInPast = errors.New("must be a date on or after today")

type ProfessionalPayload struct {
	Kind       string `json:"kind"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Occupation string `json:"occupation"`
}

func (p *ProfessionalPayload) Validate() error {
	return validation.ValidateStruct(
		p,
		validation.Field(&p.Kind, validation.Required, validation.In(catalog.ProfessionalKindCodes()...)),
		validation.Field(&p.FirstName, validation.Required, validation.Length(1, maxStringLength)),
		validation.Field(&p.LastName, validation.Required, validation.Length(1, maxStringLength)),
		validation.Field(&p.Occupation, validation.Required, validation.Length(1, maxStringLength)),
	)
}

type AmateurPayload struct {
	Category   string `json:"category"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Occupation string `json:"occupation"`
}

func (a *AmateurPayload) Validate() error {
	return validation.ValidateStruct(
		a,
		validation.Field(&a.Category, validation.Required, validation.In(catalog.AmateurCategoryCodes()...)),
		validation.Field(&a.FirstName, validation.Required, validation.Length(1, maxStringLength)),
		validation.Field(&a.LastName, validation.Required, validation.Length(1, maxStringLength)),
		validation.Field(&a.Occupation, validation.Required, validation.Length(1, maxStringLength)),
	)
}

type DetailedTalentPayload struct {
	Professionals []ProfessionalPayload `json:"professionals"`
	Amateurs      []AmateurPayload      `json:"amateurs"`
}

// SaveActividadRequest is the payload for both create and update; the two
// operations validate identically.
type SaveActividadRequest struct {
	ActivityType  string `json:"activity_type"`
	Institution   string `json:"institution"`
	ActivityName  string `json:"activity_name"`
	Day           string `json:"day"`
	Time          string `json:"time"`
	Place         string `json:"place"`
	Manifestation string `json:"cultural_manifestation"`

	TalentTags     []string               `json:"talent_tags"`
	DetailedTalent *DetailedTalentPayload `json:"detailed_talent"`

	AgeGroups             []string `json:"age_groups"`
	SocioculturalProjects []string `json:"sociocultural_projects"`
	TributaryProgram      string   `json:"tributary_program"`
	Description           string   `json:"description"`
}

func (req *SaveActividadRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityType, validation.Required, validation.In(catalog.ActivityTypeCodes()...)),
		validation.Field(&req.Institution, validation.Required, validation.Length(1, maxStringLength)),
		validation.Field(&req.ActivityName, validation.Required, validation.Length(1, maxStringLength)),
		validation.Field(&req.Day, validation.Required, validation.Date(dayLayout), validation.By(validateDayNotInPast)),
		validation.Field(&req.Time, validation.Required, validation.Date(timeLayout)),
		validation.Field(&req.Place, validation.Length(0, maxStringLength)),
		validation.Field(&req.Manifestation, validation.Required, validation.Length(1, maxStringLength)),
		validation.Field(&req.TalentTags, validation.By(validateStringSet)),
		validation.Field(&req.DetailedTalent, validation.By(validateDetailedTalent)),
		validation.Field(&req.AgeGroups, validation.By(validateStringSet)),
		validation.Field(&req.SocioculturalProjects, validation.By(validateStringSet)),
		validation.Field(&req.TributaryProgram, validation.Length(0, maxStringLength)),
		validation.Field(&req.Description, validation.Length(0, maxDescriptionLength)),
	)
}

// ToDomain converts the validated payload. Day and time are normalized here;
// call Validate first.
func (req *SaveActividadRequest) ToDomain() (domain.Actividad, error) {
	day, err := time.Parse(dayLayout, req.Day)
	if err != nil {
		return domain.Actividad{}, err
	}

	timeOfDay, err := time.Parse(timeLayout, req.Time)
	if err != nil {
		return domain.Actividad{}, err
	}

	var detailedTalent *domain.DetailedTalent
	if req.DetailedTalent != nil {
		detailedTalent = &domain.DetailedTalent{
			Professionals: make([]domain.Professional, len(req.DetailedTalent.Professionals)),
			Amateurs:      make([]domain.Amateur, len(req.DetailedTalent.Amateurs)),
		}
		for i, p := range req.DetailedTalent.Professionals {
			detailedTalent.Professionals[i] = domain.Professional(p)
		}
		for i, a := range req.DetailedTalent.Amateurs {
			detailedTalent.Amateurs[i] = domain.Amateur(a)
		}
	}

	return domain.Actividad{
		ActivityType:          req.ActivityType,
		Institution:           req.Institution,
		ActivityName:          req.ActivityName,
		Day:                   day,
		TimeOfDay:             timeOfDay.Format(timeLayout),
		Place:                 req.Place,
		Manifestation:         req.Manifestation,
		TalentTags:            req.TalentTags,
		DetailedTalent:        detailedTalent,
		AgeGroups:             req.AgeGroups,
		SocioculturalProjects: req.SocioculturalProjects,
		TributaryProgram:      req.TributaryProgram,
		Description:           req.Description,
	}, nil
}

// validateDayNotInPast rejects days before the start of today. A record may
// become "past" later on its own; only create/update submissions are checked.
func validateDayNotInPast(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	day, err := time.Parse(dayLayout, s)
	if err != nil {
		// The Date rule reports the format error.
		return nil
	}

	if !domain.OnOrAfterDay(day, time.Now()) {
		return errDayInPast
	}

	return nil
}

// validateStringSet checks every element of a tag set, keyed by index.
func validateStringSet(value interface{}) error {
	tags, _ := value.([]string)

	errs := validation.Errors{}
	for i, tag := range tags {
		if tag == "" {
			errs[strconv.Itoa(i)] = errors.New("cannot be blank")
			continue
		}
		if utf8.RuneCountInString(tag) > maxStringLength {
			errs[strconv.Itoa(i)] = errors.New("the length must be no more than 255")
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateDetailedTalent validates each nested entry, keying errors as
// professionals.<index>.<field> / amateurs.<index>.<field>.
func validateDetailedTalent(value interface{}) error {
	talent, _ := value.(*DetailedTalentPayload)
	if talent == nil {
		return nil
	}

	errs := validation.Errors{}

	profErrs := validation.Errors{}
	for i := range talent.Professionals {
		if err := talent.Professionals[i].Validate(); err != nil {
			profErrs[strconv.Itoa(i)] = err
		}
	}
	if len(profErrs) > 0 {
		errs["professionals"] = profErrs
	}

	amateurErrs := validation.Errors{}
	for i := range talent.Amateurs {
		if err := talent.Amateurs[i].Validate(); err != nil {
			amateurErrs[strconv.Itoa(i)] = err
		}
	}
	if len(amateurErrs) > 0 {
		errs["amateurs"] = amateurErrs
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
