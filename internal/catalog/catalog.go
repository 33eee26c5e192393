// Package catalog holds the server-defined option sets for the categorical
// fields of an Actividad. The tables are fixed at build time and shared by
// every operation that exposes or validates enumerated choices.
package catalog

import "github.com/culturarte/actividades-api/internal/domain"

// Option is one selectable choice: a stable code plus its display label.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Catalog struct {
	ActivityTypes         []Option `json:"activity_types"`
	Manifestations        []Option `json:"cultural_manifestations"`
	TalentRoles           []Option `json:"talent_roles"`
	AgeGroups             []Option `json:"age_groups"`
	SocioculturalProjects []Option `json:"sociocultural_projects"`
	ProfessionalKinds     []Option `json:"professional_kinds"`
	AmateurCategories     []Option `json:"amateur_categories"`
}

var defaultCatalog = Catalog{
	ActivityTypes: []Option{
		{Code: domain.ActivityTypeGeneralModel, Label: "General Model"},
		{Code: domain.ActivityTypeTransformingCommunity, Label: "Transforming Community"},
	},
	Manifestations: []Option{
		{Code: "Música", Label: "Música"},
		{Code: "Teatro", Label: "Teatro"},
		{Code: "Danza", Label: "Danza"},
		{Code: "Artes Plásticas", Label: "Artes Plásticas"},
		{Code: "Literatura", Label: "Literatura"},
		{Code: "Cine", Label: "Cine"},
		{Code: "Fotografía", Label: "Fotografía"},
		{Code: "Artesanías", Label: "Artesanías"},
		{Code: "Gastronomía", Label: "Gastronomía"},
		{Code: "Otras", Label: "Otras"},
	},
	TalentRoles: []Option{
		{Code: "Músicos", Label: "Músicos"},
		{Code: "Actores", Label: "Actores"},
		{Code: "Bailarines", Label: "Bailarines"},
		{Code: "Artistas plásticos", Label: "Artistas plásticos"},
		{Code: "Escritores", Label: "Escritores"},
		{Code: "Directores", Label: "Directores"},
		{Code: "Fotógrafos", Label: "Fotógrafos"},
		{Code: "Artesanos", Label: "Artesanos"},
		{Code: "Cocineros", Label: "Cocineros"},
		{Code: "Otros", Label: "Otros"},
	},
	AgeGroups: []Option{
		{Code: "Niños", Label: "Niños"},
		{Code: "Adolescentes", Label: "Adolescentes"},
		{Code: "Jóvenes", Label: "Jóvenes"},
		{Code: "Adultos", Label: "Adultos"},
		{Code: "Adultos mayores", Label: "Adultos mayores"},
	},
	SocioculturalProjects: []Option{
		{Code: "Educación cultural", Label: "Educación cultural"},
		{Code: "Patrimonio", Label: "Patrimonio"},
		{Code: "Inclusión social", Label: "Inclusión social"},
		{Code: "Desarrollo comunitario", Label: "Desarrollo comunitario"},
		{Code: "Turismo cultural", Label: "Turismo cultural"},
		{Code: "Arte y terapia", Label: "Arte y terapia"},
	},
	ProfessionalKinds: []Option{
		{Code: domain.ProfessionalKindSubsidized, Label: "Subvencionado"},
		{Code: domain.ProfessionalKindUnsubsidized, Label: "No Subvencionado"},
	},
	AmateurCategories: []Option{
		{Code: domain.AmateurCategoryGeneral, Label: "Generales"},
		{Code: domain.AmateurCategoryMunicipal, Label: "Municipal"},
		{Code: domain.AmateurCategoryProvincial, Label: "Provincial"},
		{Code: domain.AmateurCategoryNational, Label: "Nacional"},
		{Code: domain.AmateurCategoryTraditionBearer, Label: "Portador de Tradiciones"},
	},
}

// Default returns the process-wide option catalog. The slices are copied so
// a caller mutation cannot corrupt the shared tables.
func Default() Catalog {
	return Catalog{
		ActivityTypes:         copyOptions(defaultCatalog.ActivityTypes),
		Manifestations:        copyOptions(defaultCatalog.Manifestations),
		TalentRoles:           copyOptions(defaultCatalog.TalentRoles),
		AgeGroups:             copyOptions(defaultCatalog.AgeGroups),
		SocioculturalProjects: copyOptions(defaultCatalog.SocioculturalProjects),
		ProfessionalKinds:     copyOptions(defaultCatalog.ProfessionalKinds),
		AmateurCategories:     copyOptions(defaultCatalog.AmateurCategories),
	}
}

func copyOptions(opts []Option) []Option {
	out := make([]Option, len(opts))
	copy(out, opts)

	return out
}

// ActivityTypeCodes lists the valid activity_type codes.
func ActivityTypeCodes() []interface{} {
	return codes(defaultCatalog.ActivityTypes)
}

// ProfessionalKindCodes lists the valid professional kind codes.
func ProfessionalKindCodes() []interface{} {
	return codes(defaultCatalog.ProfessionalKinds)
}

// AmateurCategoryCodes lists the valid amateur category codes.
func AmateurCategoryCodes() []interface{} {
	return codes(defaultCatalog.AmateurCategories)
}

// codes returns the option codes as []interface{} so they can feed
// validation.In directly.
func codes(opts []Option) []interface{} {
	out := make([]interface{}, len(opts))
	for i, o := range opts {
		out[i] = o.Code
	}

	return out
}
