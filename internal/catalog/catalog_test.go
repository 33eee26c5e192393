package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/culturarte/actividades-api/internal/domain"
)

func TestDefaultCatalogIsComplete(t *testing.T) {
	c := Default()

	assert.NotEmpty(t, c.ActivityTypes)
	assert.NotEmpty(t, c.Manifestations)
	assert.NotEmpty(t, c.TalentRoles)
	assert.NotEmpty(t, c.AgeGroups)
	assert.NotEmpty(t, c.SocioculturalProjects)
	assert.NotEmpty(t, c.ProfessionalKinds)
	assert.NotEmpty(t, c.AmateurCategories)
}

func TestOptionCodesAreUnique(t *testing.T) {
	c := Default()

	sets := map[string][]Option{
		"activity_types":          c.ActivityTypes,
		"cultural_manifestations": c.Manifestations,
		"talent_roles":            c.TalentRoles,
		"age_groups":              c.AgeGroups,
		"sociocultural_projects":  c.SocioculturalProjects,
		"professional_kinds":      c.ProfessionalKinds,
		"amateur_categories":      c.AmateurCategories,
	}

	for name, opts := range sets {
		seen := map[string]bool{}
		for _, o := range opts {
			assert.NotEmpty(t, o.Code, "%v has an option without a code", name)
			assert.NotEmpty(t, o.Label, "%v has an option without a label", name)
			assert.False(t, seen[o.Code], "%v has duplicate code %v", name, o.Code)
			seen[o.Code] = true
		}
	}
}

func TestDefaultIsIsolatedFromCallers(t *testing.T) {
	mutated := Default()
	mutated.Manifestations[0] = Option{Code: "Hacked", Label: "Hacked"}
	mutated.ActivityTypes[0].Code = "hacked_type"

	fresh := Default()
	assert.Equal(t, "Música", fresh.Manifestations[0].Code)
	assert.Equal(t, domain.ActivityTypeGeneralModel, fresh.ActivityTypes[0].Code)
	assert.Contains(t, ActivityTypeCodes(), domain.ActivityTypeGeneralModel)
}

func TestCodeListsMatchDomainConstants(t *testing.T) {
	assert.ElementsMatch(t,
		[]interface{}{domain.ActivityTypeGeneralModel, domain.ActivityTypeTransformingCommunity},
		ActivityTypeCodes(),
	)
	assert.ElementsMatch(t,
		[]interface{}{domain.ProfessionalKindSubsidized, domain.ProfessionalKindUnsubsidized},
		ProfessionalKindCodes(),
	)
	assert.ElementsMatch(t,
		[]interface{}{
			domain.AmateurCategoryGeneral,
			domain.AmateurCategoryMunicipal,
			domain.AmateurCategoryProvincial,
			domain.AmateurCategoryNational,
			domain.AmateurCategoryTraditionBearer,
		},
		AmateurCategoryCodes(),
	)
}
