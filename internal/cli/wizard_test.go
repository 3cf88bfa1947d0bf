package cli

import (
	"testing"

	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateOptionalDate(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2026-10-12"))
	assert.Error(t, validateOptionalDate("12/10/2026"))
	assert.Error(t, validateOptionalDate("soonish"))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt(""))
	assert.NoError(t, validatePositiveInt("50"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-3"))
	assert.Error(t, validatePositiveInt("fifty"))
}

func TestValidateNonNegativeAmount(t *testing.T) {
	assert.NoError(t, validateNonNegativeAmount(""))
	assert.NoError(t, validateNonNegativeAmount("0"))
	assert.NoError(t, validateNonNegativeAmount("9999.50"))
	assert.Error(t, validateNonNegativeAmount("-1"))
	assert.Error(t, validateNonNegativeAmount("lots"))
}

func TestPlanFromAnswers(t *testing.T) {
	p := planFromAnswers(eventWizardAnswers{
		EventType:  "gala",
		Title:      "Spring Gala",
		Date:       "2026-10-12",
		City:       "Sydney",
		GuestCount: "60",
		Budget:     "15000",
	})

	assert.Equal(t, "gala", p.EventMetadata.Type)
	assert.Equal(t, "Spring Gala", p.EventMetadata.Title)
	assert.Equal(t, "Sydney", p.EventMetadata.Location.City)
	assert.Equal(t, 60, p.EventMetadata.GuestCount)
	assert.Equal(t, float64(15000), p.Budget.TargetAmount)
	assert.Equal(t, domain.EventPlanning, p.EventMetadata.Status)
	// Structural completeness comes from the empty-plan base.
	assert.Len(t, p.Modules, 3)
}

func TestPlanFromAnswers_LenientNumbers(t *testing.T) {
	p := planFromAnswers(eventWizardAnswers{Title: "Loose", GuestCount: "", Budget: "not a number"})
	assert.Equal(t, 0, p.EventMetadata.GuestCount)
	assert.Equal(t, float64(0), p.Budget.TargetAmount)
}
