package formatter

import (
	"testing"

	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "AUD 0", FormatCurrency("AUD", 0))
	assert.Equal(t, "AUD 750", FormatCurrency("AUD", 750))
	assert.Equal(t, "AUD 5,750", FormatCurrency("AUD", 5750))
	assert.Equal(t, "AUD 1,250,000", FormatCurrency("AUD", 1250000))
	assert.Equal(t, "AUD 71.88", FormatCurrency("AUD", 71.88))
	assert.Equal(t, "AUD 5,750", FormatCurrency("", 5750), "currency defaults to AUD")
}

func TestBudgetStatusPill(t *testing.T) {
	assert.Contains(t, BudgetStatusPill(domain.BudgetWithin), "WITHIN BUDGET")
	assert.Contains(t, BudgetStatusPill(domain.BudgetOver), "OVER BUDGET")
	assert.Contains(t, BudgetStatusPill(domain.BudgetNone), "NO BUDGET")
}

func TestModuleStatusPill(t *testing.T) {
	assert.Contains(t, ModuleStatusPill(domain.ModuleIdle), "Idle")
	assert.Contains(t, ModuleStatusPill(domain.ModuleScouting), "Scouting")
	assert.Contains(t, ModuleStatusPill(domain.ModuleReview), "Review")
	assert.Contains(t, ModuleStatusPill(domain.ModuleBooked), "Booked")
}

func TestRSVPPill(t *testing.T) {
	assert.Contains(t, RSVPPill(domain.RSVPConfirmed), "Confirmed")
	assert.Contains(t, RSVPPill(domain.RSVPDeclined), "Declined")
	assert.Contains(t, RSVPPill(domain.RSVPMaybe), "Maybe")
	assert.Contains(t, RSVPPill(domain.RSVPInvited), "Invited")
}
