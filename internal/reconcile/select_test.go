package reconcile

import (
	"testing"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planInReview(t *testing.T, key string, candidates ...domain.Candidate) *domain.EventPlan {
	t.Helper()
	plan := domain.NewEmptyPlan("p1")
	plan.Modules[key] = domain.DecisionModule{
		ID: key, Type: key, Status: domain.ModuleReview, Candidates: candidates,
	}
	return plan
}

func TestSelectCandidate_BooksModuleAndAddsLine(t *testing.T) {
	plan := planInReview(t, "venue",
		domain.Candidate{Name: "Town Hall", PriceEstimate: 5000},
		domain.Candidate{Name: "Warehouse", PriceEstimate: 3000},
	)

	next, err := SelectCandidate(plan, "venue", 0)
	require.NoError(t, err)

	m := next.Modules["venue"]
	assert.Equal(t, domain.ModuleBooked, m.Status)
	require.NotNil(t, m.SelectedChoice)
	assert.Equal(t, "Town Hall", m.SelectedChoice.Name)
	require.NoError(t, next.Validate())

	require.Len(t, next.Budget.Items, 1)
	line := next.Budget.Items[0]
	assert.Equal(t, ModuleLineID("venue"), line.ID)
	assert.Equal(t, float64(5000), line.Cost)
	assert.Equal(t, domain.BudgetItemConfirmed, line.Status)
	assert.Equal(t, domain.SourceUser, line.Source)
}

func TestSelectCandidate_Idempotent(t *testing.T) {
	plan := planInReview(t, "venue", domain.Candidate{Name: "Town Hall", PriceEstimate: 5000})

	once, err := SelectCandidate(plan, "venue", 0)
	require.NoError(t, err)
	twice, err := SelectCandidate(once, "venue", 0)
	require.NoError(t, err)

	var count int
	for _, item := range twice.Budget.Items {
		if item.ID == ModuleLineID("venue") {
			count++
		}
	}
	assert.Equal(t, 1, count, "selecting twice yields exactly one line")
}

func TestSelectCandidate_RemovesSameCategoryEstimates(t *testing.T) {
	plan := planInReview(t, "venue", domain.Candidate{Name: "Town Hall", PriceEstimate: 5000})
	plan.Budget.Items = []domain.BudgetItem{
		{ID: budget.AutoVenueItemID, Category: "venue", Cost: 9000, Source: domain.SourceExternal},
		{ID: "other", Category: "photography", Cost: 400},
	}

	next, err := SelectCandidate(plan, "venue", 0)
	require.NoError(t, err)

	ids := make([]string, 0, len(next.Budget.Items))
	for _, item := range next.Budget.Items {
		ids = append(ids, item.ID)
	}
	assert.ElementsMatch(t, []string{"other", ModuleLineID("venue")}, ids,
		"prior estimate in the same category is removed, unrelated lines kept")
}

func TestSelectCandidate_PerPersonModule(t *testing.T) {
	plan := planInReview(t, "catering", domain.Candidate{Name: "Caterer", PriceEstimate: 15})
	plan.EventMetadata.GuestCount = 50

	next, err := SelectCandidate(plan, "catering", 0)
	require.NoError(t, err)

	require.Len(t, next.Budget.Items, 1)
	line := next.Budget.Items[0]
	assert.Equal(t, float64(750), line.Cost)
	assert.Equal(t, float64(15), line.UnitPrice)
	assert.Equal(t, 50, line.Quantity)
	assert.Equal(t, domain.PricePerPerson, line.PriceType)
}

func TestSelectCandidate_Errors(t *testing.T) {
	plan := planInReview(t, "venue", domain.Candidate{Name: "Town Hall", PriceEstimate: 5000})

	_, err := SelectCandidate(plan, "florist", 0)
	assert.Error(t, err, "unknown module")

	_, err = SelectCandidate(plan, "venue", 3)
	assert.Error(t, err, "candidate index out of range")

	idle := domain.NewEmptyPlan("p2")
	idle.Modules["venue"] = domain.DecisionModule{ID: "venue", Type: "venue", Status: domain.ModuleIdle,
		Candidates: []domain.Candidate{{Name: "X", PriceEstimate: 1}}}
	_, err = SelectCandidate(idle, "venue", 0)
	assert.Error(t, err, "idle module cannot jump straight to booked")
}

func TestResetModule_RetainsCandidates(t *testing.T) {
	plan := planInReview(t, "venue",
		domain.Candidate{Name: "Town Hall", PriceEstimate: 5000},
		domain.Candidate{Name: "Warehouse", PriceEstimate: 3000},
	)
	booked, err := SelectCandidate(plan, "venue", 0)
	require.NoError(t, err)

	reset, err := ResetModule(booked, "venue")
	require.NoError(t, err)

	m := reset.Modules["venue"]
	assert.Equal(t, domain.ModuleReview, m.Status)
	assert.Nil(t, m.SelectedChoice)
	assert.Len(t, m.Candidates, 2, "reset never discards fetched candidates")
	assert.Empty(t, reset.Budget.Items, "module line is withdrawn")
	assert.Equal(t, booked.Version+1, reset.Version)
}

func TestResetModule_FromIdleFails(t *testing.T) {
	plan := domain.NewEmptyPlan("p1")
	_, err := ResetModule(plan, "venue")
	assert.Error(t, err)
}

func TestScenario_SelectionsDriveBudget(t *testing.T) {
	// Empty plan, target 10000, 50 guests; book venue at 5000 flat and
	// catering at 15 per person; the aggregate must land within budget.
	plan := domain.NewEmptyPlan("p1")
	plan.EventMetadata.GuestCount = 50
	plan.Budget.TargetAmount = 10000
	plan.Modules["venue"] = domain.DecisionModule{
		ID: "venue", Type: "venue", Status: domain.ModuleReview,
		Candidates: []domain.Candidate{{Name: "Town Hall", PriceEstimate: 5000}},
	}
	plan.Modules["catering"] = domain.DecisionModule{
		ID: "catering", Type: "catering", Status: domain.ModuleReview,
		Candidates: []domain.Candidate{{Name: "Caterer", PriceEstimate: 15}},
	}

	plan, err := SelectCandidate(plan, "venue", 0)
	require.NoError(t, err)
	plan, err = SelectCandidate(plan, "catering", 0)
	require.NoError(t, err)

	calc := budget.Calculate(plan)
	assert.Equal(t, float64(5750), calc.TotalCost)
	assert.Equal(t, float64(4250), calc.RemainingBudget)
	assert.Equal(t, float64(115), calc.PerPersonCost)
	assert.Equal(t, domain.BudgetWithin, calc.Status)
}
