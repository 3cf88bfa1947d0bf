package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_IsIndependent(t *testing.T) {
	orig := NewEmptyPlan("p1")
	orig.Budget.Items = []BudgetItem{{ID: "b1", Category: "venue", Cost: 100}}
	orig.Modules["venue"] = DecisionModule{
		ID: "venue", Type: "venue", Status: ModuleReview,
		Candidates: []Candidate{{Name: "Hall", PriceEstimate: 500, Pros: []string{"central"}}},
	}

	cp := orig.Clone()
	cp.Budget.Items[0].Cost = 999
	m := cp.Modules["venue"]
	m.Candidates[0].Name = "Changed"
	m.Status = ModuleBooked
	cp.Modules["venue"] = m

	assert.Equal(t, float64(100), orig.Budget.Items[0].Cost)
	assert.Equal(t, "Hall", orig.Modules["venue"].Candidates[0].Name)
	assert.Equal(t, ModuleReview, orig.Modules["venue"].Status)
}

func TestModuleStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from, to ModuleStatus
		want     bool
	}{
		{ModuleIdle, ModuleScouting, true},
		{ModuleIdle, ModuleReview, false},
		{ModuleIdle, ModuleBooked, false},
		{ModuleScouting, ModuleReview, true},
		{ModuleScouting, ModuleIdle, false},
		{ModuleReview, ModuleReview, true},
		{ModuleReview, ModuleBooked, true},
		{ModuleReview, ModuleScouting, false},
		{ModuleBooked, ModuleReview, true},
		{ModuleBooked, ModuleIdle, false},
		{ModuleBooked, ModuleScouting, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransition(tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestValidate_RejectsBrokenPlans(t *testing.T) {
	base := func() *EventPlan { return NewEmptyPlan("p1") }

	t.Run("negative target", func(t *testing.T) {
		p := base()
		p.Budget.TargetAmount = -1
		assert.Error(t, p.Validate())
	})

	t.Run("duplicate budget item ids", func(t *testing.T) {
		p := base()
		p.Budget.Items = []BudgetItem{{ID: "x"}, {ID: "x"}}
		assert.Error(t, p.Validate())
	})

	t.Run("module id mismatch", func(t *testing.T) {
		p := base()
		p.Modules["venue"] = DecisionModule{ID: "other", Type: "venue", Status: ModuleIdle}
		assert.Error(t, p.Validate())
	})

	t.Run("booked without choice", func(t *testing.T) {
		p := base()
		p.Modules["venue"] = DecisionModule{ID: "venue", Type: "venue", Status: ModuleBooked}
		assert.Error(t, p.Validate())
	})

	t.Run("idle with choice", func(t *testing.T) {
		p := base()
		c := Candidate{Name: "Hall"}
		p.Modules["venue"] = DecisionModule{ID: "venue", Type: "venue", Status: ModuleIdle, SelectedChoice: &c}
		assert.Error(t, p.Validate())
	})
}

func TestHasBudgetSignal(t *testing.T) {
	p := NewEmptyPlan("p1")
	assert.False(t, p.HasBudgetSignal())

	p.EventMetadata.GuestCount = 20
	assert.True(t, p.HasBudgetSignal())

	q := NewEmptyPlan("p2")
	q.EventMetadata.Type = "birthday"
	assert.True(t, q.HasBudgetSignal())
}

func TestNewEmptyPlan_IsValid(t *testing.T) {
	p := NewEmptyPlan("p1")
	require.NoError(t, p.Validate())
}
