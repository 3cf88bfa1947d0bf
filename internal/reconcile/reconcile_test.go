package reconcile

import (
	"testing"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_PreservesPlanID(t *testing.T) {
	current := domain.NewEmptyPlan("abc")
	proposed := &domain.EventPlan{
		EventMetadata: domain.EventMetadata{Title: "Birthday Bash"},
	}

	next := Reconcile(current, proposed, nil)

	assert.Equal(t, "abc", next.PlanID, "the assistant may never orphan a plan")
	assert.Equal(t, "Birthday Bash", next.EventMetadata.Title)
}

func TestReconcile_ForeignProposedIDIsOverridden(t *testing.T) {
	// An assistant that mints its own ID must not move the plan out from
	// under the user.
	current := domain.NewEmptyPlan("abc")
	proposed := domain.NewEmptyPlan("def")

	next := Reconcile(current, proposed, nil)
	assert.Equal(t, "abc", next.PlanID)
}

func TestReconcile_CarriesTranscriptForward(t *testing.T) {
	current := domain.NewEmptyPlan("abc")
	current.AIContext.Messages = []domain.ConversationTurn{
		{Role: domain.RoleUser, Content: "find venues"},
		{Role: domain.RoleAssistant, Content: "Here are three."},
	}
	current.AIContext.LastUserRequest = "find venues"

	// The proposal carries new content but no conversation history.
	proposed := domain.NewEmptyPlan("abc")
	proposed.EventMetadata.Title = "Gala"

	next := Reconcile(current, proposed, nil)
	require.Len(t, next.AIContext.Messages, 2)
	assert.Equal(t, "find venues", next.AIContext.Messages[0].Content)
	assert.Equal(t, "find venues", next.AIContext.LastUserRequest)
	assert.Equal(t, "Gala", next.EventMetadata.Title)

	// A proposal that does echo a transcript keeps its own.
	proposed.AIContext.Messages = []domain.ConversationTurn{
		{Role: domain.RoleUser, Content: "rewritten"},
	}
	next = Reconcile(current, proposed, nil)
	require.Len(t, next.AIContext.Messages, 1)
	assert.Equal(t, "rewritten", next.AIContext.Messages[0].Content)
}

func TestReconcile_VersionNeverDecreases(t *testing.T) {
	current := domain.NewEmptyPlan("abc")
	current.Version = 7

	// Assistant echoes a stale, lower version.
	proposed := domain.NewEmptyPlan("abc")
	proposed.Version = 2

	next := Reconcile(current, proposed, nil)
	assert.Equal(t, 8, next.Version)

	// Proposed may also be ahead (another device wrote through the store).
	proposed.Version = 12
	next = Reconcile(current, proposed, nil)
	assert.Equal(t, 13, next.Version)
}

func TestReconcile_NormalizesProposedPlan(t *testing.T) {
	current := domain.NewEmptyPlan("abc")
	next := Reconcile(current, &domain.EventPlan{}, nil)

	require.NoError(t, next.Validate())
	assert.NotNil(t, next.Schedule)
	assert.Len(t, next.Modules, len(domain.WellKnownModuleKeys))
}

func TestReconcile_MergesEstimate(t *testing.T) {
	current := domain.NewEmptyPlan("abc")
	proposed := domain.NewEmptyPlan("abc")
	proposed.EventMetadata.GuestCount = 50

	est := &budget.Estimate{VenueCost: 5000, CateringCost: 750, TotalEstimated: 5750}
	next := Reconcile(current, proposed, est)

	ids := make(map[string]float64)
	for _, item := range next.Budget.Items {
		ids[item.ID] = item.Cost
	}
	assert.Equal(t, float64(5000), ids[budget.AutoVenueItemID])
	assert.Equal(t, float64(750), ids[budget.AutoCateringItemID])
}

func TestReconcile_NilProposedFallsBackToEmpty(t *testing.T) {
	current := domain.NewEmptyPlan("abc")
	current.Version = 3

	next := Reconcile(current, nil, nil)

	assert.Equal(t, "abc", next.PlanID)
	assert.Equal(t, 4, next.Version)
	require.NoError(t, next.Validate())
}

func TestApply_BumpsVersionAndLeavesOriginalAlone(t *testing.T) {
	plan := domain.NewEmptyPlan("abc")
	plan.Version = 5

	next := Apply(plan, func(p *domain.EventPlan) {
		p.Attendees = append(p.Attendees, domain.AttendeeItem{
			ID: "a1", Name: "Dana", Email: "dana@example.com", RSVPStatus: domain.RSVPInvited,
		})
	})

	assert.Equal(t, 6, next.Version)
	assert.Len(t, next.Attendees, 1)
	assert.Empty(t, plan.Attendees, "original plan value is untouched")
	assert.Equal(t, 5, plan.Version)
}
