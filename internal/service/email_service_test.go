package service

import (
	"context"
	"io"
	"testing"

	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/planpilothq/planpilot/internal/repository"
	"github.com/planpilothq/planpilot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmailFixture(t *testing.T) (EmailService, PlanService, repository.PlanRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	return NewEmailService(repo, io.Discard), NewPlanService(repo), repo
}

func TestEmailService_InviteRequiresAttendees(t *testing.T) {
	emails, plans, _ := newEmailFixture(t)
	ctx := context.Background()

	seed, err := plans.Create(ctx, testutil.NewTestPlan("Lonely Event"))
	require.NoError(t, err)

	_, err = emails.DraftInvite(ctx, seed.PlanID)
	assert.Error(t, err)
}

func TestEmailService_InviteDraft(t *testing.T) {
	emails, plans, repo := newEmailFixture(t)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Spring Gala",
		testutil.WithAttendee("Ada", "ada@example.com", domain.RSVPInvited),
		testutil.WithAttendee("Grace", "grace@example.com", domain.RSVPConfirmed),
	)
	plan.EventMetadata.Date = "2026-10-12"
	plan.EventMetadata.Location = domain.Location{Venue: "Harbour Hall", City: "Sydney"}
	plan.Schedule = []domain.ScheduleItem{
		{ID: "s1", Time: "18:00", Activity: "Welcome drinks", Status: domain.ScheduleConfirmed},
		{ID: "s2", Activity: "Dinner", Status: domain.SchedulePlanning},
	}
	seed, err := plans.Create(ctx, plan)
	require.NoError(t, err)

	draft, err := emails.DraftInvite(ctx, seed.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "You're invited: Spring Gala", draft.Subject)
	assert.Contains(t, draft.Body, "2026-10-12")
	assert.Contains(t, draft.Body, "Harbour Hall, Sydney")
	assert.Contains(t, draft.Body, "Welcome drinks")
	assert.Equal(t, []string{"ada@example.com", "grace@example.com"}, draft.Recipients)

	// The draft leaves a trace on the plan.
	stored, err := repo.Get(ctx, seed.PlanID)
	require.NoError(t, err)
	require.Len(t, stored.Notes, 1)
	assert.Contains(t, stored.Notes[0].Content, "invitation")
}

func TestEmailService_StatusUpdateCountsRSVPs(t *testing.T) {
	emails, plans, _ := newEmailFixture(t)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Check-in",
		testutil.WithAttendee("A", "a@example.com", domain.RSVPConfirmed),
		testutil.WithAttendee("B", "b@example.com", domain.RSVPConfirmed),
		testutil.WithAttendee("C", "c@example.com", domain.RSVPDeclined),
		testutil.WithAttendee("D", "d@example.com", domain.RSVPInvited),
	)
	seed, err := plans.Create(ctx, plan)
	require.NoError(t, err)

	draft, err := emails.DraftStatusUpdate(ctx, seed.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "Update: Check-in", draft.Subject)
	assert.Contains(t, draft.Body, "2 confirmed, 1 declined, 1 still to reply")
}
