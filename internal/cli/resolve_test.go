package cli

import (
	"context"
	"io"
	"testing"

	"github.com/planpilothq/planpilot/internal/repository"
	"github.com/planpilothq/planpilot/internal/service"
	"github.com/planpilothq/planpilot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	return &App{
		Plans:  service.NewPlanService(repo),
		Emails: service.NewEmailService(repo, io.Discard),
	}
}

func TestResolvePlanID(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	gala, err := app.Plans.Create(ctx, testutil.NewTestPlan("Spring Gala"))
	require.NoError(t, err)
	_, err = app.Plans.Create(ctx, testutil.NewTestPlan("Winter Retreat"))
	require.NoError(t, err)

	id, err := resolvePlanID(ctx, app, gala.PlanID)
	require.NoError(t, err)
	assert.Equal(t, gala.PlanID, id)

	id, err = resolvePlanID(ctx, app, gala.PlanID[:8])
	require.NoError(t, err)
	assert.Equal(t, gala.PlanID, id)

	id, err = resolvePlanID(ctx, app, "spring gala")
	require.NoError(t, err)
	assert.Equal(t, gala.PlanID, id)

	_, err = resolvePlanID(ctx, app, "nonexistent")
	assert.Error(t, err)

	_, err = resolvePlanID(ctx, app, "")
	assert.Error(t, err)
}

func TestResolvePlanID_AmbiguousPrefix(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	a := testutil.NewTestPlan("A")
	a.PlanID = "shared-prefix-aaaa"
	b := testutil.NewTestPlan("B")
	b.PlanID = "shared-prefix-bbbb"
	_, err := app.Plans.Create(ctx, a)
	require.NoError(t, err)
	_, err = app.Plans.Create(ctx, b)
	require.NoError(t, err)

	_, err = resolvePlanID(ctx, app, "shared-prefix")
	assert.ErrorContains(t, err, "ambiguous")
}

func TestResolveAttendeeID(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	seed, err := app.Plans.Create(ctx, testutil.NewTestPlan("Guests"))
	require.NoError(t, err)
	plan, err := app.Plans.AddAttendee(ctx, seed.PlanID, "Ada Lovelace", "ada@example.com", "")
	require.NoError(t, err)

	id, err := resolveAttendeeID(ctx, app, seed.PlanID, "ada lovelace")
	require.NoError(t, err)
	assert.Equal(t, plan.Attendees[0].ID, id)

	_, err = resolveAttendeeID(ctx, app, seed.PlanID, "nobody")
	assert.Error(t, err)
}
