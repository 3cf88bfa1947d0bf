// Package reconcile merges externally proposed plan updates and local user
// actions into the next canonical plan state. The core rule throughout:
// user-confirmed facts take precedence over derived estimates.
package reconcile

import (
	"time"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
)

// Reconcile produces the next canonical plan from the current plan and a
// proposed update (typically from the planning assistant). The proposed
// plan is normalized first; the current plan's identity always wins, so
// the assistant can never orphan a plan by proposing a different or
// missing ID; a transcript the proposal dropped is carried forward; an
// optional budget estimate is merged into the line items; and the version
// is bumped past both inputs so it never decreases.
func Reconcile(current, proposed *domain.EventPlan, est *budget.Estimate) *domain.EventPlan {
	next := domain.Normalize(proposed)

	if current != nil && current.PlanID != "" {
		next.PlanID = current.PlanID
	}

	// The assistant proposes content, not conversation history. When the
	// proposal omits the transcript, the current one survives.
	if current != nil && len(next.AIContext.Messages) == 0 {
		next.AIContext.Messages = append([]domain.ConversationTurn{}, current.AIContext.Messages...)
	}
	if current != nil && next.AIContext.LastUserRequest == "" {
		next.AIContext.LastUserRequest = current.AIContext.LastUserRequest
	}

	if est != nil {
		next = budget.MergeEstimate(next, *est)
	}

	version := next.Version
	if current != nil && current.Version > version {
		version = current.Version
	}
	next.Version = version + 1
	next.LastUpdated = time.Now().UTC()
	return next
}

// Apply runs a local user edit against a clone of the plan and commits it
// as a new version. All manual mutations (attendees, notes, budget target,
// metadata edits) flow through here so version bumping is uniform.
func Apply(plan *domain.EventPlan, edit func(*domain.EventPlan)) *domain.EventPlan {
	next := plan.Clone()
	edit(next)
	next.Version = plan.Version + 1
	next.LastUpdated = time.Now().UTC()
	return next
}
