package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/planpilothq/planpilot/internal/reconcile"
	"github.com/planpilothq/planpilot/internal/repository"
)

type emailService struct {
	plans repository.PlanRepo
	logw  io.Writer
}

// NewEmailService wires draft generation. logw receives non-fatal
// persistence failures from the draft trace notes.
func NewEmailService(plans repository.PlanRepo, logw io.Writer) EmailService {
	return &emailService{plans: plans, logw: logw}
}

func (s *emailService) DraftInvite(ctx context.Context, planID string) (*EmailDraft, error) {
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if len(plan.Attendees) == 0 {
		return nil, fmt.Errorf("plan has no attendees to invite")
	}

	title := plan.EventMetadata.Title
	if title == "" {
		title = "our event"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi there,\n\nYou're invited to %s", title)
	if plan.EventMetadata.Date != "" {
		fmt.Fprintf(&b, " on %s", plan.EventMetadata.Date)
	}
	if loc := formatLocation(plan.EventMetadata.Location); loc != "" {
		fmt.Fprintf(&b, " at %s", loc)
	}
	b.WriteString(".\n")
	if plan.EventMetadata.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", plan.EventMetadata.Description)
	}
	if len(plan.Schedule) > 0 {
		b.WriteString("\nWhat's on:\n")
		for _, item := range plan.Schedule {
			if item.Time != "" {
				fmt.Fprintf(&b, "  %s  %s\n", item.Time, item.Activity)
			} else {
				fmt.Fprintf(&b, "  - %s\n", item.Activity)
			}
		}
	}
	b.WriteString("\nPlease reply to let us know whether you can make it.\n")

	draft := &EmailDraft{
		Subject:    fmt.Sprintf("You're invited: %s", title),
		Body:       b.String(),
		Recipients: attendeeEmails(plan.Attendees),
	}
	s.recordDraft(ctx, plan, "invitation")
	return draft, nil
}

func (s *emailService) DraftStatusUpdate(ctx context.Context, planID string) (*EmailDraft, error) {
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if len(plan.Attendees) == 0 {
		return nil, fmt.Errorf("plan has no attendees to update")
	}

	title := plan.EventMetadata.Title
	if title == "" {
		title = "our event"
	}

	var confirmed, declined, pending int
	for _, a := range plan.Attendees {
		switch a.RSVPStatus {
		case domain.RSVPConfirmed:
			confirmed++
		case domain.RSVPDeclined:
			declined++
		default:
			pending++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi all,\n\nA quick update on %s", title)
	if plan.EventMetadata.Date != "" {
		fmt.Fprintf(&b, " (%s)", plan.EventMetadata.Date)
	}
	b.WriteString(".\n\n")
	fmt.Fprintf(&b, "RSVPs so far: %d confirmed, %d declined, %d still to reply.\n",
		confirmed, declined, pending)
	if len(plan.Schedule) > 0 {
		fmt.Fprintf(&b, "The schedule currently has %d items locked in.\n", len(plan.Schedule))
	}
	b.WriteString("\nIf you haven't replied yet, please do so soon.\n")

	draft := &EmailDraft{
		Subject:    fmt.Sprintf("Update: %s", title),
		Body:       b.String(),
		Recipients: attendeeEmails(plan.Attendees),
	}
	s.recordDraft(ctx, plan, "status update")
	return draft, nil
}

// recordDraft leaves a note on the plan that a draft was produced. Like
// transcript writes, this is best-effort.
func (s *emailService) recordDraft(ctx context.Context, plan *domain.EventPlan, kind string) {
	next := reconcile.Apply(plan, func(p *domain.EventPlan) {
		p.Notes = append(p.Notes, domain.NoteItem{
			ID:        uuid.New().String(),
			Content:   fmt.Sprintf("Drafted %s email for %d attendees", kind, len(p.Attendees)),
			CreatedBy: domain.NoteByAI,
			CreatedAt: time.Now().UTC(),
		})
	})
	if err := s.plans.Put(ctx, next); err != nil && s.logw != nil {
		fmt.Fprintf(s.logw, "persisting draft note for plan %s: %v\n", plan.PlanID, err)
	}
}

func attendeeEmails(attendees []domain.AttendeeItem) []string {
	out := make([]string, 0, len(attendees))
	for _, a := range attendees {
		if a.Email != "" {
			out = append(out, a.Email)
		}
	}
	return out
}

func formatLocation(loc domain.Location) string {
	switch {
	case loc.Venue != "" && loc.City != "":
		return loc.Venue + ", " + loc.City
	case loc.Venue != "":
		return loc.Venue
	default:
		return loc.City
	}
}
