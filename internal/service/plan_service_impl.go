package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/planpilothq/planpilot/internal/reconcile"
	"github.com/planpilothq/planpilot/internal/repository"
)

type planService struct {
	plans repository.PlanRepo
}

func NewPlanService(plans repository.PlanRepo) PlanService {
	return &planService{plans: plans}
}

func (s *planService) Create(ctx context.Context, p *domain.EventPlan) (*domain.EventPlan, error) {
	next := domain.Normalize(p)
	if next.PlanID == "" {
		next.PlanID = uuid.New().String()
	}
	next.Version = 1
	next.LastUpdated = time.Now().UTC()
	if err := s.plans.Put(ctx, next); err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}
	return next, nil
}

func (s *planService) Get(ctx context.Context, id string) (*domain.EventPlan, error) {
	return s.plans.Get(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]repository.PlanSummary, error) {
	return s.plans.ListSummaries(ctx)
}

func (s *planService) Rename(ctx context.Context, id, title string) (*domain.EventPlan, error) {
	return s.edit(ctx, id, func(p *domain.EventPlan) {
		p.EventMetadata.Title = title
	})
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

func (s *planService) SetBudgetTarget(ctx context.Context, id string, amount float64) (*domain.EventPlan, error) {
	if amount < 0 {
		return nil, fmt.Errorf("budget target must not be negative, got %v", amount)
	}
	return s.edit(ctx, id, func(p *domain.EventPlan) {
		p.Budget.TargetAmount = amount
	})
}

func (s *planService) AddNote(ctx context.Context, id, content string, author domain.NoteAuthor) (*domain.EventPlan, error) {
	if content == "" {
		return nil, fmt.Errorf("note content must not be empty")
	}
	return s.edit(ctx, id, func(p *domain.EventPlan) {
		p.Notes = append(p.Notes, domain.NoteItem{
			ID:        uuid.New().String(),
			Content:   content,
			CreatedBy: author,
			CreatedAt: time.Now().UTC(),
		})
	})
}

func (s *planService) AddAttendee(ctx context.Context, id, name, email, role string) (*domain.EventPlan, error) {
	if name == "" {
		return nil, fmt.Errorf("attendee name must not be empty")
	}
	return s.edit(ctx, id, func(p *domain.EventPlan) {
		p.Attendees = append(p.Attendees, domain.AttendeeItem{
			ID:         uuid.New().String(),
			Name:       name,
			Email:      email,
			Role:       role,
			RSVPStatus: domain.RSVPInvited,
		})
	})
}

func (s *planService) RemoveAttendee(ctx context.Context, id, attendeeID string) (*domain.EventPlan, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !hasAttendee(plan, attendeeID) {
		return nil, fmt.Errorf("no attendee %q in plan", attendeeID)
	}
	next := reconcile.Apply(plan, func(p *domain.EventPlan) {
		kept := p.Attendees[:0]
		for _, a := range p.Attendees {
			if a.ID != attendeeID {
				kept = append(kept, a)
			}
		}
		p.Attendees = kept
	})
	if err := s.plans.Put(ctx, next); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return next, nil
}

func (s *planService) SetRSVP(ctx context.Context, id, attendeeID string, status domain.RSVPStatus) (*domain.EventPlan, error) {
	if !domain.ValidRSVPStatuses[status] {
		return nil, fmt.Errorf("invalid RSVP status %q", status)
	}
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !hasAttendee(plan, attendeeID) {
		return nil, fmt.Errorf("no attendee %q in plan", attendeeID)
	}
	next := reconcile.Apply(plan, func(p *domain.EventPlan) {
		for i := range p.Attendees {
			if p.Attendees[i].ID == attendeeID {
				p.Attendees[i].RSVPStatus = status
			}
		}
	})
	if err := s.plans.Put(ctx, next); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return next, nil
}

func (s *planService) SelectCandidate(ctx context.Context, id, moduleKey string, candidateIdx int) (*domain.EventPlan, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := reconcile.SelectCandidate(plan, moduleKey, candidateIdx)
	if err != nil {
		return nil, err
	}
	if err := s.plans.Put(ctx, next); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return next, nil
}

func (s *planService) ResetModule(ctx context.Context, id, moduleKey string) (*domain.EventPlan, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := reconcile.ResetModule(plan, moduleKey)
	if err != nil {
		return nil, err
	}
	if err := s.plans.Put(ctx, next); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return next, nil
}

// edit runs a local mutation through the uniform version-bumping path and
// persists the result.
func (s *planService) edit(ctx context.Context, id string, fn func(*domain.EventPlan)) (*domain.EventPlan, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := reconcile.Apply(plan, fn)
	if err := s.plans.Put(ctx, next); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return next, nil
}

func hasAttendee(plan *domain.EventPlan, attendeeID string) bool {
	for _, a := range plan.Attendees {
		if a.ID == attendeeID {
			return true
		}
	}
	return false
}
