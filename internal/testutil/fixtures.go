package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/planpilothq/planpilot/internal/domain"
)

// Plan options
type PlanOption func(*domain.EventPlan)

func WithGuestCount(n int) PlanOption {
	return func(p *domain.EventPlan) {
		p.EventMetadata.GuestCount = n
	}
}

func WithEventType(t string) PlanOption {
	return func(p *domain.EventPlan) {
		p.EventMetadata.Type = t
	}
}

func WithTargetBudget(amount float64) PlanOption {
	return func(p *domain.EventPlan) {
		p.Budget.TargetAmount = amount
	}
}

func WithVersion(v int) PlanOption {
	return func(p *domain.EventPlan) {
		p.Version = v
	}
}

func WithBudgetItem(item domain.BudgetItem) PlanOption {
	return func(p *domain.EventPlan) {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		p.Budget.Items = append(p.Budget.Items, item)
	}
}

func WithModule(key string, m domain.DecisionModule) PlanOption {
	return func(p *domain.EventPlan) {
		m.ID = key
		if m.Type == "" {
			m.Type = key
		}
		p.Modules[key] = m
	}
}

func WithVendor(v domain.VendorItem) PlanOption {
	return func(p *domain.EventPlan) {
		if v.ID == "" {
			v.ID = uuid.New().String()
		}
		p.Vendors = append(p.Vendors, v)
	}
}

func WithAttendee(name, email string, status domain.RSVPStatus) PlanOption {
	return func(p *domain.EventPlan) {
		p.Attendees = append(p.Attendees, domain.AttendeeItem{
			ID:         uuid.New().String(),
			Name:       name,
			Email:      email,
			RSVPStatus: status,
		})
	}
}

// NewTestPlan builds a normalized plan with a fixed title and stable
// timestamps, customized through options.
func NewTestPlan(title string, opts ...PlanOption) *domain.EventPlan {
	p := domain.NewEmptyPlan(uuid.New().String())
	p.EventMetadata.Title = title
	p.EventMetadata.Status = domain.EventPlanning
	p.LastUpdated = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestCandidate builds a module candidate with the given price.
func NewTestCandidate(name string, price float64) domain.Candidate {
	return domain.Candidate{
		Name:          name,
		Description:   name + " description",
		PriceEstimate: price,
		Currency:      "AUD",
		Rating:        4.2,
	}
}
