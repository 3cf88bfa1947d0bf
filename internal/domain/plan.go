package domain

import (
	"fmt"
	"time"
)

// EventPlan is the root aggregate for one event. A plan value is never
// mutated in place: every committed change produces a new value with a
// bumped Version, so stale copies can be detected at persistence time.
type EventPlan struct {
	PlanID        string                    `json:"planId"`
	Version       int                       `json:"version"`
	LastUpdated   time.Time                 `json:"lastUpdated"`
	EventMetadata EventMetadata             `json:"eventMetadata"`
	Schedule      []ScheduleItem            `json:"schedule"`
	Vendors       []VendorItem              `json:"vendors"`
	Attendees     []AttendeeItem            `json:"attendees"`
	Notes         []NoteItem                `json:"notes"`
	Budget        BudgetData                `json:"budget"`
	Modules       map[string]DecisionModule `json:"modules"`
	AIContext     AIContext                 `json:"aiContext"`
}

type EventMetadata struct {
	Type        string      `json:"type,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Date        string      `json:"date,omitempty"`
	EndDate     string      `json:"endDate,omitempty"`
	Location    Location    `json:"location"`
	GuestCount  int         `json:"guestCount,omitempty"`
	Status      EventStatus `json:"status"`
}

type Location struct {
	City  string `json:"city,omitempty"`
	Venue string `json:"venue,omitempty"`
}

type ScheduleItem struct {
	ID          string         `json:"id"`
	Time        string         `json:"time,omitempty"`
	DurationMin int            `json:"durationMin,omitempty"`
	Activity    string         `json:"activity"`
	Location    string         `json:"location,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Status      ScheduleStatus `json:"status"`
}

type VendorItem struct {
	ID                  string               `json:"id"`
	Category            string               `json:"category"`
	Name                string               `json:"name,omitempty"`
	Description         string               `json:"description,omitempty"`
	Cost                float64              `json:"cost,omitempty"`
	Currency            string               `json:"currency,omitempty"`
	Status              VendorStatus         `json:"status"`
	ResearchSuggestions []ResearchSuggestion `json:"researchSuggestions"`
}

// ResearchSuggestion is an AI-proposed vendor candidate attached to a
// vendor slot that has not been filled yet.
type ResearchSuggestion struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	EstimatedCost float64 `json:"estimatedCost,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Reasoning     string  `json:"reasoning,omitempty"`
	Link          string  `json:"link,omitempty"`
}

type AttendeeItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role,omitempty"`
	RSVPStatus RSVPStatus `json:"rsvpStatus"`
}

type NoteItem struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	CreatedBy NoteAuthor `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
}

type BudgetData struct {
	// TargetAmount is the user's spending ceiling. Zero means unset.
	TargetAmount float64      `json:"targetAmount"`
	Currency     string       `json:"currency"`
	Items        []BudgetItem `json:"items"`
}

type BudgetItem struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name,omitempty"`
	// Cost is the absolute total in currency units. When PriceType is
	// per-unit and UnitPrice/Quantity are set, Cost ≈ UnitPrice × Quantity.
	Cost      float64          `json:"cost"`
	UnitPrice float64          `json:"unitPrice,omitempty"`
	Quantity  int              `json:"quantity,omitempty"`
	PriceType PriceType        `json:"priceType,omitempty"`
	Status    BudgetItemStatus `json:"status"`
	Source    BudgetItemSource `json:"source"`
	// VendorID is a weak back-reference; the item does not own the vendor.
	VendorID string `json:"vendorId,omitempty"`
}

// DecisionModule tracks one category-level decision (venue, catering, ...)
// through the idle → scouting → review → booked lifecycle.
type DecisionModule struct {
	ID           string             `json:"id"`
	Type         string             `json:"type"`
	Status       ModuleStatus       `json:"status"`
	Requirements ModuleRequirements `json:"requirements"`
	Candidates   []Candidate        `json:"candidates"`
	// SelectedChoice is a copy of the chosen candidate, owned by the
	// module. Nil unless the module is booked (or reset back to review).
	SelectedChoice *Candidate `json:"selectedChoice"`
}

type ModuleRequirements struct {
	Description string  `json:"description,omitempty"`
	MinBudget   float64 `json:"minBudget,omitempty"`
	MaxBudget   float64 `json:"maxBudget,omitempty"`
}

type Candidate struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	PriceEstimate float64  `json:"priceEstimate,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Pros          []string `json:"pros,omitempty"`
	Cons          []string `json:"cons,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Website       string   `json:"website,omitempty"`
}

// AIContext holds the conversation transcript and assistant bookkeeping.
type AIContext struct {
	Messages        []ConversationTurn `json:"messages"`
	LastUserRequest string             `json:"lastUserRequest,omitempty"`
	PendingActions  []string           `json:"pendingActions"`
}

type ConversationTurn struct {
	Role      TurnRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// HasBudgetSignal reports whether the plan carries enough information for
// a budget estimate to be worth deriving.
func (p *EventPlan) HasBudgetSignal() bool {
	return p.EventMetadata.GuestCount > 0 || p.EventMetadata.Type != ""
}

// Module returns the decision module for key, if present.
func (p *EventPlan) Module(key string) (DecisionModule, bool) {
	m, ok := p.Modules[key]
	return m, ok
}

// Validate checks the structural invariants of a plan. A normalized plan
// always passes.
func (p *EventPlan) Validate() error {
	if p.Budget.TargetAmount < 0 {
		return fmt.Errorf("budget target must not be negative, got %v", p.Budget.TargetAmount)
	}
	if p.Version < 0 {
		return fmt.Errorf("version must not be negative, got %d", p.Version)
	}
	seen := make(map[string]bool, len(p.Budget.Items))
	for _, item := range p.Budget.Items {
		if seen[item.ID] {
			return fmt.Errorf("duplicate budget item id %q", item.ID)
		}
		seen[item.ID] = true
	}
	for key, m := range p.Modules {
		if m.ID != key {
			return fmt.Errorf("module %q has inconsistent id %q", key, m.ID)
		}
		if m.Status == ModuleBooked && m.SelectedChoice == nil {
			return fmt.Errorf("module %q is booked without a selected choice", key)
		}
		if (m.Status == ModuleIdle || m.Status == ModuleScouting) && m.SelectedChoice != nil {
			return fmt.Errorf("module %q in state %s must not have a selected choice", key, m.Status)
		}
	}
	return nil
}

// Clone returns a deep copy of the plan. Reconciliation always works on a
// clone so the previous value stays valid for staleness comparison.
func (p *EventPlan) Clone() *EventPlan {
	if p == nil {
		return nil
	}
	out := *p
	out.Schedule = append([]ScheduleItem(nil), p.Schedule...)
	out.Attendees = append([]AttendeeItem(nil), p.Attendees...)
	out.Notes = append([]NoteItem(nil), p.Notes...)
	out.Budget.Items = append([]BudgetItem(nil), p.Budget.Items...)

	out.Vendors = make([]VendorItem, len(p.Vendors))
	for i, v := range p.Vendors {
		v.ResearchSuggestions = append([]ResearchSuggestion(nil), v.ResearchSuggestions...)
		out.Vendors[i] = v
	}

	// A nil map stays nil so Normalize can tell an absent modules container
	// from an empty one.
	if p.Modules != nil {
		out.Modules = make(map[string]DecisionModule, len(p.Modules))
		for key, m := range p.Modules {
			m.Candidates = append([]Candidate(nil), m.Candidates...)
			if m.SelectedChoice != nil {
				choice := cloneCandidate(*m.SelectedChoice)
				m.SelectedChoice = &choice
			}
			out.Modules[key] = m
		}
	}

	out.AIContext.Messages = append([]ConversationTurn(nil), p.AIContext.Messages...)
	out.AIContext.PendingActions = append([]string(nil), p.AIContext.PendingActions...)
	return &out
}

func cloneCandidate(c Candidate) Candidate {
	c.Pros = append([]string(nil), c.Pros...)
	c.Cons = append([]string(nil), c.Cons...)
	return c
}
