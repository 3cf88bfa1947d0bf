package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewEmptyPlan constructs a structurally complete empty plan. If id is
// empty a fresh UUID is assigned.
func NewEmptyPlan(id string) *EventPlan {
	if id == "" {
		id = uuid.New().String()
	}
	return &EventPlan{
		PlanID:      id,
		Version:     0,
		LastUpdated: time.Now().UTC(),
		EventMetadata: EventMetadata{
			Status: EventDraft,
		},
		Schedule:  []ScheduleItem{},
		Vendors:   []VendorItem{},
		Attendees: []AttendeeItem{},
		Notes:     []NoteItem{},
		Budget: BudgetData{
			TargetAmount: 0,
			Currency:     "AUD",
			Items:        []BudgetItem{},
		},
		Modules: DefaultModules(),
		AIContext: AIContext{
			Messages:       []ConversationTurn{},
			PendingActions: []string{},
		},
	}
}

// DefaultModules returns an idle decision module for each well-known
// category, so the plan always has something to work with.
func DefaultModules() map[string]DecisionModule {
	out := make(map[string]DecisionModule, len(WellKnownModuleKeys))
	for _, key := range WellKnownModuleKeys {
		out[key] = DecisionModule{
			ID:         key,
			Type:       key,
			Status:     ModuleIdle,
			Candidates: []Candidate{},
		}
	}
	return out
}

// Normalize repairs a possibly partial plan into a structurally complete
// one. It never fails: every missing container is replaced with the value
// from a fresh empty plan, present data is preserved, and invariant
// violations are repaired in place of being reported. The result always
// satisfies Validate, and normalizing twice yields the same value.
func Normalize(p *EventPlan) *EventPlan {
	if p == nil {
		return NewEmptyPlan("")
	}
	out := p.Clone()

	if out.Version < 0 {
		out.Version = 0
	}
	if out.LastUpdated.IsZero() {
		out.LastUpdated = time.Now().UTC()
	}
	if !ValidEventStatuses[out.EventMetadata.Status] {
		out.EventMetadata.Status = EventDraft
	}

	if out.Schedule == nil {
		out.Schedule = []ScheduleItem{}
	}
	if out.Vendors == nil {
		out.Vendors = []VendorItem{}
	}
	for i := range out.Vendors {
		if out.Vendors[i].ResearchSuggestions == nil {
			out.Vendors[i].ResearchSuggestions = []ResearchSuggestion{}
		}
	}
	if out.Attendees == nil {
		out.Attendees = []AttendeeItem{}
	}
	for i := range out.Attendees {
		if !ValidRSVPStatuses[out.Attendees[i].RSVPStatus] {
			out.Attendees[i].RSVPStatus = RSVPInvited
		}
	}
	if out.Notes == nil {
		out.Notes = []NoteItem{}
	}

	if out.Budget.Currency == "" {
		out.Budget.Currency = "AUD"
	}
	if out.Budget.TargetAmount < 0 {
		out.Budget.TargetAmount = 0
	}
	out.Budget.Items = normalizeBudgetItems(out.Budget.Items)

	// Modules is the one explicitly special-cased container: when absent or
	// empty it is seeded with idle well-known modules rather than left bare.
	if len(out.Modules) == 0 {
		out.Modules = DefaultModules()
	} else {
		for key, m := range out.Modules {
			out.Modules[key] = normalizeModule(key, m)
		}
	}

	if out.AIContext.Messages == nil {
		out.AIContext.Messages = []ConversationTurn{}
	}
	if out.AIContext.PendingActions == nil {
		out.AIContext.PendingActions = []string{}
	}

	return out
}

// normalizeBudgetItems drops duplicate IDs (first occurrence wins) and
// assigns IDs to items that arrived without one.
func normalizeBudgetItems(items []BudgetItem) []BudgetItem {
	if items == nil {
		return []BudgetItem{}
	}
	out := make([]BudgetItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		if item.Status == "" {
			item.Status = BudgetItemEstimated
		}
		if item.Source == "" {
			item.Source = SourceAI
		}
		out = append(out, item)
	}
	return out
}

func normalizeModule(key string, m DecisionModule) DecisionModule {
	m.ID = key
	if m.Type == "" {
		m.Type = key
	}
	if !ValidModuleStatuses[m.Status] {
		m.Status = ModuleIdle
	}
	if m.Candidates == nil {
		m.Candidates = []Candidate{}
	}
	// Repair state/choice mismatches rather than failing: a booked module
	// without a choice drops back to review, and a choice on a module that
	// never reached review moves it forward to review.
	if m.Status == ModuleBooked && m.SelectedChoice == nil {
		m.Status = ModuleReview
	}
	if (m.Status == ModuleIdle || m.Status == ModuleScouting) && m.SelectedChoice != nil {
		m.Status = ModuleReview
	}
	return m
}
