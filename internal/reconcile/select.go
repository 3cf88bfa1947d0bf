package reconcile

import (
	"fmt"
	"time"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
)

// ModuleLineID is the stable budget line ID for a module's selection, so
// selecting twice replaces the line instead of duplicating it.
func ModuleLineID(moduleKey string) string {
	return "module-" + moduleKey
}

// SelectCandidate books the candidate at index idx for the given module:
// the module moves to booked with a copy of the candidate as its choice,
// and the budget gains a single confirmed line for the module. Any other
// budget line in the module's category is removed so a prior AI estimate
// for the same category cannot be double-counted.
func SelectCandidate(plan *domain.EventPlan, moduleKey string, idx int) (*domain.EventPlan, error) {
	m, ok := plan.Module(moduleKey)
	if !ok {
		return nil, fmt.Errorf("no module %q in plan", moduleKey)
	}
	if idx < 0 || idx >= len(m.Candidates) {
		return nil, fmt.Errorf("module %q has no candidate %d", moduleKey, idx)
	}
	if m.Status != domain.ModuleBooked && !m.Status.CanTransition(domain.ModuleBooked) {
		return nil, fmt.Errorf("module %q cannot be booked from state %s", moduleKey, m.Status)
	}

	next := plan.Clone()
	nm := next.Modules[moduleKey]
	choice := nm.Candidates[idx]
	nm.Status = domain.ModuleBooked
	nm.SelectedChoice = &choice
	next.Modules[moduleKey] = nm

	guests := next.EventMetadata.GuestCount
	cost := budget.ModuleCost(nm, guests, domain.PerPersonModules[nm.Type])

	lineID := ModuleLineID(moduleKey)
	line := domain.BudgetItem{
		ID:       lineID,
		Category: nm.Type,
		Name:     choice.Name,
		Cost:     cost,
		Status:   domain.BudgetItemConfirmed,
		Source:   domain.SourceUser,
	}
	if domain.PerPersonModules[nm.Type] && guests > 0 {
		line.PriceType = domain.PricePerPerson
		line.UnitPrice = choice.PriceEstimate
		line.Quantity = guests
	} else {
		line.PriceType = domain.PriceFixed
	}

	kept := next.Budget.Items[:0]
	for _, item := range next.Budget.Items {
		if item.ID == lineID || item.Category == nm.Type {
			continue
		}
		kept = append(kept, item)
	}
	next.Budget.Items = append(kept, line)

	next.Version = plan.Version + 1
	next.LastUpdated = time.Now().UTC()
	return next, nil
}

// ResetModule undoes a booking: the module returns to review and its
// choice is cleared, but previously fetched candidates are retained so a
// reset never forces re-scouting. The module's budget line is removed.
func ResetModule(plan *domain.EventPlan, moduleKey string) (*domain.EventPlan, error) {
	m, ok := plan.Module(moduleKey)
	if !ok {
		return nil, fmt.Errorf("no module %q in plan", moduleKey)
	}
	if !m.Status.CanTransition(domain.ModuleReview) {
		return nil, fmt.Errorf("module %q cannot be reset from state %s", moduleKey, m.Status)
	}

	next := plan.Clone()
	nm := next.Modules[moduleKey]
	nm.Status = domain.ModuleReview
	nm.SelectedChoice = nil
	next.Modules[moduleKey] = nm

	lineID := ModuleLineID(moduleKey)
	kept := next.Budget.Items[:0]
	for _, item := range next.Budget.Items {
		if item.ID == lineID {
			continue
		}
		kept = append(kept, item)
	}
	next.Budget.Items = kept

	next.Version = plan.Version + 1
	next.LastUpdated = time.Now().UTC()
	return next, nil
}
