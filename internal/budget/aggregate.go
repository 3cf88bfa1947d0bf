// Package budget holds the pure aggregation functions over a plan
// snapshot. Nothing here mutates a plan or remembers state between calls;
// every figure is recomputed fresh from current numbers.
package budget

import (
	"github.com/planpilothq/planpilot/internal/domain"
)

// cateringUnitThreshold is the cutoff below which a catering line's cost
// is assumed to be a per-person unit price stored as a total. See
// CorrectCateringUnits.
const cateringUnitThreshold = 200

// TotalCost sums the cost of all budget items.
func TotalCost(items []domain.BudgetItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Cost
	}
	return sum
}

// RemainingBudget is target minus total. Negative means over budget.
func RemainingBudget(target, total float64) float64 {
	return target - total
}

// PerPersonCost divides total by guest count, guarding against zero guests.
func PerPersonCost(total float64, guestCount int) float64 {
	if guestCount == 0 {
		return 0
	}
	return total / float64(guestCount)
}

// ItemShare is a budget item annotated with its share of the total.
type ItemShare struct {
	domain.BudgetItem
	Percentage float64
}

// BreakdownPercentages computes each item's percentage of the total cost.
// When the total is zero every percentage is zero, so NaN never reaches
// the caller.
func BreakdownPercentages(items []domain.BudgetItem) []ItemShare {
	total := TotalCost(items)
	out := make([]ItemShare, len(items))
	for i, item := range items {
		share := ItemShare{BudgetItem: item}
		if total != 0 {
			share.Percentage = item.Cost / total * 100
		}
		out[i] = share
	}
	return out
}

// Status classifies spend against the target. A zero target means no
// budget has been set; spending exactly the target is still within budget.
func Status(target, total float64) domain.BudgetStatus {
	if target == 0 {
		return domain.BudgetNone
	}
	if total <= target {
		return domain.BudgetWithin
	}
	return domain.BudgetOver
}

// ModuleCost resolves the cost of a decision module in strict priority
// order: a selected choice with a positive price always wins, otherwise
// the mean of positively-priced candidates, otherwise zero. Candidates
// without a positive price are excluded from the average entirely rather
// than counted as zero. perPerson scales the resolved price by guestCount.
func ModuleCost(m domain.DecisionModule, guestCount int, perPerson bool) float64 {
	scale := func(price float64) float64 {
		if perPerson {
			return price * float64(guestCount)
		}
		return price
	}

	if m.SelectedChoice != nil && m.SelectedChoice.PriceEstimate > 0 {
		return scale(m.SelectedChoice.PriceEstimate)
	}

	var sum float64
	var n int
	for _, c := range m.Candidates {
		if c.PriceEstimate > 0 {
			sum += c.PriceEstimate
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return scale(sum / float64(n))
}

// CorrectCateringUnits repairs a known upstream unit mismatch: catering
// lines sometimes arrive with a per-person price in the cost field. An
// implausibly small catering total is rewritten as unit price × guests.
// The rule is deliberately narrow — it applies to the catering category
// only and should be removed once the upstream contract is fixed.
func CorrectCateringUnits(item domain.BudgetItem, guestCount int) domain.BudgetItem {
	if item.Category != "catering" || guestCount <= 0 {
		return item
	}
	if item.Cost <= 0 || item.Cost >= cateringUnitThreshold {
		return item
	}
	item.UnitPrice = item.Cost
	item.Quantity = guestCount
	item.Cost = item.Cost * float64(guestCount)
	item.PriceType = domain.PricePerPerson
	return item
}

// Calculations is a full derived-figure snapshot for one plan.
type Calculations struct {
	TotalCost       float64
	RemainingBudget float64
	PerPersonCost   float64
	Status          domain.BudgetStatus
	Items           []ItemShare
	GuestCount      int
	TargetAmount    float64
	Currency        string
}

// Calculate derives every budget figure for a plan in one pass. The
// catering unit correction is applied before any aggregation.
func Calculate(plan *domain.EventPlan) Calculations {
	guests := plan.EventMetadata.GuestCount

	items := make([]domain.BudgetItem, len(plan.Budget.Items))
	for i, item := range plan.Budget.Items {
		items[i] = CorrectCateringUnits(item, guests)
	}

	total := TotalCost(items)
	currency := plan.Budget.Currency
	if currency == "" {
		currency = "AUD"
	}

	return Calculations{
		TotalCost:       total,
		RemainingBudget: RemainingBudget(plan.Budget.TargetAmount, total),
		PerPersonCost:   PerPersonCost(total, guests),
		Status:          Status(plan.Budget.TargetAmount, total),
		Items:           BreakdownPercentages(items),
		GuestCount:      guests,
		TargetAmount:    plan.Budget.TargetAmount,
		Currency:        currency,
	}
}
