package budget

import (
	"fmt"
	"time"

	"github.com/planpilothq/planpilot/internal/domain"
)

// Synthetic budget line IDs for derived estimates. Merging replaces lines
// with these IDs instead of appending, so repeated estimates never
// duplicate.
const (
	AutoVenueItemID    = "auto-venue"
	AutoCateringItemID = "auto-catering"
)

type EstimateStatus string

const (
	EstimatePlausible  EstimateStatus = "plausible"
	EstimateOverBudget EstimateStatus = "over_budget"
	EstimateNoBudget   EstimateStatus = "no_budget"
)

// Estimate is a venue + catering cost projection for a plan. The JSON
// shape matches the external budget estimate service, which quotes in AUD
// with snake_case field names.
type Estimate struct {
	VenueCost      float64        `json:"venue_cost_aud"`
	CateringCost   float64        `json:"catering_cost_aud"`
	TotalEstimated float64        `json:"total_estimated_aud"`
	BudgetTotal    *float64       `json:"budget_total_aud"`
	Difference     *float64       `json:"difference_aud"`
	Status         EstimateStatus `json:"status"`
	Assumptions    []string       `json:"assumptions"`
}

// EstimateFromModules derives an estimate locally from the plan's decision
// modules: venue resolves as a flat price, catering per person.
func EstimateFromModules(plan *domain.EventPlan) Estimate {
	guests := plan.EventMetadata.GuestCount

	var est Estimate
	if m, ok := plan.Module("venue"); ok {
		est.VenueCost = ModuleCost(m, guests, false)
	}
	if m, ok := plan.Module("catering"); ok {
		est.CateringCost = ModuleCost(m, guests, domain.PerPersonModules["catering"])
	}
	est.TotalEstimated = est.VenueCost + est.CateringCost

	target := plan.Budget.TargetAmount
	switch {
	case target == 0:
		est.Status = EstimateNoBudget
	case est.TotalEstimated <= target:
		est.Status = EstimatePlausible
		diff := target - est.TotalEstimated
		est.BudgetTotal = &target
		est.Difference = &diff
	default:
		est.Status = EstimateOverBudget
		diff := target - est.TotalEstimated
		est.BudgetTotal = &target
		est.Difference = &diff
	}

	if guests > 0 {
		est.Assumptions = append(est.Assumptions, fmt.Sprintf("costs scaled for %d guests", guests))
	}
	if est.VenueCost == 0 {
		est.Assumptions = append(est.Assumptions, "no venue candidates priced yet")
	}
	if est.CateringCost == 0 {
		est.Assumptions = append(est.Assumptions, "no catering candidates priced yet")
	}
	return est
}

// MergeEstimate folds an estimate into the plan's budget line items,
// returning a new plan. Estimated venue/catering lines live under stable
// synthetic IDs and are replaced, never duplicated. A vendor the user has
// already booked or confirmed with a known cost beats the venue estimate:
// user-confirmed facts always take precedence over derived figures.
func MergeEstimate(plan *domain.EventPlan, est Estimate) *domain.EventPlan {
	out := plan.Clone()

	venueLine := domain.BudgetItem{
		ID:        AutoVenueItemID,
		Category:  "venue",
		Name:      "Estimated venue",
		Cost:      est.VenueCost,
		PriceType: domain.PriceFixed,
		Status:    domain.BudgetItemEstimated,
		Source:    domain.SourceExternal,
	}
	if v, ok := confirmedVendor(out, "venue"); ok {
		venueLine.Name = v.Name
		venueLine.Cost = v.Cost
		venueLine.Status = domain.BudgetItemConfirmed
		venueLine.Source = domain.SourceUser
		venueLine.VendorID = v.ID
	}

	cateringLine := domain.BudgetItem{
		ID:        AutoCateringItemID,
		Category:  "catering",
		Name:      "Estimated catering",
		Cost:      est.CateringCost,
		PriceType: domain.PricePerPerson,
		Status:    domain.BudgetItemEstimated,
		Source:    domain.SourceExternal,
	}
	if guests := out.EventMetadata.GuestCount; guests > 0 && est.CateringCost > 0 {
		cateringLine.UnitPrice = est.CateringCost / float64(guests)
		cateringLine.Quantity = guests
	}

	if venueLine.Cost > 0 {
		out.Budget.Items = upsertItem(out.Budget.Items, venueLine)
	}
	if cateringLine.Cost > 0 {
		out.Budget.Items = upsertItem(out.Budget.Items, cateringLine)
	}
	out.LastUpdated = time.Now().UTC()
	return out
}

// confirmedVendor finds a vendor in the given category whose booking the
// user has already locked in with a known cost.
func confirmedVendor(plan *domain.EventPlan, category string) (domain.VendorItem, bool) {
	for _, v := range plan.Vendors {
		if v.Category != category || v.Cost <= 0 {
			continue
		}
		if v.Status == domain.VendorBooked || v.Status == domain.VendorConfirmed {
			return v, true
		}
	}
	return domain.VendorItem{}, false
}

// upsertItem replaces the item with a matching ID, or appends.
func upsertItem(items []domain.BudgetItem, item domain.BudgetItem) []domain.BudgetItem {
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}
