package formatter

import (
	"fmt"
	"strings"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
)

// FormatBudget renders the budget dashboard: headline figures, spend
// progress against the target, and a percentage breakdown per line item.
func FormatBudget(calc budget.Calculations) string {
	var b strings.Builder

	b.WriteString(Header("Budget"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Committed:"), Bold(FormatCurrency(calc.Currency, calc.TotalCost))))
	if calc.Status != domain.BudgetNone {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Target:  "), FormatCurrency(calc.Currency, calc.TargetAmount)))
		remaining := FormatCurrency(calc.Currency, calc.RemainingBudget)
		if calc.RemainingBudget < 0 {
			remaining = StyleRed.Render(remaining)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Remaining:"), remaining))
		b.WriteString(fmt.Sprintf("  %s\n", RenderSpendProgress(calc.TotalCost/calc.TargetAmount, 24)))
	}
	if calc.GuestCount > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Per person:"), FormatCurrency(calc.Currency, calc.PerPersonCost)))
	}
	b.WriteString("  " + BudgetStatusPill(calc.Status) + "\n")

	if len(calc.Items) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Breakdown"))
		b.WriteString("\n")
		for _, item := range calc.Items {
			name := item.Name
			if name == "" {
				name = item.Category
			}
			bar := RenderBar(item.Percentage/100, 16, StyleBlue)
			line := fmt.Sprintf("  %-24s %s %4.0f%%  %s", name, bar, item.Percentage,
				FormatCurrency(calc.Currency, item.Cost))
			if item.PriceType == domain.PricePerPerson && item.Quantity > 0 {
				line += Dim(fmt.Sprintf("  (%s × %d)", FormatCurrency(calc.Currency, item.UnitPrice), item.Quantity))
			}
			if item.Status == domain.BudgetItemConfirmed {
				line += "  " + StyleGreen.Render("confirmed")
			} else {
				line += "  " + Dim(string(item.Status))
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// FormatEstimate renders an external or derived cost estimate.
func FormatEstimate(est budget.Estimate, currency string) string {
	var b strings.Builder
	b.WriteString(Header("Cost estimate"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Venue:   "), FormatCurrency(currency, est.VenueCost)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Catering:"), FormatCurrency(currency, est.CateringCost)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Total:   "), Bold(FormatCurrency(currency, est.TotalEstimated))))
	if est.Difference != nil {
		diff := *est.Difference
		if diff >= 0 {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Headroom:"), StyleGreen.Render(FormatCurrency(currency, diff))))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Overrun: "), StyleRed.Render(FormatCurrency(currency, -diff))))
		}
	}
	for _, a := range est.Assumptions {
		b.WriteString("  " + Dim("· "+a) + "\n")
	}
	return b.String()
}
