package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
)

// moduleOrder pins the well-known modules to a stable display order; any
// extra modules follow alphabetically.
func moduleOrder(plan *domain.EventPlan) []string {
	known := make(map[string]bool, len(domain.WellKnownModuleKeys))
	keys := make([]string, 0, len(plan.Modules))
	for _, key := range domain.WellKnownModuleKeys {
		if _, ok := plan.Modules[key]; ok {
			keys = append(keys, key)
			known[key] = true
		}
	}
	var extra []string
	for key := range plan.Modules {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// FormatModuleOverview renders one line per decision module.
func FormatModuleOverview(plan *domain.EventPlan) string {
	var b strings.Builder
	b.WriteString(Header("Decisions"))
	b.WriteString("\n")

	guests := plan.EventMetadata.GuestCount
	for _, key := range moduleOrder(plan) {
		m := plan.Modules[key]
		line := fmt.Sprintf("  %-14s %s", capitalize(key), ModuleStatusPill(m.Status))
		if m.SelectedChoice != nil {
			line += "  " + m.SelectedChoice.Name
		} else if n := len(m.Candidates); n > 0 {
			line += "  " + Dim(fmt.Sprintf("%d candidates", n))
		}
		if cost := budget.ModuleCost(m, guests, domain.PerPersonModules[m.Type]); cost > 0 {
			line += "  " + Dim("~"+FormatCurrency(plan.Budget.Currency, cost))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// FormatCandidates renders a module's candidate list with indexes the user
// can pass to the select command.
func FormatCandidates(plan *domain.EventPlan, key string) string {
	m, ok := plan.Module(key)
	if !ok {
		return Dim("No such module.")
	}
	if len(m.Candidates) == 0 {
		return Dim("No candidates yet. Ask the assistant to scout some options.")
	}

	var b strings.Builder
	b.WriteString(Header(capitalize(key) + " candidates"))
	b.WriteString("\n")

	perPerson := domain.PerPersonModules[m.Type]
	for i, c := range m.Candidates {
		marker := " "
		if m.SelectedChoice != nil && m.SelectedChoice.Name == c.Name {
			marker = StyleGreen.Render("✔")
		}
		price := Dim("price unknown")
		if c.PriceEstimate > 0 {
			price = FormatCurrency(c.Currency, c.PriceEstimate)
			if perPerson {
				price += Dim(" per person")
			}
		}
		b.WriteString(fmt.Sprintf("%s [%d] %s  %s", marker, i, Bold(c.Name), price))
		if c.Rating > 0 {
			b.WriteString(Dim(fmt.Sprintf("  %.1f★", c.Rating)))
		}
		b.WriteString("\n")
		if c.Description != "" {
			b.WriteString("      " + Dim(c.Description) + "\n")
		}
		for _, pro := range c.Pros {
			b.WriteString("      " + StyleGreen.Render("+ ") + pro + "\n")
		}
		for _, con := range c.Cons {
			b.WriteString("      " + StyleRed.Render("- ") + con + "\n")
		}
	}
	return b.String()
}
