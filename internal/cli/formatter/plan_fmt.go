package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/planpilothq/planpilot/internal/repository"
)

// FormatPlanList renders plan summaries as a table.
func FormatPlanList(summaries []repository.PlanSummary) string {
	headers := []string{"ID", "TITLE", "STATUS", "UPDATED"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		title := s.Title
		if title == "" {
			title = Dim("(untitled)")
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			title,
			EventStatusPill(s.Status),
			Dim(HumanTimestamp(s.LastUpdated)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPlanShow renders the full plan detail view.
func FormatPlanShow(plan *domain.EventPlan) string {
	var b strings.Builder

	title := plan.EventMetadata.Title
	if title == "" {
		title = "(untitled event)"
	}
	b.WriteString(Header(title))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", EventStatusPill(plan.EventMetadata.Status), TruncID(plan.PlanID)))
	if plan.EventMetadata.Type != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Type:"), capitalize(plan.EventMetadata.Type)))
	}
	if plan.EventMetadata.Date != "" {
		when := plan.EventMetadata.Date
		if plan.EventMetadata.EndDate != "" {
			when += " → " + plan.EventMetadata.EndDate
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("When:"), when))
	}
	if loc := locationLine(plan.EventMetadata.Location); loc != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Where:"), loc))
	}
	if plan.EventMetadata.GuestCount > 0 {
		b.WriteString(fmt.Sprintf("%s %d\n", Dim("Guests:"), plan.EventMetadata.GuestCount))
	}

	b.WriteString("\n")
	b.WriteString(FormatModuleOverview(plan))

	if len(plan.Schedule) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Schedule"))
		b.WriteString("\n")
		for _, item := range plan.Schedule {
			timeCol := "     "
			if item.Time != "" {
				timeCol = item.Time
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n", StyleBlue.Render(timeCol), item.Activity))
		}
	}

	if len(plan.Vendors) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Vendors"))
		b.WriteString("\n")
		for _, v := range plan.Vendors {
			name := v.Name
			if name == "" {
				name = Dim("(unnamed)")
			}
			line := fmt.Sprintf("  %s  %s %s", VendorStatusPill(v.Status), name, Dim(v.Category))
			if v.Cost > 0 {
				line += "  " + FormatCurrency(v.Currency, v.Cost)
			}
			b.WriteString(line + "\n")
		}
	}

	if len(plan.Attendees) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Attendees"))
		b.WriteString("\n")
		b.WriteString(FormatAttendeeList(plan.Attendees))
	}

	if len(plan.Notes) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Notes"))
		b.WriteString("\n")
		notes := append([]domain.NoteItem(nil), plan.Notes...)
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		})
		for _, n := range notes {
			author := StylePurple.Render("ai")
			if n.CreatedBy == domain.NoteByUser {
				author = StyleBlue.Render("you")
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n", author, n.Content, Dim(HumanTimestamp(n.CreatedAt))))
		}
	}

	b.WriteString("\n")
	calc := budget.Calculate(plan)
	b.WriteString(fmt.Sprintf("%s %s committed  %s\n",
		Dim("Budget:"), FormatCurrency(calc.Currency, calc.TotalCost), BudgetStatusPill(calc.Status)))

	return b.String()
}

// FormatAttendeeList renders attendees with their RSVP state.
func FormatAttendeeList(attendees []domain.AttendeeItem) string {
	var b strings.Builder
	for _, a := range attendees {
		line := fmt.Sprintf("  %s  %s", RSVPPill(a.RSVPStatus), a.Name)
		if a.Role != "" {
			line += " " + Dim("("+a.Role+")")
		}
		if a.Email != "" {
			line += "  " + Dim(a.Email)
		}
		line += "  " + TruncID(a.ID)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func locationLine(loc domain.Location) string {
	switch {
	case loc.Venue != "" && loc.City != "":
		return loc.Venue + ", " + loc.City
	case loc.Venue != "":
		return loc.Venue
	default:
		return loc.City
	}
}
