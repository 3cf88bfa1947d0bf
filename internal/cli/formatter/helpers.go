package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/planpilothq/planpilot/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatCurrency renders an amount with its currency code, dropping the
// cents when they are zero: "AUD 1,500" / "AUD 71.88".
func FormatCurrency(currency string, amount float64) string {
	if currency == "" {
		currency = "AUD"
	}
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("%s %s", currency, groupThousands(fmt.Sprintf("%.0f", amount)))
	}
	whole := math.Trunc(amount)
	frac := fmt.Sprintf("%.2f", amount-whole)
	return fmt.Sprintf("%s %s%s", currency, groupThousands(fmt.Sprintf("%.0f", whole)), frac[1:])
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// EventStatusPill returns a colored status indicator for event status.
func EventStatusPill(status domain.EventStatus) string {
	switch status {
	case domain.EventDraft:
		return StyleDim.Render("○ Draft")
	case domain.EventPlanning:
		return StyleBlue.Render("● Planning")
	case domain.EventConfirmed:
		return StyleGreen.Render("● Confirmed")
	case domain.EventCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// RSVPPill returns a colored RSVP indicator.
func RSVPPill(status domain.RSVPStatus) string {
	switch status {
	case domain.RSVPConfirmed:
		return StyleGreen.Render("✔ Confirmed")
	case domain.RSVPDeclined:
		return StyleRed.Render("✖ Declined")
	case domain.RSVPMaybe:
		return StyleYellow.Render("? Maybe")
	default:
		return StyleDim.Render("○ Invited")
	}
}

// ModuleStatusPill returns a colored decision-module lifecycle indicator.
func ModuleStatusPill(status domain.ModuleStatus) string {
	switch status {
	case domain.ModuleIdle:
		return StyleDim.Render("○ Idle")
	case domain.ModuleScouting:
		return StyleYellow.Render("◌ Scouting")
	case domain.ModuleReview:
		return StyleBlue.Render("● Review")
	case domain.ModuleBooked:
		return StyleGreen.Render("✔ Booked")
	default:
		return StyleDim.Render(string(status))
	}
}

// VendorStatusPill returns a colored vendor progress indicator.
func VendorStatusPill(status domain.VendorStatus) string {
	switch status {
	case domain.VendorBooked, domain.VendorConfirmed:
		return StyleGreen.Render("✔ " + capitalize(string(status)))
	case domain.VendorQuoted:
		return StyleBlue.Render("● Quoted")
	case domain.VendorContacted:
		return StyleYellow.Render("◌ Contacted")
	default:
		return StyleDim.Render("○ Researching")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
