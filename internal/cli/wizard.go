package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/planpilothq/planpilot/internal/cli/formatter"
	"github.com/planpilothq/planpilot/internal/domain"
)

// planpilotHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func planpilotHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// eventWizardAnswers collects the new-event wizard inputs before they are
// turned into a plan.
type eventWizardAnswers struct {
	EventType  string
	Title      string
	Date       string
	EndDate    string
	City       string
	GuestCount string
	Budget     string
}

// newEventWizard builds the multi-step form for creating a plan.
func newEventWizard(a *eventWizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you planning?").
				Options(
					huh.NewOption("Birthday party", "birthday"),
					huh.NewOption("Wedding", "wedding"),
					huh.NewOption("Corporate event", "corporate"),
					huh.NewOption("Gala / fundraiser", "gala"),
					huh.NewOption("Conference", "conference"),
					huh.NewOption("Something else", "other"),
				).
				Value(&a.EventType),
			huh.NewInput().
				Title("Give it a name").
				Placeholder("Spring Gala 2027").
				Value(&a.Title),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&a.Date).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("End date (optional)").
				Placeholder("YYYY-MM-DD").
				Value(&a.EndDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("City").
				Placeholder("Sydney").
				Value(&a.City),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("How many guests?").
				Placeholder("50").
				Value(&a.GuestCount).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Target budget (AUD, optional)").
				Placeholder("10000").
				Value(&a.Budget).
				Validate(validateNonNegativeAmount),
		),
	).WithTheme(planpilotHuhTheme()).WithShowHelp(false)
}

// planFromAnswers converts wizard input into a plan ready for creation.
func planFromAnswers(a eventWizardAnswers) *domain.EventPlan {
	p := domain.NewEmptyPlan("")
	p.EventMetadata.Type = a.EventType
	p.EventMetadata.Title = a.Title
	p.EventMetadata.Date = a.Date
	p.EventMetadata.EndDate = a.EndDate
	p.EventMetadata.Location.City = a.City
	p.EventMetadata.Status = domain.EventPlanning
	p.EventMetadata.GuestCount = parsePositiveInt(a.GuestCount, 0)
	if amount, err := strconv.ParseFloat(a.Budget, 64); err == nil && amount > 0 {
		p.Budget.TargetAmount = amount
	}
	return p
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(planpilotHuhTheme()).WithShowHelp(false)
}

// parsePositiveInt parses s as a positive integer, returning fallback if s
// is empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeAmount accepts empty or a non-negative amount.
func validateNonNegativeAmount(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative amount")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
