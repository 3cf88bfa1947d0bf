package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolvePlanID turns user input into a full plan ID. Exact matches win,
// then unique ID prefixes, then a unique case-insensitive title match.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan ID is required")
	}

	summaries, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range summaries {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range summaries {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	if len(matches) == 0 {
		for _, s := range summaries {
			if strings.EqualFold(s.Title, input) {
				matches = append(matches, s.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan reference %q is ambiguous (%d matches)", input, len(matches))
	}
}
