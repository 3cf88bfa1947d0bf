package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/planpilothq/planpilot/internal/cli/formatter"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/spf13/cobra"
)

func newAttendeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendee",
		Short: "Manage the guest list",
	}

	cmd.AddCommand(
		newAttendeeListCmd(app),
		newAttendeeAddCmd(app),
		newAttendeeRemoveCmd(app),
		newAttendeeRSVPCmd(app),
	)

	return cmd
}

func newAttendeeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PLAN",
		Short: "List attendees and their RSVPs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.Get(ctx, planID)
			if err != nil {
				return err
			}
			if len(p.Attendees) == 0 {
				fmt.Println("No attendees yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatAttendeeList(p.Attendees))
			return nil
		},
	}
}

func newAttendeeAddCmd(app *App) *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "add PLAN NAME",
		Short: "Add an attendee",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.AddAttendee(ctx, planID, args[1], email, role)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%d attendees)\n", args[1], len(p.Attendees))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Attendee email")
	cmd.Flags().StringVar(&role, "role", "", "Role, e.g. speaker or VIP")

	return cmd
}

func newAttendeeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PLAN ATTENDEE",
		Short: "Remove an attendee",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			attendeeID, err := resolveAttendeeID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			if _, err := app.Plans.RemoveAttendee(ctx, planID, attendeeID); err != nil {
				return err
			}
			fmt.Println("Removed attendee.")
			return nil
		},
	}
}

func newAttendeeRSVPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rsvp PLAN ATTENDEE STATUS",
		Short: "Record an RSVP (invited|confirmed|declined|maybe)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			attendeeID, err := resolveAttendeeID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			status := domain.RSVPStatus(strings.ToLower(args[2]))
			if _, err := app.Plans.SetRSVP(ctx, planID, attendeeID, status); err != nil {
				return err
			}
			fmt.Printf("RSVP recorded: %s\n", status)
			return nil
		},
	}
}

// resolveAttendeeID accepts an attendee ID, ID prefix, or exact name.
func resolveAttendeeID(ctx context.Context, app *App, planID, input string) (string, error) {
	p, err := app.Plans.Get(ctx, planID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, a := range p.Attendees {
		if a.ID == input {
			return a.ID, nil
		}
		if strings.HasPrefix(a.ID, input) || strings.EqualFold(a.Name, input) {
			matches = append(matches, a.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("attendee not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("attendee reference %q is ambiguous (%d matches)", input, len(matches))
	}
}
