package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/planpilothq/planpilot/internal/cli/formatter"
	"github.com/planpilothq/planpilot/internal/service"
	"github.com/spf13/cobra"
)

func newEmailCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Draft emails from plan state",
	}

	cmd.AddCommand(
		newEmailInviteCmd(app),
		newEmailStatusCmd(app),
	)

	return cmd
}

func newEmailInviteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "invite PLAN",
		Short: "Draft an invitation email for all attendees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			draft, err := app.Emails.DraftInvite(ctx, planID)
			if err != nil {
				return err
			}
			printDraft(draft)
			return nil
		},
	}
}

func newEmailStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status PLAN",
		Short: "Draft an RSVP status update email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			draft, err := app.Emails.DraftStatusUpdate(ctx, planID)
			if err != nil {
				return err
			}
			printDraft(draft)
			return nil
		},
	}
}

func printDraft(draft *service.EmailDraft) {
	var b strings.Builder
	b.WriteString(formatter.Dim("To: ") + strings.Join(draft.Recipients, ", ") + "\n")
	b.WriteString(formatter.Dim("Subject: ") + formatter.Bold(draft.Subject) + "\n\n")
	b.WriteString(draft.Body)
	fmt.Println(formatter.RenderBox("Email draft", b.String()))
}
