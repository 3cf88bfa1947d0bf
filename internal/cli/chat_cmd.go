package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/planpilothq/planpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat PLAN [MESSAGE...]",
		Short: "Talk to the planning assistant",
		Long: "Talk to the planning assistant about a plan. With a message this\n" +
			"sends it and prints the reply; without one (in a terminal) it opens\n" +
			"an interactive conversation.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if len(args) > 1 {
				message := strings.Join(args[1:], " ")
				stop := formatter.StartSpinner("Asking the assistant...")
				res, err := app.Chat.Send(ctx, planID, message)
				stop()
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatAssistantTurn(res.Reply))
				return nil
			}

			if !app.Interactive {
				return fmt.Errorf("no message given and not running in a terminal")
			}

			plan, err := app.Plans.Get(ctx, planID)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newChatModel(app, plan)).Run()
			return err
		},
	}
}
