package cli

import (
	"github.com/planpilothq/planpilot/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans  service.PlanService
	Chat   service.ChatService
	Emails service.EmailService

	// Interactive is true when stdin/stdout are a terminal; wizards and
	// the chat view only launch when it is set.
	Interactive bool
}

// NewRootCmd creates the top-level "planpilot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "planpilot",
		Short: "Conversational event planner",
	}

	root.AddCommand(
		newPlanCmd(app),
		newChatCmd(app),
		newBudgetCmd(app),
		newModuleCmd(app),
		newAttendeeCmd(app),
		newEmailCmd(app),
	)

	return root
}
