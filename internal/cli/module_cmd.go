package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/planpilothq/planpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newModuleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Work with decision modules (venue, catering, entertainment)",
	}

	cmd.AddCommand(
		newModuleListCmd(app),
		newModuleCandidatesCmd(app),
		newModuleSelectCmd(app),
		newModuleResetCmd(app),
	)

	return cmd
}

func newModuleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PLAN",
		Short: "Show each module's decision state",
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
			fmt.Printf("%s\n", formatter.FormatModuleOverview(p))
			return nil
		},
	}
}

func newModuleCandidatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates PLAN MODULE",
		Short: "List a module's candidates",
		Args:  cobra.ExactArgs(2),
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
			fmt.Printf("%s\n", formatter.FormatCandidates(p, args[1]))
			return nil
		},
	}
}

func newModuleSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select PLAN MODULE INDEX",
		Short: "Book a candidate for a module",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid candidate index %q", args[2])
			}
			p, err := app.Plans.SelectCandidate(ctx, planID, args[1], idx)
			if err != nil {
				return err
			}
			m := p.Modules[args[1]]
			fmt.Printf("Booked %s for %s\n", m.SelectedChoice.Name, args[1])
			return nil
		},
	}
}

func newModuleResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset PLAN MODULE",
		Short: "Undo a booking and go back to reviewing candidates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Plans.ResetModule(ctx, planID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Reset %s back to review\n", args[1])
			return nil
		},
	}
}
