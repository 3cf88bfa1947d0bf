package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Track spend against the target",
	}

	cmd.AddCommand(
		newBudgetShowCmd(app),
		newBudgetTargetCmd(app),
		newBudgetEstimateCmd(app),
	)

	return cmd
}

func newBudgetShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PLAN",
		Short: "Show the budget dashboard",
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
			fmt.Printf("%s\n", formatter.FormatBudget(budget.Calculate(p)))
			return nil
		},
	}
}

func newBudgetTargetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "target PLAN AMOUNT",
		Short: "Set the spending ceiling",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			p, err := app.Plans.SetBudgetTarget(ctx, planID, amount)
			if err != nil {
				return err
			}
			fmt.Printf("Target set to %s\n", formatter.FormatCurrency(p.Budget.Currency, amount))
			return nil
		},
	}
}

func newBudgetEstimateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate PLAN",
		Short: "Estimate venue and catering costs from current candidates",
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
			est := budget.EstimateFromModules(p)
			fmt.Printf("%s\n", formatter.FormatEstimate(est, p.Budget.Currency))
			return nil
		},
	}
}
