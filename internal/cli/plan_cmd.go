package cli

import (
	"context"
	"fmt"

	"github.com/planpilothq/planpilot/internal/cli/formatter"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage event plans",
	}

	cmd.AddCommand(
		newPlanNewCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanRenameCmd(app),
		newPlanDeleteCmd(app),
	)

	return cmd
}

func newPlanNewCmd(app *App) *cobra.Command {
	var eventType, title, date, city, prompt string
	var guests int
	var target float64

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new event plan",
		Long: "Create a new event plan. With no flags in a terminal this runs an\n" +
			"interactive wizard; --prompt additionally sends a first message to the\n" +
			"planning assistant.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var p *domain.EventPlan
			if app.Interactive && !cmd.Flags().Changed("title") && !cmd.Flags().Changed("type") {
				var answers eventWizardAnswers
				if err := newEventWizard(&answers).Run(); err != nil {
					return err
				}
				p = planFromAnswers(answers)
			} else {
				p = domain.NewEmptyPlan("")
				p.EventMetadata.Type = eventType
				p.EventMetadata.Title = title
				p.EventMetadata.Date = date
				p.EventMetadata.Location.City = city
				p.EventMetadata.GuestCount = guests
				p.EventMetadata.Status = domain.EventPlanning
				p.Budget.TargetAmount = target
			}

			created, err := app.Plans.Create(ctx, p)
			if err != nil {
				return err
			}
			fmt.Printf("Created plan %s [%s]\n", created.EventMetadata.Title, created.PlanID[:8])

			if prompt != "" {
				stop := formatter.StartSpinner("Asking the assistant...")
				res, err := app.Chat.Send(ctx, created.PlanID, prompt)
				stop()
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatAssistantTurn(res.Reply))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "Event type (birthday|wedding|corporate|gala|conference|other)")
	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&city, "city", "", "Event city")
	cmd.Flags().IntVar(&guests, "guests", 0, "Expected guest count")
	cmd.Flags().Float64Var(&target, "budget", 0, "Target budget in AUD")
	cmd.Flags().StringVar(&prompt, "prompt", "", "First message to send to the assistant")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List event plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No plans yet. Start one with `planpilot plan new`.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatPlanList(summaries))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PLAN",
		Short: "Show plan details",
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
			fmt.Printf("%s\n", formatter.FormatPlanShow(p))
			return nil
		},
	}
}

func newPlanRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename PLAN TITLE",
		Short: "Rename a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.Rename(ctx, planID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed plan to %s\n", p.EventMetadata.Title)
			return nil
		},
	}
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete PLAN",
		Short: "Delete a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes && app.Interactive {
				var confirmed bool
				if err := wizardConfirm("Delete this plan for good?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Kept the plan.")
					return nil
				}
			}

			if err := app.Plans.Delete(ctx, planID); err != nil {
				return err
			}
			fmt.Printf("Deleted plan %s\n", planID[:8])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
