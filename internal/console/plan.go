package console

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
)

func (a *app) plansCommand() *cobra.Command {
	plans := &cobra.Command{
		Use:   "plans",
		Short: "Browse and manage tariff plans",
	}

	plans.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all plans",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleUser, domain.RoleAdmin); err != nil {
					return err
				}

				list, err := a.deps.Backend.PlanService.MustLoad().List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list plans: %w", err)
				}
				return renderPlans(a.term.Out, list)
			},
		},
		&cobra.Command{
			Use:   "get PLAN_ID",
			Short: "Show a plan",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleUser, domain.RoleAdmin); err != nil {
					return err
				}
				planID, err := parseID("plan id", args[0])
				if err != nil {
					return err
				}

				plan, err := a.deps.Backend.PlanService.MustLoad().Get(cmd.Context(), planID)
				if err != nil {
					return fmt.Errorf("get plan: %w", err)
				}
				return renderPlans(a.term.Out, []backend.Plan{plan})
			},
		},
		a.createPlanCommand(),
		a.updatePlanCommand(),
		&cobra.Command{
			Use:   "delete PLAN_ID",
			Short: "Delete a plan",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
					return err
				}
				planID, err := parseID("plan id", args[0])
				if err != nil {
					return err
				}

				if err = a.deps.Backend.PlanService.MustLoad().Delete(cmd.Context(), planID); err != nil {
					return fmt.Errorf("delete plan: %w", err)
				}
				_, err = fmt.Fprintf(a.term.Out, "Plan %d deleted\n", planID)
				return err
			},
		},
	)

	return plans
}

func (a *app) createPlanCommand() *cobra.Command {
	var (
		plan     backend.Plan
		planType string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
				return err
			}

			var err error
			if plan.Type, err = parsePlanType(planType); err != nil {
				return err
			}

			created, err := a.deps.Backend.PlanService.MustLoad().Create(cmd.Context(), plan)
			if err != nil {
				return fmt.Errorf("create plan: %w", err)
			}
			return renderPlans(a.term.Out, []backend.Plan{created})
		},
	}
	bindPlanFlags(cmd, &plan, &planType)

	return cmd
}

func (a *app) updatePlanCommand() *cobra.Command {
	var (
		plan     backend.Plan
		planType string
	)
	cmd := &cobra.Command{
		Use:   "update PLAN_ID",
		Short: "Replace a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
				return err
			}
			planID, err := parseID("plan id", args[0])
			if err != nil {
				return err
			}
			if plan.Type, err = parsePlanType(planType); err != nil {
				return err
			}

			updated, err := a.deps.Backend.PlanService.MustLoad().Update(cmd.Context(), planID, plan)
			if err != nil {
				return fmt.Errorf("update plan: %w", err)
			}
			return renderPlans(a.term.Out, []backend.Plan{updated})
		},
	}
	bindPlanFlags(cmd, &plan, &planType)

	return cmd
}

func bindPlanFlags(cmd *cobra.Command, plan *backend.Plan, planType *string) {
	cmd.Flags().StringVar(&plan.Name, "name", "", "plan name")
	cmd.Flags().Float64Var(&plan.Price, "price", 0, "price")
	cmd.Flags().Float64Var(&plan.DataLimit, "data-limit", 0, "data limit, GB")
	cmd.Flags().Int64Var(&plan.CallLimit, "call-limit", 0, "call limit, minutes")
	cmd.Flags().Int64Var(&plan.Validity, "validity", 0, "validity, days")
	cmd.Flags().StringVar(planType, "type", "", "PREPAID or POSTPAID")
	for _, name := range []string{"name", "price", "type", "validity"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func parsePlanType(s string) (backend.PlanType, error) {
	switch t := backend.PlanType(strings.ToUpper(s)); t {
	case backend.PlanTypePrepaid, backend.PlanTypePostpaid:
		return t, nil
	default:
		return "", fmt.Errorf("invalid plan type %q: PREPAID or POSTPAID expected", s)
	}
}
