package console

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
)

func (a *app) simsCommand() *cobra.Command {
	sims := &cobra.Command{
		Use:   "sims",
		Short: "Apply for, inspect and approve SIM cards",
	}

	sims.AddCommand(
		a.applySIMCommand(),
		&cobra.Command{
			Use:   "mine",
			Short: "List SIMs of the logged in customer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				identity, err := a.require(cmd.Context(), domain.RoleUser)
				if err != nil {
					return err
				}

				list, err := a.deps.Backend.SIMService.MustLoad().ByCustomer(cmd.Context(), identity.ID)
				if err != nil {
					return fmt.Errorf("list sims: %w", err)
				}
				return renderSIMs(a.term.Out, list)
			},
		},
		&cobra.Command{
			Use:   "get SIM_ID",
			Short: "Show a SIM",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleUser, domain.RoleAdmin); err != nil {
					return err
				}
				simID, err := parseID("sim id", args[0])
				if err != nil {
					return err
				}

				sim, err := a.deps.Backend.SIMService.MustLoad().Get(cmd.Context(), simID)
				if err != nil {
					return fmt.Errorf("get sim: %w", err)
				}
				return renderSIMs(a.term.Out, []backend.SIM{sim})
			},
		},
		a.listSIMsCommand(),
		&cobra.Command{
			Use:   "pending",
			Short: "List SIM applications awaiting approval",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
					return err
				}

				list, err := a.deps.Backend.SIMService.MustLoad().Pending(cmd.Context())
				if err != nil {
					return fmt.Errorf("list pending sims: %w", err)
				}
				return renderSIMs(a.term.Out, list)
			},
		},
		a.decideSIMCommand("approve", "Approve a SIM application", backend.SIMService.Approve),
		a.decideSIMCommand("reject", "Reject a SIM application", backend.SIMService.Reject),
		a.changeSIMPlanCommand("change-plan", "Request a postpaid plan change", backend.SIMService.ChangePlanPostpaid),
		a.changeSIMPlanCommand("activate-plan", "Activate a new postpaid plan", backend.SIMService.ActivateNewPlanPostpaid),
	)

	return sims
}

func (a *app) applySIMCommand() *cobra.Command {
	var planID int64
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for a new SIM on a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := a.require(cmd.Context(), domain.RoleUser)
			if err != nil {
				return err
			}

			sim, err := a.deps.Backend.SIMService.MustLoad().Apply(cmd.Context(), identity.ID, planID)
			if err != nil {
				return fmt.Errorf("apply for sim: %w", err)
			}

			_, err = fmt.Fprintln(a.term.Out, "SIM application submitted")
			if err != nil || sim.ID == 0 {
				return err
			}
			return renderSIMs(a.term.Out, []backend.SIM{sim})
		},
	}
	requiredInt64Flag(cmd, &planID, "plan", "plan id")

	return cmd
}

func (a *app) listSIMsCommand() *cobra.Command {
	var customerID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all SIMs, or SIMs of one customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
				return err
			}

			sims := a.deps.Backend.SIMService.MustLoad()
			var (
				list []backend.SIM
				err  error
			)
			if customerID > 0 {
				list, err = sims.ByCustomer(cmd.Context(), customerID)
			} else {
				list, err = sims.All(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("list sims: %w", err)
			}
			return renderSIMs(a.term.Out, list)
		},
	}
	cmd.Flags().Int64Var(&customerID, "customer", 0, "customer id")

	return cmd
}

func (a *app) decideSIMCommand(
	use, short string,
	decide func(backend.SIMService, context.Context, int64) (backend.SIM, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " SIM_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
				return err
			}
			simID, err := parseID("sim id", args[0])
			if err != nil {
				return err
			}

			sim, err := decide(a.deps.Backend.SIMService.MustLoad(), cmd.Context(), simID)
			if err != nil {
				return fmt.Errorf("%s sim: %w", use, err)
			}
			return renderSIMs(a.term.Out, []backend.SIM{sim})
		},
	}
}

func (a *app) changeSIMPlanCommand(
	use, short string,
	change func(backend.SIMService, context.Context, int64, int64) (string, error),
) *cobra.Command {
	var planID int64
	cmd := &cobra.Command{
		Use:   use + " SIM_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleUser); err != nil {
				return err
			}
			simID, err := parseID("sim id", args[0])
			if err != nil {
				return err
			}

			message, err := change(a.deps.Backend.SIMService.MustLoad(), cmd.Context(), simID, planID)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			return printConfirmation(a.term.Out, message, "Plan change accepted")
		},
	}
	requiredInt64Flag(cmd, &planID, "plan", "new plan id")

	return cmd
}
