package console

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
)

func (a *app) billsCommand() *cobra.Command {
	bills := &cobra.Command{
		Use:   "bills",
		Short: "View and pay bills, recharge prepaid SIMs",
	}

	bills.AddCommand(
		a.listBillsCommand(),
		&cobra.Command{
			Use:   "mine",
			Short: "List bills of the logged in customer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				identity, err := a.require(cmd.Context(), domain.RoleUser)
				if err != nil {
					return err
				}

				list, err := a.deps.Backend.BillService.MustLoad().ByCustomer(cmd.Context(), identity.ID)
				if err != nil {
					return fmt.Errorf("list bills: %w", err)
				}
				return renderBills(a.term.Out, list)
			},
		},
		&cobra.Command{
			Use:   "generate",
			Short: "Generate monthly bills for postpaid SIMs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
					return err
				}

				message, err := a.deps.Backend.BillService.MustLoad().GenerateMonthly(cmd.Context())
				if err != nil {
					return fmt.Errorf("generate bills: %w", err)
				}
				return printConfirmation(a.term.Out, message, "Monthly bills generated")
			},
		},
		&cobra.Command{
			Use:   "pay BILL_ID",
			Short: "Pay a bill",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				identity, err := a.require(cmd.Context(), domain.RoleUser)
				if err != nil {
					return err
				}
				billID, err := parseID("bill id", args[0])
				if err != nil {
					return err
				}

				message, err := a.deps.Backend.BillService.MustLoad().Pay(cmd.Context(), identity.ID, billID)
				if err != nil {
					return fmt.Errorf("pay bill: %w", err)
				}
				return printConfirmation(a.term.Out, message, "Bill paid")
			},
		},
		a.rechargeCommand(),
		a.payBillWithPlanCommand("pay-continue", "Pay a bill and keep the current plan", backend.BillService.PayToContinueSamePlan),
		a.payBillWithPlanCommand("pay-change", "Pay a bill and switch to another plan", backend.BillService.PayToChangePlan),
	)

	return bills
}

func (a *app) listBillsCommand() *cobra.Command {
	var customerID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all bills, or bills of one customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
				return err
			}

			bills := a.deps.Backend.BillService.MustLoad()
			var (
				list []backend.Bill
				err  error
			)
			if customerID > 0 {
				list, err = bills.ByCustomer(cmd.Context(), customerID)
			} else {
				list, err = bills.All(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("list bills: %w", err)
			}
			return renderBills(a.term.Out, list)
		},
	}
	cmd.Flags().Int64Var(&customerID, "customer", 0, "customer id")

	return cmd
}

func (a *app) rechargeCommand() *cobra.Command {
	var payment backend.Payment
	cmd := &cobra.Command{
		Use:   "recharge",
		Short: "Recharge a prepaid SIM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleUser); err != nil {
				return err
			}

			message, err := a.deps.Backend.BillService.MustLoad().Recharge(cmd.Context(), payment)
			if err != nil {
				return fmt.Errorf("recharge: %w", err)
			}
			return printConfirmation(a.term.Out, message, "Recharge successful")
		},
	}
	bindPaymentFlags(cmd, &payment)

	return cmd
}

func (a *app) payBillWithPlanCommand(
	use, short string,
	pay func(backend.BillService, context.Context, int64, backend.Payment) (string, error),
) *cobra.Command {
	var payment backend.Payment
	cmd := &cobra.Command{
		Use:   use + " BILL_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleUser); err != nil {
				return err
			}
			billID, err := parseID("bill id", args[0])
			if err != nil {
				return err
			}

			message, err := pay(a.deps.Backend.BillService.MustLoad(), cmd.Context(), billID, payment)
			if err != nil {
				return fmt.Errorf("pay bill: %w", err)
			}
			return printConfirmation(a.term.Out, message, "Bill paid")
		},
	}
	bindPaymentFlags(cmd, &payment)

	return cmd
}

func bindPaymentFlags(cmd *cobra.Command, payment *backend.Payment) {
	requiredInt64Flag(cmd, &payment.SIMID, "sim", "sim id")
	requiredInt64Flag(cmd, &payment.PlanID, "plan", "plan id")
	cmd.Flags().Float64Var(&payment.Amount, "amount", 0, "amount to pay")
	_ = cmd.MarkFlagRequired("amount")
}
