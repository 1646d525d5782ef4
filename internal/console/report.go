package console

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
)

func (a *app) usagesCommand() *cobra.Command {
	usages := &cobra.Command{
		Use:   "usages",
		Short: "Show data and call usage",
	}

	var simID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List usage records of all SIMs, or of one SIM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
				return err
			}

			service := a.deps.Backend.UsageService.MustLoad()
			var (
				records []backend.Usage
				err     error
			)
			if simID > 0 {
				records, err = service.BySIM(cmd.Context(), simID)
			} else {
				records, err = service.All(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("list usages: %w", err)
			}
			return renderUsages(a.term.Out, records)
		},
	}
	list.Flags().Int64Var(&simID, "sim", 0, "sim id")

	usages.AddCommand(
		list,
		&cobra.Command{
			Use:   "mine",
			Short: "List usage records of the logged in customer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleUser); err != nil {
					return err
				}

				records, err := a.deps.Backend.UsageService.MustLoad().Mine(cmd.Context())
				if err != nil {
					return fmt.Errorf("list usages: %w", err)
				}
				return renderUsages(a.term.Out, records)
			},
		},
	)

	return usages
}

func (a *app) customersCommand() *cobra.Command {
	customers := &cobra.Command{
		Use:   "customers",
		Short: "Browse registered customers",
	}

	customers.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all customers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
					return err
				}

				list, err := a.deps.Backend.CustomerService.MustLoad().All(cmd.Context())
				if err != nil {
					return fmt.Errorf("list customers: %w", err)
				}
				return renderCustomers(a.term.Out, list)
			},
		},
		&cobra.Command{
			Use:   "get CUSTOMER_ID",
			Short: "Show a customer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
					return err
				}
				customerID, err := parseID("customer id", args[0])
				if err != nil {
					return err
				}

				customer, err := a.deps.Backend.CustomerService.MustLoad().Get(cmd.Context(), customerID)
				if err != nil {
					return fmt.Errorf("get customer: %w", err)
				}
				return renderCustomers(a.term.Out, []backend.Customer{customer})
			},
		},
	)

	return customers
}

func (a *app) dashboardCommand() *cobra.Command {
	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Inspect and reset the backend time simulation",
	}

	dashboard.AddCommand(
		&cobra.Command{
			Use:   "date",
			Short: "Show the simulated current date",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleUser, domain.RoleAdmin); err != nil {
					return err
				}

				date, err := a.deps.Backend.DashboardService.MustLoad().SimulationDate(cmd.Context())
				if err != nil {
					return fmt.Errorf("get simulation date: %w", err)
				}
				_, err = fmt.Fprintf(a.term.Out, "Simulation date: %s\n", orDash(date.Date))
				return err
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Reset the simulated date",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := a.require(cmd.Context(), domain.RoleAdmin); err != nil {
					return err
				}

				message, err := a.deps.Backend.DashboardService.MustLoad().ResetSimulationDate(cmd.Context())
				if err != nil {
					return fmt.Errorf("reset simulation: %w", err)
				}
				return printConfirmation(a.term.Out, message, "Simulation reset successfully")
			},
		},
	)

	return dashboard
}
