package console

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/simctl/internal/session/app/service"
	"github.com/klwxsrx/simctl/pkg/cmd"
	"github.com/klwxsrx/simctl/pkg/worker"
)

func (a *app) sessionCommand() *cobra.Command {
	session := &cobra.Command{
		Use:   "session",
		Short: "Inspect the current session",
	}

	session.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show who is logged in and for how long",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return a.printState(a.deps.Sessions.MustLoad().State())
			},
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Show a live countdown until the session expires",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				ctx := c.Context()
				sessions := a.deps.Sessions.MustLoad()
				if _, err := a.require(ctx); err != nil {
					return err
				}

				return cmd.Run(ctx, a.deps.Logger.MustLoad(),
					cmd.TermSignalAwaiter,
					worker.UntilDone(func(context.Context) (bool, error) {
						state := sessions.State()
						if state.Status != service.StatusAuthenticated {
							_, err := fmt.Fprintln(a.term.Out, "Session expired")
							return true, err
						}

						_, err := fmt.Fprintf(a.term.Out, "%s (%s): %s left\n",
							state.Identity.Name, state.Identity.Role, remaining(state.RemainingSeconds))
						return false, err
					}, a.watchInterval, a.deps.Logger.MustLoad()),
				)
			},
		},
	)

	return session
}

func (a *app) printState(state service.State) error {
	if state.Status != service.StatusAuthenticated {
		_, err := fmt.Fprintln(a.term.Out, "Not logged in")
		return err
	}

	t := newTable(a.term.Out, "STATUS", "ID", "NAME", "ROLE", "EXPIRES IN")
	t.row(string(state.Status), integer(state.Identity.ID), state.Identity.Name,
		string(state.Identity.Role), remaining(state.RemainingSeconds))
	return t.flush()
}
