// Package console is the simctl command line surface: it mounts backend
// operations behind the role guard and renders their results as tables.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/simctl/internal/session/app/service"
	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/internal/telecom"
	"github.com/klwxsrx/simctl/pkg/lazy"
	"github.com/klwxsrx/simctl/pkg/log"
)

const defaultWatchInterval = time.Second

type (
	SessionManager interface {
		Init(ctx context.Context) service.State
		Login(ctx context.Context, identity domain.Identity, credential domain.Credential) error
		Logout(ctx context.Context, reason service.Reason)
		State() service.State
	}

	RoleGuard interface {
		Require(ctx context.Context, roles ...domain.Role) (domain.Identity, error)
	}

	Dependencies struct {
		Sessions lazy.Loader[SessionManager]
		Guard    lazy.Loader[RoleGuard]
		Backend  telecom.DependencyContainer
		Logger   lazy.Loader[log.Logger]
	}

	// Terminal is the process IO, ReadPassword reads a line without echo.
	Terminal struct {
		In           io.Reader
		Out          io.Writer
		Err          io.Writer
		ReadPassword func() ([]byte, error)
	}

	Option func(*app)

	app struct {
		deps          Dependencies
		term          Terminal
		watchInterval time.Duration
	}
)

func WithWatchInterval(interval time.Duration) Option {
	return func(a *app) {
		a.watchInterval = interval
	}
}

// NewRootCommand builds the simctl command tree. Every command restores the
// stored session before it runs, flags are bound by flags when it is not nil.
func NewRootCommand(deps Dependencies, term Terminal, flags FlagBinder, opts ...Option) *cobra.Command {
	a := &app{
		deps:          deps,
		term:          term,
		watchInterval: defaultWatchInterval,
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "simctl",
		Short:         "simctl manages SIMs, plans and bills of the telecom subscriber backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.deps.Logger.MustLoad().WithContext(cmd.Context(), log.Fields{
				"command": cmd.CommandPath(),
			})
			cmd.SetContext(ctx)

			sessions, err := a.deps.Sessions.Load()
			if err != nil {
				return fmt.Errorf("restore session: %w", err)
			}

			sessions.Init(ctx)
			return nil
		},
	}
	root.SetIn(term.In)
	root.SetOut(term.Out)
	root.SetErr(term.Err)
	if flags != nil {
		flags.BindFlags(root)
	}

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.registerCommand(),
		a.changePasswordCommand(),
		a.sessionCommand(),
		a.plansCommand(),
		a.simsCommand(),
		a.billsCommand(),
		a.usagesCommand(),
		a.customersCommand(),
		a.dashboardCommand(),
	)

	return root
}

// FlagBinder registers persistent flags that overwrite configuration.
type FlagBinder interface {
	BindFlags(root *cobra.Command)
}

func (a *app) require(ctx context.Context, roles ...domain.Role) (domain.Identity, error) {
	return a.deps.Guard.MustLoad().Require(ctx, roles...)
}
