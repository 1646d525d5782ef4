package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/klwxsrx/simctl/internal/console"
	"github.com/klwxsrx/simctl/internal/pkg/cmd"
	"github.com/klwxsrx/simctl/internal/telecom"
	pkgcmd "github.com/klwxsrx/simctl/pkg/cmd"
	"github.com/klwxsrx/simctl/pkg/lazy"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	ctx := context.Background()
	config, err := cmd.LoadConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	infra := cmd.NewInfrastructureContainer(config, console.NewNavigator(os.Stderr))
	defer infra.Close(ctx)

	// stays 1 when a panic is recovered below
	code = 1
	defer pkgcmd.HandleAppPanic(ctx, infra.Logger.MustLoad())

	container := telecom.NewDependencyContainer(infra.HTTPClient)
	root := console.NewRootCommand(
		console.Dependencies{
			Sessions: lazy.New(func() (console.SessionManager, error) {
				return infra.Sessions.Load()
			}),
			Guard: lazy.New(func() (console.RoleGuard, error) {
				return infra.Guard.Load()
			}),
			Backend: container,
			Logger:  infra.Logger,
		},
		console.Terminal{
			In:  os.Stdin,
			Out: os.Stdout,
			Err: os.Stderr,
			ReadPassword: func() ([]byte, error) {
				return term.ReadPassword(int(os.Stdin.Fd()))
			},
		},
		config,
	)

	if err = root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
