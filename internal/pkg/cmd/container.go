package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klwxsrx/simctl/internal/session/app/service"
	"github.com/klwxsrx/simctl/internal/session/app/storage"
	sessionbbolt "github.com/klwxsrx/simctl/internal/session/infra/bbolt"
	sessionhttp "github.com/klwxsrx/simctl/internal/session/infra/http"
	"github.com/klwxsrx/simctl/internal/session/infra/memory"
	"github.com/klwxsrx/simctl/pkg/http"
	"github.com/klwxsrx/simctl/pkg/lazy"
	"github.com/klwxsrx/simctl/pkg/log"
	pkgtime "github.com/klwxsrx/simctl/pkg/time"
)

type InfrastructureContainer struct {
	Config       *Config
	Clock        pkgtime.Clock
	Logger       lazy.Loader[log.Logger]
	SessionStore lazy.Loader[storage.Store]
	Sessions     lazy.Loader[*service.Manager]
	Guard        lazy.Loader[*service.Guard]
	HTTPClient   lazy.Loader[http.Client]

	boltStore lazy.Loader[*sessionbbolt.Store]
}

// NewInfrastructureContainer reads config lazily, so flags parsed after the
// container is built still apply to every dependency.
func NewInfrastructureContainer(config *Config, navigator service.Navigator) *InfrastructureContainer {
	clock := pkgtime.NewClock()
	logger := loggerProvider(config)
	boltStore := boltStoreProvider(config)
	sessionStore := sessionStoreProvider(config, boltStore)
	sessions := sessionManagerProvider(sessionStore, clock, navigator, logger)

	return &InfrastructureContainer{
		Config:       config,
		Clock:        clock,
		Logger:       logger,
		SessionStore: sessionStore,
		Sessions:     sessions,
		Guard:        guardProvider(sessions, navigator),
		HTTPClient:   httpClientProvider(config, sessionStore, sessions, navigator, clock, logger),
		boltStore:    boltStore,
	}
}

// Close releases the session file, the stored session itself is kept.
func (i *InfrastructureContainer) Close(ctx context.Context) {
	i.Sessions.IfLoaded(func(manager *service.Manager) { manager.Close() })
	i.boltStore.IfLoaded(func(store *sessionbbolt.Store) {
		if err := store.Close(); err != nil {
			i.Logger.MustLoad().WithError(err).Warn(ctx, "failed to close session file")
		}
	})
}

func loggerProvider(config *Config) lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return log.New(
			config.Level(),
			log.WithOutput(os.Stderr),
			log.WithFormat(log.Format(config.LogFormat)),
		), nil
	})
}

func boltStoreProvider(config *Config) lazy.Loader[*sessionbbolt.Store] {
	return lazy.New(func() (*sessionbbolt.Store, error) {
		if err := os.MkdirAll(filepath.Dir(config.SessionFile), 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}

		return sessionbbolt.NewStoreFromFile(config.SessionFile)
	})
}

func sessionStoreProvider(config *Config, boltStore lazy.Loader[*sessionbbolt.Store]) lazy.Loader[storage.Store] {
	return lazy.New(func() (storage.Store, error) {
		if config.Ephemeral {
			return memory.NewStore(), nil
		}

		return boltStore.Load()
	})
}

func sessionManagerProvider(
	store lazy.Loader[storage.Store],
	clock pkgtime.Clock,
	navigator service.Navigator,
	logger lazy.Loader[log.Logger],
) lazy.Loader[*service.Manager] {
	return lazy.New(func() (*service.Manager, error) {
		sessionStore, err := store.Load()
		if err != nil {
			return nil, err
		}

		redirectOnExpiry := func(ctx context.Context, _ service.State, reason service.Reason) {
			if reason == service.ReasonExpired {
				navigator.Redirect(ctx, service.LoginPath)
			}
		}

		return service.NewManager(sessionStore, clock, logger.MustLoad(), service.WithListener(redirectOnExpiry)), nil
	})
}

func guardProvider(sessions lazy.Loader[*service.Manager], navigator service.Navigator) lazy.Loader[*service.Guard] {
	return lazy.New(func() (*service.Guard, error) {
		return service.NewGuard(sessions.MustLoad(), navigator), nil
	})
}

func httpClientProvider(
	config *Config,
	store lazy.Loader[storage.Store],
	sessions lazy.Loader[*service.Manager],
	navigator service.Navigator,
	clock pkgtime.Clock,
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Client] {
	return lazy.New(func() (http.Client, error) {
		opts := []http.ClientOption{
			http.WithBaseURL(config.BackendURL),
			http.WithTimeout(config.HTTPTimeout),
			http.WithRequestHeader("Accept", "application/json"),
			http.WithRequestID(http.DefaultRequestIDHeader),
			sessionhttp.WithSessionGate(store.MustLoad(), sessions.MustLoad(), navigator, clock, logger.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelDebug, log.LevelWarn),
		}
		if config.RetryMaxElapsed > 0 {
			opts = append(opts, http.WithExponentialRetry(config.RetryMaxElapsed))
		}

		return http.NewClient(opts...), nil
	})
}
