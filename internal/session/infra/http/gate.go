//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SessionTerminator=SessionTerminator"
package http

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/simctl/internal/session/app/service"
	"github.com/klwxsrx/simctl/internal/session/app/storage"
	"github.com/klwxsrx/simctl/internal/session/domain"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
	"github.com/klwxsrx/simctl/pkg/log"
	pkgtime "github.com/klwxsrx/simctl/pkg/time"
)

const authorizationHeader = "Authorization"

type SessionTerminator interface {
	Logout(ctx context.Context, reason service.Reason)
}

// WithSessionGate attaches the stored credential to every outgoing request.
// An expired credential is never sent: the session is terminated, the user is
// sent to the login entry point and the request goes out unauthenticated.
func WithSessionGate(
	store storage.Store,
	sessions SessionTerminator,
	navigator service.Navigator,
	clock pkgtime.Clock,
	logger log.Logger,
) pkghttp.ClientOption {
	return pkghttp.WithBeforeRequest(func(req *resty.Request) error {
		ctx := req.Context()

		// headers survive between retry attempts of the same request
		req.Header.Del(authorizationHeader)

		credential, err := store.LoadCredential()
		if err != nil {
			logger.WithError(err).Warn(ctx, "failed to read session credential, sending request unauthenticated")
			return nil
		}
		if credential.IsAbsent() {
			return nil
		}

		if domain.IsExpired(credential, clock.Now()) {
			logger.WithField("url", req.URL).Info(ctx, "session credential expired, logging out")
			sessions.Logout(ctx, service.ReasonRequest)
			navigator.Redirect(ctx, service.LoginPath)
			return nil
		}

		req.Header.Set(authorizationHeader, "Bearer "+string(credential))
		return nil
	})
}
