package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

var (
	allUsagesRoute = pkghttp.Route{Method: http.MethodGet, URL: "api/usages/all"}
	simUsagesRoute = pkghttp.Route{Method: http.MethodGet, URL: "api/usages/sim/{simID}"}
	myUsagesRoute  = pkghttp.Route{Method: http.MethodGet, URL: "api/usages/my"}
)

type usageService struct {
	client pkghttp.Client
}

func NewUsageService(client pkghttp.Client) backend.UsageService {
	return usageService{client: client}
}

func (s usageService) All(ctx context.Context) ([]backend.Usage, error) {
	return call(s.client.NewRequest(ctx, allUsagesRoute), pkghttp.JSONBody[[]backend.Usage]())
}

func (s usageService) BySIM(ctx context.Context, simID int64) ([]backend.Usage, error) {
	req := s.client.NewRequest(ctx, simUsagesRoute).SetPathParam("simID", strconv.FormatInt(simID, 10))
	return call(req, pkghttp.JSONBody[[]backend.Usage]())
}

func (s usageService) Mine(ctx context.Context) ([]backend.Usage, error) {
	return call(s.client.NewRequest(ctx, myUsagesRoute), pkghttp.JSONBody[[]backend.Usage]())
}
