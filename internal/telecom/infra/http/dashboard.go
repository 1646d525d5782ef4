package http

import (
	"context"
	"net/http"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

var (
	simulationDateRoute      = pkghttp.Route{Method: http.MethodGet, URL: "api/dashboard/date"}
	resetSimulationDateRoute = pkghttp.Route{Method: http.MethodPost, URL: "api/dashboard/reset"}
)

type dashboardService struct {
	client pkghttp.Client
}

func NewDashboardService(client pkghttp.Client) backend.DashboardService {
	return dashboardService{client: client}
}

func (s dashboardService) SimulationDate(ctx context.Context) (backend.SimulationDate, error) {
	return call(s.client.NewRequest(ctx, simulationDateRoute), pkghttp.JSONBody[backend.SimulationDate]())
}

func (s dashboardService) ResetSimulationDate(ctx context.Context) (string, error) {
	return call(s.client.NewRequest(ctx, resetSimulationDateRoute), confirmation())
}
