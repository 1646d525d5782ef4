package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

var (
	applySIMRoute                = pkghttp.Route{Method: http.MethodPost, URL: "api/sim/apply"}
	pendingSIMsRoute             = pkghttp.Route{Method: http.MethodGet, URL: "api/sim/pending"}
	approveSIMRoute              = pkghttp.Route{Method: http.MethodPut, URL: "api/sim/{simID}/approve"}
	rejectSIMRoute               = pkghttp.Route{Method: http.MethodPut, URL: "api/sim/{simID}/reject"}
	customerSIMsRoute            = pkghttp.Route{Method: http.MethodGet, URL: "api/sim/customer/{customerID}"}
	getSIMRoute                  = pkghttp.Route{Method: http.MethodGet, URL: "api/sim/{simID}"}
	allSIMsRoute                 = pkghttp.Route{Method: http.MethodGet, URL: "api/sim/getAllSims"}
	changePlanPostpaidRoute      = pkghttp.Route{Method: http.MethodPost, URL: "api/sim/changePlanPostPaid/{simID}"}
	activateNewPlanPostpaidRoute = pkghttp.Route{Method: http.MethodPost, URL: "api/sim/ActivateNewPlanPostpaid/{simID}"}
)

type (
	simService struct {
		client pkghttp.Client
	}

	planChangeIn struct {
		PlanID int64 `json:"planId"`
	}
)

func NewSIMService(client pkghttp.Client) backend.SIMService {
	return simService{client: client}
}

func (s simService) Apply(ctx context.Context, customerID, planID int64) (backend.SIM, error) {
	req := s.client.NewRequest(ctx, applySIMRoute).
		SetQueryParam("customerId", strconv.FormatInt(customerID, 10)).
		SetQueryParam("planId", strconv.FormatInt(planID, 10))
	return call(req, pkghttp.JSONBody[backend.SIM]())
}

func (s simService) Pending(ctx context.Context) ([]backend.SIM, error) {
	return call(s.client.NewRequest(ctx, pendingSIMsRoute), pkghttp.JSONBody[[]backend.SIM]())
}

func (s simService) Approve(ctx context.Context, id int64) (backend.SIM, error) {
	req := s.client.NewRequest(ctx, approveSIMRoute).SetPathParam("simID", strconv.FormatInt(id, 10))
	return call(req, pkghttp.JSONBody[backend.SIM]())
}

func (s simService) Reject(ctx context.Context, id int64) (backend.SIM, error) {
	req := s.client.NewRequest(ctx, rejectSIMRoute).SetPathParam("simID", strconv.FormatInt(id, 10))
	return call(req, pkghttp.JSONBody[backend.SIM]())
}

func (s simService) ByCustomer(ctx context.Context, customerID int64) ([]backend.SIM, error) {
	req := s.client.NewRequest(ctx, customerSIMsRoute).
		SetPathParam("customerID", strconv.FormatInt(customerID, 10))
	return call(req, pkghttp.JSONBody[[]backend.SIM]())
}

func (s simService) Get(ctx context.Context, id int64) (backend.SIM, error) {
	req := s.client.NewRequest(ctx, getSIMRoute).SetPathParam("simID", strconv.FormatInt(id, 10))
	return call(req, pkghttp.JSONBody[backend.SIM]())
}

func (s simService) All(ctx context.Context) ([]backend.SIM, error) {
	return call(s.client.NewRequest(ctx, allSIMsRoute), pkghttp.JSONBody[[]backend.SIM]())
}

func (s simService) ChangePlanPostpaid(ctx context.Context, simID, planID int64) (string, error) {
	return s.changePlan(ctx, changePlanPostpaidRoute, simID, planID)
}

func (s simService) ActivateNewPlanPostpaid(ctx context.Context, simID, planID int64) (string, error) {
	return s.changePlan(ctx, activateNewPlanPostpaidRoute, simID, planID)
}

func (s simService) changePlan(ctx context.Context, route pkghttp.Route, simID, planID int64) (string, error) {
	req := s.client.NewRequest(ctx, route).
		SetPathParam("simID", strconv.FormatInt(simID, 10)).
		SetJSONBody(planChangeIn{PlanID: planID})
	return call(req, confirmation())
}
