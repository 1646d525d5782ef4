package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

var (
	listPlansRoute  = pkghttp.Route{Method: http.MethodGet, URL: "api/plans"}
	getPlanRoute    = pkghttp.Route{Method: http.MethodGet, URL: "api/plans/{planID}"}
	createPlanRoute = pkghttp.Route{Method: http.MethodPost, URL: "api/plans"}
	updatePlanRoute = pkghttp.Route{Method: http.MethodPut, URL: "api/plans/{planID}"}
	deletePlanRoute = pkghttp.Route{Method: http.MethodDelete, URL: "api/plans/{planID}"}
)

type planService struct {
	client pkghttp.Client
}

func NewPlanService(client pkghttp.Client) backend.PlanService {
	return planService{client: client}
}

func (s planService) List(ctx context.Context) ([]backend.Plan, error) {
	return call(s.client.NewRequest(ctx, listPlansRoute), pkghttp.JSONBody[[]backend.Plan]())
}

func (s planService) Get(ctx context.Context, id int64) (backend.Plan, error) {
	req := s.client.NewRequest(ctx, getPlanRoute).
		SetPathParam("planID", strconv.FormatInt(id, 10))
	return call(req, pkghttp.JSONBody[backend.Plan]())
}

func (s planService) Create(ctx context.Context, plan backend.Plan) (backend.Plan, error) {
	plan.ID = 0
	req := s.client.NewRequest(ctx, createPlanRoute).SetJSONBody(plan)
	return call(req, pkghttp.JSONBody[backend.Plan]())
}

func (s planService) Update(ctx context.Context, id int64, plan backend.Plan) (backend.Plan, error) {
	plan.ID = id
	req := s.client.NewRequest(ctx, updatePlanRoute).
		SetPathParam("planID", strconv.FormatInt(id, 10)).
		SetJSONBody(plan)
	return call(req, pkghttp.JSONBody[backend.Plan]())
}

func (s planService) Delete(ctx context.Context, id int64) error {
	req := s.client.NewRequest(ctx, deletePlanRoute).
		SetPathParam("planID", strconv.FormatInt(id, 10))
	_, err := call(req, noContent())
	return err
}
