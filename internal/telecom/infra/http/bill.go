package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

var (
	allBillsRoute              = pkghttp.Route{Method: http.MethodGet, URL: "api/bills/all"}
	customerBillsRoute         = pkghttp.Route{Method: http.MethodGet, URL: "api/bills/customer/{customerID}"}
	generateBillsRoute         = pkghttp.Route{Method: http.MethodPost, URL: "api/bills/generate"}
	payBillRoute               = pkghttp.Route{Method: http.MethodPost, URL: "api/bills/pay/{customerID}/{billID}"}
	rechargeRoute              = pkghttp.Route{Method: http.MethodPost, URL: "api/bills/recharge"}
	payToContinueSamePlanRoute = pkghttp.Route{Method: http.MethodPost, URL: "api/bills/payBilltoContinueSamePlan/{billID}"}
	payToChangePlanRoute       = pkghttp.Route{Method: http.MethodPost, URL: "api/bills/payBilltoChangePlan/{billID}"}
)

type billService struct {
	client pkghttp.Client
}

func NewBillService(client pkghttp.Client) backend.BillService {
	return billService{client: client}
}

func (s billService) All(ctx context.Context) ([]backend.Bill, error) {
	return call(s.client.NewRequest(ctx, allBillsRoute), pkghttp.JSONBody[[]backend.Bill]())
}

func (s billService) ByCustomer(ctx context.Context, customerID int64) ([]backend.Bill, error) {
	req := s.client.NewRequest(ctx, customerBillsRoute).
		SetPathParam("customerID", strconv.FormatInt(customerID, 10))
	return call(req, pkghttp.JSONBody[[]backend.Bill]())
}

func (s billService) GenerateMonthly(ctx context.Context) (string, error) {
	return call(s.client.NewRequest(ctx, generateBillsRoute), confirmation())
}

func (s billService) Pay(ctx context.Context, customerID, billID int64) (string, error) {
	req := s.client.NewRequest(ctx, payBillRoute).
		SetPathParam("customerID", strconv.FormatInt(customerID, 10)).
		SetPathParam("billID", strconv.FormatInt(billID, 10))
	return call(req, confirmation())
}

func (s billService) Recharge(ctx context.Context, payment backend.Payment) (string, error) {
	req := s.client.NewRequest(ctx, rechargeRoute).SetJSONBody(payment)
	return call(req, confirmation())
}

func (s billService) PayToContinueSamePlan(ctx context.Context, billID int64, payment backend.Payment) (string, error) {
	return s.payBill(ctx, payToContinueSamePlanRoute, billID, payment)
}

func (s billService) PayToChangePlan(ctx context.Context, billID int64, payment backend.Payment) (string, error) {
	return s.payBill(ctx, payToChangePlanRoute, billID, payment)
}

func (s billService) payBill(ctx context.Context, route pkghttp.Route, billID int64, payment backend.Payment) (string, error) {
	req := s.client.NewRequest(ctx, route).
		SetPathParam("billID", strconv.FormatInt(billID, 10)).
		SetJSONBody(payment)
	return call(req, confirmation())
}
