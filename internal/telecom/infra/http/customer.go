package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

var (
	allCustomersRoute = pkghttp.Route{Method: http.MethodGet, URL: "api/customer/getAllCustomer"}
	getCustomerRoute  = pkghttp.Route{Method: http.MethodGet, URL: "api/customer/getCustomerById/{customerID}"}
)

type customerService struct {
	client pkghttp.Client
}

func NewCustomerService(client pkghttp.Client) backend.CustomerService {
	return customerService{client: client}
}

func (s customerService) All(ctx context.Context) ([]backend.Customer, error) {
	return call(s.client.NewRequest(ctx, allCustomersRoute), pkghttp.JSONBody[[]backend.Customer]())
}

func (s customerService) Get(ctx context.Context, id int64) (backend.Customer, error) {
	req := s.client.NewRequest(ctx, getCustomerRoute).
		SetPathParam("customerID", strconv.FormatInt(id, 10))
	return call(req, pkghttp.JSONBody[backend.Customer]())
}
