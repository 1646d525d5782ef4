package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	telecomhttp "github.com/klwxsrx/simctl/internal/telecom/infra/http"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

type recordedRequest struct {
	method string
	path   string
	query  map[string]string
	body   map[string]any
}

type fakeBackend struct {
	router *mux.Router
	last   recordedRequest
}

func newFakeBackend(t *testing.T) (*fakeBackend, pkghttp.Client) {
	t.Helper()

	b := &fakeBackend{router: mux.NewRouter()}
	srv := httptest.NewServer(b.router)
	t.Cleanup(srv.Close)

	return b, pkghttp.NewClient(pkghttp.WithBaseURL(srv.URL))
}

func (b *fakeBackend) handle(t *testing.T, method, path string, status int, response string) {
	b.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		b.last = recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  map[string]string{},
		}
		for key := range r.URL.Query() {
			b.last.query[key] = r.URL.Query().Get(key)
		}

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &b.last.body))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}).Methods(method)
}

func TestAuthService_Login(t *testing.T) {
	b, client := newFakeBackend(t)
	b.handle(t, http.MethodPost, "/api/auth/login", http.StatusOK, `{
		"token": "aaa.bbb.ccc",
		"user": {"id": 3, "name": "Ravi", "email": "ravi@example.com", "phone": "9000000002", "aadhaarNo": "111122223333", "role": "ADMIN"}
	}`)

	result, err := telecomhttp.NewAuthService(client).Login(context.Background(), "111122223333", "secret")

	require.NoError(t, err)
	assert.Equal(t, backend.LoginResult{
		Token: "aaa.bbb.ccc",
		User: domain.Identity{
			ID:        3,
			Name:      "Ravi",
			Email:     "ravi@example.com",
			Phone:     "9000000002",
			AadhaarNo: "111122223333",
			Role:      domain.RoleAdmin,
		},
	}, result)
	assert.Equal(t, map[string]any{"aadhaarNo": "111122223333", "password": "secret"}, b.last.body)
}

func TestAuthService_LoginRejected(t *testing.T) {
	b, client := newFakeBackend(t)
	b.handle(t, http.MethodPost, "/api/auth/login", http.StatusUnauthorized, `{"message": "Invalid Aadhaar number or password"}`)

	_, err := telecomhttp.NewAuthService(client).Login(context.Background(), "111122223333", "wrong")

	require.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid Aadhaar number or password")
}

func TestServices_RoutesAndPayloads(t *testing.T) {
	ctx := context.Background()
	payment := backend.Payment{SIMID: 4, PlanID: 2, Amount: 299}
	paymentBody := map[string]any{"simId": float64(4), "planId": float64(2), "amount": float64(299)}

	tests := []struct {
		name          string
		method        string
		route         string
		response      string
		call          func(client pkghttp.Client) (any, error)
		expectedPath  string
		expectedQuery map[string]string
		expectedBody  map[string]any
		expected      any
	}{
		{
			name:   "register",
			method: http.MethodPost,
			route:  "/api/auth/register",
			call: func(client pkghttp.Client) (any, error) {
				return nil, telecomhttp.NewAuthService(client).Register(ctx, backend.Registration{
					Name: "Asha", Email: "asha@example.com", Password: "pw", Phone: "9000000001", AadhaarNo: "123412341234",
				})
			},
			expectedPath: "/api/auth/register",
			expectedBody: map[string]any{
				"name": "Asha", "email": "asha@example.com", "password": "pw", "phone": "9000000001", "aadhaarNo": "123412341234",
			},
		},
		{
			name:   "change password",
			method: http.MethodPost,
			route:  "/api/auth/login/change-password",
			call: func(client pkghttp.Client) (any, error) {
				return nil, telecomhttp.NewAuthService(client).ChangePassword(ctx, backend.PasswordChange{
					AadhaarNo: "123412341234", OldPassword: "old", NewPassword: "new",
				})
			},
			expectedPath: "/api/auth/login/change-password",
			expectedBody: map[string]any{"aadhaarNo": "123412341234", "oldPassword": "old", "newPassword": "new"},
		},
		{
			name:     "list plans",
			method:   http.MethodGet,
			route:    "/api/plans",
			response: `[{"id":1,"name":"Basic","price":199,"dataLimit":1.5,"callLimit":100,"type":"PREPAID","validity":28}]`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewPlanService(client).List(ctx)
			},
			expectedPath: "/api/plans",
			expected: []backend.Plan{{
				ID: 1, Name: "Basic", Price: 199, DataLimit: 1.5, CallLimit: 100, Type: backend.PlanTypePrepaid, Validity: 28,
			}},
		},
		{
			name:     "update plan",
			method:   http.MethodPut,
			route:    "/api/plans/{id}",
			response: `{"id":5,"name":"Max","price":999,"type":"POSTPAID","validity":30}`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewPlanService(client).Update(ctx, 5, backend.Plan{
					Name: "Max", Price: 999, Type: backend.PlanTypePostpaid, Validity: 30,
				})
			},
			expectedPath: "/api/plans/5",
			expectedBody: map[string]any{
				"id": float64(5), "name": "Max", "price": float64(999), "dataLimit": float64(0),
				"callLimit": float64(0), "type": "POSTPAID", "validity": float64(30),
			},
			expected: backend.Plan{ID: 5, Name: "Max", Price: 999, Type: backend.PlanTypePostpaid, Validity: 30},
		},
		{
			name:   "delete plan",
			method: http.MethodDelete,
			route:  "/api/plans/{id}",
			call: func(client pkghttp.Client) (any, error) {
				return nil, telecomhttp.NewPlanService(client).Delete(ctx, 9)
			},
			expectedPath: "/api/plans/9",
		},
		{
			name:     "apply for sim",
			method:   http.MethodPost,
			route:    "/api/sim/apply",
			response: `{"id":11,"status":"PENDING"}`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewSIMService(client).Apply(ctx, 7, 2)
			},
			expectedPath:  "/api/sim/apply",
			expectedQuery: map[string]string{"customerId": "7", "planId": "2"},
			expected:      backend.SIM{ID: 11, Status: "PENDING"},
		},
		{
			name:     "approve sim",
			method:   http.MethodPut,
			route:    "/api/sim/{id}/approve",
			response: `{"id":11,"status":"ACTIVE","phoneNumber":"9876543210"}`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewSIMService(client).Approve(ctx, 11)
			},
			expectedPath: "/api/sim/11/approve",
			expected:     backend.SIM{ID: 11, Status: "ACTIVE", PhoneNumber: "9876543210"},
		},
		{
			name:     "customer sims",
			method:   http.MethodGet,
			route:    "/api/sim/customer/{id}",
			response: `[{"id":11,"simType":"POSTPAID","plan":{"id":2,"name":"Max"}}]`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewSIMService(client).ByCustomer(ctx, 7)
			},
			expectedPath: "/api/sim/customer/7",
			expected:     []backend.SIM{{ID: 11, SIMType: backend.PlanTypePostpaid, Plan: &backend.Plan{ID: 2, Name: "Max"}}},
		},
		{
			name:     "activate new postpaid plan",
			method:   http.MethodPost,
			route:    "/api/sim/ActivateNewPlanPostpaid/{id}",
			response: `"Plan activated"`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewSIMService(client).ActivateNewPlanPostpaid(ctx, 11, 3)
			},
			expectedPath: "/api/sim/ActivateNewPlanPostpaid/11",
			expectedBody: map[string]any{"planId": float64(3)},
			expected:     "Plan activated",
		},
		{
			name:     "pay bill",
			method:   http.MethodPost,
			route:    "/api/bills/pay/{customerID}/{billID}",
			response: `{"message":"Bill paid"}`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewBillService(client).Pay(ctx, 7, 21)
			},
			expectedPath: "/api/bills/pay/7/21",
			expected:     "Bill paid",
		},
		{
			name:     "recharge",
			method:   http.MethodPost,
			route:    "/api/bills/recharge",
			response: `{"message":"Recharge successful"}`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewBillService(client).Recharge(ctx, payment)
			},
			expectedPath: "/api/bills/recharge",
			expectedBody: paymentBody,
			expected:     "Recharge successful",
		},
		{
			name:     "pay bill to change plan",
			method:   http.MethodPost,
			route:    "/api/bills/payBilltoChangePlan/{id}",
			response: `{"message":"ok"}`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewBillService(client).PayToChangePlan(ctx, 21, payment)
			},
			expectedPath: "/api/bills/payBilltoChangePlan/21",
			expectedBody: paymentBody,
			expected:     "ok",
		},
		{
			name:     "generate monthly bills answered with plain text",
			method:   http.MethodPost,
			route:    "/api/bills/generate",
			response: "Monthly bills generated\n",
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewBillService(client).GenerateMonthly(ctx)
			},
			expectedPath: "/api/bills/generate",
			expected:     "Monthly bills generated",
		},
		{
			name:     "generate monthly bills answered with a json string",
			method:   http.MethodPost,
			route:    "/api/bills/generate",
			response: `"Monthly bills generated"`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewBillService(client).GenerateMonthly(ctx)
			},
			expectedPath: "/api/bills/generate",
			expected:     "Monthly bills generated",
		},
		{
			name:     "my usages",
			method:   http.MethodGet,
			route:    "/api/usages/my",
			response: `[{"id":1,"date":"2025-01-02","type":"DATA","dataUsed":0.5,"simCardPhoneNumber":"9876543210"}]`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewUsageService(client).Mine(ctx)
			},
			expectedPath: "/api/usages/my",
			expected: []backend.Usage{{
				ID: 1, Date: "2025-01-02", Type: "DATA", DataUsed: 0.5, PhoneNumber: "9876543210",
			}},
		},
		{
			name:     "customer by id",
			method:   http.MethodGet,
			route:    "/api/customer/getCustomerById/{id}",
			response: `{"id":7,"name":"Asha"}`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewCustomerService(client).Get(ctx, 7)
			},
			expectedPath: "/api/customer/getCustomerById/7",
			expected:     backend.Customer{ID: 7, Name: "Asha"},
		},
		{
			name:     "simulation date",
			method:   http.MethodGet,
			route:    "/api/dashboard/date",
			response: `{"simulationDate":"2025-03-01"}`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewDashboardService(client).SimulationDate(ctx)
			},
			expectedPath: "/api/dashboard/date",
			expected:     backend.SimulationDate{Date: "2025-03-01"},
		},
		{
			name:     "reset simulation",
			method:   http.MethodPost,
			route:    "/api/dashboard/reset",
			response: `Simulation reset`,
			call: func(client pkghttp.Client) (any, error) {
				return telecomhttp.NewDashboardService(client).ResetSimulationDate(ctx)
			},
			expectedPath: "/api/dashboard/reset",
			expected:     "Simulation reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, client := newFakeBackend(t)
			b.handle(t, tt.method, tt.route, http.StatusOK, tt.response)

			result, err := tt.call(client)

			require.NoError(t, err)
			assert.Equal(t, tt.method, b.last.method)
			assert.Equal(t, tt.expectedPath, b.last.path)
			if tt.expectedQuery != nil {
				assert.Equal(t, tt.expectedQuery, b.last.query)
			}
			assert.Equal(t, tt.expectedBody, b.last.body)
			if tt.expected != nil {
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestServices_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		response        string
		expectedErr     error
		expectedMessage string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, expectedErr: backend.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, response: `{"error":"Forbidden"}`, expectedErr: backend.ErrUnauthorized, expectedMessage: "Forbidden"},
		{name: "not found", status: http.StatusNotFound, response: `{"message":"SIM not found"}`, expectedErr: backend.ErrNotFound, expectedMessage: "SIM not found"},
		{name: "bad request", status: http.StatusBadRequest, response: `{"message":"Insufficient amount"}`, expectedMessage: "Insufficient amount"},
		{name: "plain text error", status: http.StatusConflict, response: "already applied", expectedMessage: "already applied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, client := newFakeBackend(t)
			b.handle(t, http.MethodGet, "/api/sim/{id}", tt.status, tt.response)

			_, err := telecomhttp.NewSIMService(client).Get(context.Background(), 11)

			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				var statusErr *backend.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.status, statusErr.Code)
			}
			assert.Contains(t, err.Error(), tt.expectedMessage)
		})
	}
}

func TestServices_RetryOnlyIdempotentCalls(t *testing.T) {
	var getCalls, postCalls atomic.Int32
	router := mux.NewRouter()
	router.HandleFunc("/api/bills/all", func(w http.ResponseWriter, _ *http.Request) {
		if getCalls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}).Methods(http.MethodGet)
	router.HandleFunc("/api/bills/generate", func(w http.ResponseWriter, _ *http.Request) {
		postCalls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}).Methods(http.MethodPost)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := pkghttp.NewClient(
		pkghttp.WithBaseURL(srv.URL),
		pkghttp.WithRetry(func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 3)
		}),
	)
	bills := telecomhttp.NewBillService(client)

	all, err := bills.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, int32(2), getCalls.Load())

	_, err = bills.GenerateMonthly(context.Background())
	var statusErr *backend.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Equal(t, int32(1), postCalls.Load())
}
