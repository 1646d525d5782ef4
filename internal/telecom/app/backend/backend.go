//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "AuthService=AuthService,PlanService=PlanService,SIMService=SIMService,BillService=BillService,UsageService=UsageService,CustomerService=CustomerService,DashboardService=DashboardService"
package backend

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

type (
	StatusError struct {
		Code    int
		Message string
	}

	AuthService interface {
		Login(ctx context.Context, aadhaarNo, password string) (LoginResult, error)
		Register(ctx context.Context, registration Registration) error
		ChangePassword(ctx context.Context, change PasswordChange) error
	}

	PlanService interface {
		List(ctx context.Context) ([]Plan, error)
		Get(ctx context.Context, id int64) (Plan, error)
		Create(ctx context.Context, plan Plan) (Plan, error)
		Update(ctx context.Context, id int64, plan Plan) (Plan, error)
		Delete(ctx context.Context, id int64) error
	}

	SIMService interface {
		Apply(ctx context.Context, customerID, planID int64) (SIM, error)
		Pending(ctx context.Context) ([]SIM, error)
		Approve(ctx context.Context, id int64) (SIM, error)
		Reject(ctx context.Context, id int64) (SIM, error)
		ByCustomer(ctx context.Context, customerID int64) ([]SIM, error)
		Get(ctx context.Context, id int64) (SIM, error)
		All(ctx context.Context) ([]SIM, error)
		ChangePlanPostpaid(ctx context.Context, simID, planID int64) (string, error)
		ActivateNewPlanPostpaid(ctx context.Context, simID, planID int64) (string, error)
	}

	BillService interface {
		All(ctx context.Context) ([]Bill, error)
		ByCustomer(ctx context.Context, customerID int64) ([]Bill, error)
		GenerateMonthly(ctx context.Context) (string, error)
		Pay(ctx context.Context, customerID, billID int64) (string, error)
		Recharge(ctx context.Context, payment Payment) (string, error)
		PayToContinueSamePlan(ctx context.Context, billID int64, payment Payment) (string, error)
		PayToChangePlan(ctx context.Context, billID int64, payment Payment) (string, error)
	}

	UsageService interface {
		All(ctx context.Context) ([]Usage, error)
		BySIM(ctx context.Context, simID int64) ([]Usage, error)
		Mine(ctx context.Context) ([]Usage, error)
	}

	CustomerService interface {
		All(ctx context.Context) ([]Customer, error)
		Get(ctx context.Context, id int64) (Customer, error)
	}

	DashboardService interface {
		SimulationDate(ctx context.Context) (SimulationDate, error)
		ResetSimulationDate(ctx context.Context) (string, error)
	}
)

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.Code)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.Code, e.Message)
}
