package telecom

import (
	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	telecomhttp "github.com/klwxsrx/simctl/internal/telecom/infra/http"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
	"github.com/klwxsrx/simctl/pkg/lazy"
)

type DependencyContainer struct {
	AuthService      lazy.Loader[backend.AuthService]
	PlanService      lazy.Loader[backend.PlanService]
	SIMService       lazy.Loader[backend.SIMService]
	BillService      lazy.Loader[backend.BillService]
	UsageService     lazy.Loader[backend.UsageService]
	CustomerService  lazy.Loader[backend.CustomerService]
	DashboardService lazy.Loader[backend.DashboardService]
}

func NewDependencyContainer(client lazy.Loader[pkghttp.Client]) DependencyContainer {
	return DependencyContainer{
		AuthService:      serviceProvider(client, telecomhttp.NewAuthService),
		PlanService:      serviceProvider(client, telecomhttp.NewPlanService),
		SIMService:       serviceProvider(client, telecomhttp.NewSIMService),
		BillService:      serviceProvider(client, telecomhttp.NewBillService),
		UsageService:     serviceProvider(client, telecomhttp.NewUsageService),
		CustomerService:  serviceProvider(client, telecomhttp.NewCustomerService),
		DashboardService: serviceProvider(client, telecomhttp.NewDashboardService),
	}
}

func serviceProvider[T any](client lazy.Loader[pkghttp.Client], newService func(pkghttp.Client) T) lazy.Loader[T] {
	return lazy.New(func() (T, error) {
		return newService(client.MustLoad()), nil
	})
}
