package budget

import (
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/fanout"
	"github.com/de-tools/budget-atlas/pkg/store/query"
)

// Services bundles the read services over one datasource.
type Services struct {
	Budget        Service
	Expense       ExpenseService
	Regions       RegionService
	Organizations OrganizationService
	Funding       FundingService
	Departments   DepartmentService
	Health        HealthService
}

func NewServices(runner query.Runner, resolver fanout.Resolver, driver domain.DriverType) Services {
	expense := NewExpenseService(runner, resolver)
	return Services{
		Budget:        NewService(runner),
		Expense:       expense,
		Regions:       NewRegionService(runner, resolver),
		Organizations: NewOrganizationService(runner),
		Funding:       NewFundingService(runner),
		Departments:   NewDepartmentService(runner, expense),
		Health:        NewHealthService(runner, driver),
	}
}
