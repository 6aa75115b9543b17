package services

import (
	"time"

	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/utils/classify"
	"github.com/bizbooks/bizbooks_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, repos.ProjectRepo)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.AccountRepo, repos.ProjectRepo)

	// All reports share one classifier so bucket assignments stay consistent
	// across statements.
	container.Reporting = NewReportingService(
		repos.AccountRepo,
		repos.VoucherRepo,
		repos.ProjectRepo,
		classify.Default(),
		WithFinancialYearStart(time.Month(cfg.FinancialYearStartMonth)),
	)

	return container
}
