package services

import (
	"time"

	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryContainer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Config validated the timezone at load time; fall back to UTC anyway.
	loc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		loc = time.UTC
	}

	container.User = NewUserService(repos.User)
	container.Store = NewStoreService(repos.Store)
	container.Transaction = NewTransactionService(repos.Transaction, repos.Store)
	container.Reporting = NewReportingService(repos.Transaction, repos.Store, loc)
	container.Export = NewExportService(repos.Transaction, repos.Store, loc)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
