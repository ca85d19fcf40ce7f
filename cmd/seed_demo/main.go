package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/core/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/platform/config"
	"github.com/bukukas/bukukas_backend/internal/repositories/database/pgsql"
	"github.com/bukukas/bukukas_backend/pkg/database"
)

// seed_demo provisions a demo dataset: one admin, one store-admin per store,
// the three demo stores and the sample transaction set. Every step is an
// independent write; rerunning skips records that already exist.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryContainer(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	adminScope := domain.AccessScope{Role: domain.RoleAdmin, Policy: cfg.ScopePolicy}

	storeNames := []string{"Toko A", "Toko B", "Toko C"}
	for _, name := range storeNames {
		_, err := serviceContainer.Store.CreateStore(ctx, adminScope, dto.CreateStoreRequest{
			Name:        name,
			Description: "Demo store",
		}, "seed-demo")
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				logger.Info("Store already exists, skipping", slog.String("name", name))
				continue
			}
			logger.Error("Failed to create store", slog.String("name", name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Store created", slog.String("name", name))
	}

	adminUserID := seedUser(ctx, logger, serviceContainer, adminScope, dto.CreateUserRequest{
		Username: "admin",
		Email:    "admin@bukukas.local",
		Password: "admin-demo-password",
		Role:     domain.RoleAdmin,
	})

	for _, name := range storeNames {
		storeName := name
		seedUser(ctx, logger, serviceContainer, adminScope, dto.CreateUserRequest{
			Username:  "kasir-" + storeName[len(storeName)-1:],
			Email:     "",
			Password:  "kasir-demo-password",
			Role:      domain.RoleStoreAdmin,
			StoreName: &storeName,
		})
	}

	created, err := serviceContainer.Transaction.SeedSampleData(ctx, adminScope, adminUserID)
	if err != nil {
		logger.Error("Sample transaction seeding stopped partway",
			slog.Int("created", created), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Demo data seeded", slog.Int("transactions", created))
}

// seedUser creates one user and returns its ID, reusing the existing record
// when the username is already taken.
func seedUser(ctx context.Context, logger *slog.Logger, sc *portssvc.ServiceContainer, scope domain.AccessScope, req dto.CreateUserRequest) string {
	user, err := sc.User.CreateUser(ctx, scope, req, "seed-demo")
	if err == nil {
		logger.Info("User created", slog.String("username", req.Username), slog.String("role", string(req.Role)))
		return user.UserID
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		existing, findErr := sc.User.GetUserByUsername(ctx, req.Username)
		if findErr == nil {
			logger.Info("User already exists, skipping", slog.String("username", req.Username))
			return existing.UserID
		}
		logger.Error("Failed to load existing user", slog.String("username", req.Username), slog.String("error", findErr.Error()))
		os.Exit(1)
	}
	logger.Error("Failed to create user", slog.String("username", req.Username), slog.String("error", err.Error()))
	os.Exit(1)
	return ""
}
