package services

import (
	"context"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
	"github.com/bukukas/bukukas_backend/internal/dto"
)

// UserSvcFacade defines operations for provisioning and reading users.
type UserSvcFacade interface {
	// CreateUser provisions a dashboard user. Only admins may provision.
	CreateUser(ctx context.Context, scope domain.AccessScope, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, scope domain.AccessScope) ([]domain.User, error)
}
