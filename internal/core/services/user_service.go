package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user provisioning service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser provisions a dashboard user. Admin only; role and assigned store
// are fixed here and never change for the lifetime of the account.
func (s *userService) CreateUser(ctx context.Context, scope domain.AccessScope, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	if scope.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationFailedError("invalid role")
	}

	var storeName *string
	if req.Role == domain.RoleStoreAdmin {
		if req.StoreName == nil || *req.StoreName == "" {
			return nil, apperrors.NewValidationFailedError("store-admin requires an assigned store name")
		}
		storeName = req.StoreName
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
		StoreName:    storeName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to create user", slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "user created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context, scope domain.AccessScope) ([]domain.User, error) {
	if scope.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list users")
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}
