package services_test

import (
	"context"
	"testing"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/core/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StoreRepository ---
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *MockStoreRepository) UpdateStore(ctx context.Context, store domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) DeleteStore(ctx context.Context, storeID string) error {
	args := m.Called(ctx, storeID)
	return args.Error(0)
}

// --- Test Suite ---
type StoreServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockStoreRepository
	service    portssvc.StoreSvcFacade
	adminScope domain.AccessScope
	tokoAScope domain.AccessScope
}

func (suite *StoreServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStoreRepository)
	suite.service = services.NewStoreService(suite.mockRepo)
	suite.adminScope = domain.AccessScope{Role: domain.RoleAdmin, Policy: domain.PolicyStrict}
	suite.tokoAScope = domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyStrict}
}

// --- Test Cases ---

func (suite *StoreServiceTestSuite) TestCreateStore_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateStoreRequest{Name: "Toko A", Address: "Jl. Merdeka 1"}

	suite.mockRepo.On("SaveStore", ctx, mock.MatchedBy(func(s domain.Store) bool {
		return s.Name == req.Name && s.Address == req.Address && s.CreatedBy == creatorUserID && s.StoreID != ""
	})).Return(nil).Once()

	store, err := suite.service.CreateStore(ctx, suite.adminScope, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(store)
	suite.Equal(req.Name, store.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestCreateStore_ForbiddenForStoreAdmin() {
	ctx := context.Background()
	req := dto.CreateStoreRequest{Name: "Toko B"}

	store, err := suite.service.CreateStore(ctx, suite.tokoAScope, req, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(store)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveStore")
}

func (suite *StoreServiceTestSuite) TestListStores_StoreAdminSeesOnlyAssigned() {
	ctx := context.Background()
	all := []domain.Store{
		{StoreID: "id-a", Name: "Toko A"},
		{StoreID: "id-b", Name: "Toko B"},
	}
	suite.mockRepo.On("ListStores", ctx).Return(all, nil).Once()

	stores, writable, err := suite.service.ListStores(ctx, suite.tokoAScope)

	suite.Require().NoError(err)
	suite.Require().Len(stores, 1)
	suite.Equal("Toko A", stores[0].Name)
	suite.Equal([]string{"Toko A"}, writable)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestListStores_AdminSeesAll() {
	ctx := context.Background()
	all := []domain.Store{
		{StoreID: "id-a", Name: "Toko A"},
		{StoreID: "id-b", Name: "Toko B"},
	}
	suite.mockRepo.On("ListStores", ctx).Return(all, nil).Once()

	stores, writable, err := suite.service.ListStores(ctx, suite.adminScope)

	suite.Require().NoError(err)
	suite.Len(stores, 2)
	suite.Equal([]string{"Toko A", "Toko B"}, writable)
}

func (suite *StoreServiceTestSuite) TestGetStoreByID_HiddenFromOtherStoreAdmin() {
	ctx := context.Background()
	other := &domain.Store{StoreID: "id-b", Name: "Toko B"}
	suite.mockRepo.On("FindStoreByID", ctx, "id-b").Return(other, nil).Once()

	store, err := suite.service.GetStoreByID(ctx, suite.tokoAScope, "id-b")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(store)
}

func (suite *StoreServiceTestSuite) TestUpdateStore_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Store{StoreID: "id-a", Name: "Toko A"}
	req := dto.UpdateStoreRequest{Name: "Toko A Baru", Phone: "0812000111"}

	suite.mockRepo.On("FindStoreByID", ctx, "id-a").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateStore", ctx, mock.MatchedBy(func(s domain.Store) bool {
		return s.StoreID == "id-a" && s.Name == req.Name && s.Phone == req.Phone && s.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	store, err := suite.service.UpdateStore(ctx, suite.adminScope, "id-a", req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal("Toko A Baru", store.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestDeleteStore_ForbiddenForStoreAdmin() {
	ctx := context.Background()

	err := suite.service.DeleteStore(ctx, suite.tokoAScope, "id-a")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteStore")
}

func (suite *StoreServiceTestSuite) TestDeleteStore_Success() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteStore", ctx, "id-a").Return(nil).Once()

	err := suite.service.DeleteStore(ctx, suite.adminScope, "id-a")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestStoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StoreServiceTestSuite))
}
