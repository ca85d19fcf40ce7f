package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/handlers"
	"github.com/bukukas/bukukas_backend/internal/middleware"
	"github.com/bukukas/bukukas_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, scope domain.AccessScope, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, scope, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, scope domain.AccessScope, filter dto.ListTransactionsFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, scope, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, scope domain.AccessScope, transactionID string) error {
	args := m.Called(ctx, scope, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) SeedSampleData(ctx context.Context, scope domain.AccessScope, creatorUserID string) (int, error) {
	args := m.Called(ctx, scope, creatorUserID)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, domain.PolicyStrict))
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

// generateTestToken creates a signed access token for a test session.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string, role domain.Role, storeName string) string {
	user := &domain.User{UserID: userID, Role: role}
	if storeName != "" {
		user.StoreName = &storeName
	}
	token, err := utils.GenerateJWT(user, suite.jwtSecret, time.Hour, "bukukas-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	expected := &domain.Transaction{
		TransactionID: uuid.NewString(),
		StoreName:     "Toko A",
		Amount:        5_000_000,
		Type:          domain.Income,
		Description:   "Penjualan harian",
		Date:          time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now(),
		CreatedBy:     userID,
	}

	suite.mockService.On("CreateTransaction",
		mock.Anything,
		mock.MatchedBy(func(s domain.AccessScope) bool {
			return s.Role == domain.RoleStoreAdmin && s.StoreName == "Toko A" && s.Policy == domain.PolicyStrict
		}),
		mock.AnythingOfType("dto.CreateTransactionRequest"),
		userID,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(gin.H{
		"storeName":   "Toko A",
		"amount":      5000000,
		"type":        "income",
		"description": "Penjualan harian",
		"date":        "2026-08-20T00:00:00Z",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleStoreAdmin, "Toko A"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal(int64(5_000_000), resp.Amount)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ForbiddenStore() {
	userID := uuid.NewString()
	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything, userID).
		Return(nil, apperrors.ErrForbidden).Once()

	body, _ := json.Marshal(gin.H{
		"storeName":   "Toko B",
		"amount":      1000,
		"type":        "expense",
		"description": "Pembelian stok",
		"date":        "2026-08-20T00:00:00Z",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleStoreAdmin, "Toko A"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesFilters() {
	userID := uuid.NewString()
	txns := []domain.Transaction{{TransactionID: uuid.NewString(), StoreName: "Toko A", Type: domain.Income}}

	suite.mockService.On("ListTransactions",
		mock.Anything,
		mock.AnythingOfType("domain.AccessScope"),
		mock.MatchedBy(func(f dto.ListTransactionsFilter) bool {
			return f.StoreName == "Toko A" && f.Type == domain.Income && f.Limit == 10
		}),
	).Return(txns, nil, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?storeName=Toko%20A&type=income&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleAdmin, ""))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Nil(resp.NextToken)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_RejectsUnknownType() {
	userID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?type=transfer", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleAdmin, ""))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoOpReturnsNoContent() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockService.On("DeleteTransaction", mock.Anything, mock.AnythingOfType("domain.AccessScope"), transactionID).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleAdmin, ""))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
