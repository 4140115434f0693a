package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
	"github.com/lunnorapp/lunnor_caixa/internal/handlers"
	"github.com/lunnorapp/lunnor_caixa/internal/platform/config"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, filter finance.Filter, limit, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) MonthlySummary(ctx context.Context, userID string, months int, now time.Time) ([]finance.MonthBucket, error) {
	args := m.Called(ctx, userID, months, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.MonthBucket), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockTransactionService
	jwtSecret string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "lunnor-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockSvc = new(MockTransactionService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skips swagger registration
	}
	services := &portssvc.ServiceContainer{Transaction: suite.mockSvc}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url, userID string, body io.Reader) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_FilterParsing() {
	userID := uuid.NewString()
	expected := []domain.Transaction{
		{TransactionID: "t1", UserID: userID, Amount: decimal.NewFromInt(80), Type: domain.Expense, Category: "Alimentação"},
		{TransactionID: "t2", UserID: userID, Amount: decimal.NewFromInt(35), Type: domain.Expense, Category: "Alimentação"},
	}

	suite.mockSvc.On("ListTransactions",
		mock.Anything,
		userID,
		mock.MatchedBy(func(f finance.Filter) bool {
			return f.Type == "expense" &&
				f.Category == "Alimentação" &&
				f.SearchTerm == "mercado" &&
				f.StartDate != nil && f.StartDate.Format("2006-01-02") == "2025-01-01" &&
				f.EndDate == nil
		}),
		10, 5,
	).Return(expected, nil).Once()

	url := "/api/v1/transactions?type=expense&category=Alimenta%C3%A7%C3%A3o&search=mercado&startDate=2025-01-01&limit=10&offset=5"
	w := suite.doRequest(http.MethodGet, url, userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Transactions, 2)
	suite.Equal("t1", body.Transactions[0].TransactionID)
	suite.Equal("t2", body.Transactions[1].TransactionID)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_EndDateCoversWholeDay() {
	userID := uuid.NewString()
	// Dated on the requested end date, but mid-morning.
	sameDay := domain.Transaction{
		TransactionID: "t-same-day",
		UserID:        userID,
		Amount:        decimal.NewFromInt(42),
		Date:          time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		Type:          domain.Expense,
	}

	suite.mockSvc.On("ListTransactions",
		mock.Anything,
		userID,
		mock.MatchedBy(func(f finance.Filter) bool {
			matched := finance.FilterTransactions([]domain.Transaction{sameDay}, f)
			return len(matched) == 1
		}),
		0, 0,
	).Return([]domain.Transaction{sameDay}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?endDate=2025-06-15", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Transactions, 1)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidType() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?type=transfer", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidStartDate() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?startDate=01-01-2025", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(250),
		Date:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Description: "Salário parcial",
		Category:    "Salário",
		Type:        "income",
	}
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        reqBody.Amount,
		Date:          reqBody.Date,
		Description:   reqBody.Description,
		Category:      reqBody.Category,
		Type:          domain.Income,
	}

	suite.mockSvc.On("CreateTransaction",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.Description == "Salário parcial" && r.Amount.Equal(decimal.NewFromInt(250))
		}),
		userID,
	).Return(created, nil).Once()

	payload, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", userID, bytes.NewReader(payload))

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.TransactionID, body.TransactionID)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockSvc.On("GetTransactionByID", mock.Anything, userID, txnID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txnID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Forbidden() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockSvc.On("GetTransactionByID", mock.Anything, userID, txnID).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txnID, userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestMonthlySummary_MonthsParam() {
	userID := uuid.NewString()
	buckets := []finance.MonthBucket{
		{MonthKey: finance.MonthKey{Year: 2025, Month: time.June}, Income: decimal.NewFromInt(3000), Expense: decimal.NewFromInt(1200), Net: decimal.NewFromInt(1800)},
		{MonthKey: finance.MonthKey{Year: 2025, Month: time.July}, Income: decimal.NewFromInt(3000), Expense: decimal.NewFromInt(900), Net: decimal.NewFromInt(2100)},
	}

	suite.mockSvc.On("MonthlySummary", mock.Anything, userID, 3, mock.AnythingOfType("time.Time")).
		Return(buckets, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/summary?months=3", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.MonthlySummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Months, 2)
	suite.Equal("2025-06", body.Months[0].Month)
	suite.Equal("2025-07", body.Months[1].Month)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockSvc.On("DeleteTransaction", mock.Anything, userID, txnID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
