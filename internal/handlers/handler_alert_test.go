package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
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

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
	"github.com/lunnorapp/lunnor_caixa/internal/handlers"
	"github.com/lunnorapp/lunnor_caixa/internal/platform/config"
)

// --- Mock AlertService ---
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) EvaluateAlerts(ctx context.Context, userID string, now time.Time) ([]domain.AlertItem, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AlertItem), args.Error(1)
}

func (m *MockAlertService) GetAlertConfig(ctx context.Context, userID string) (domain.AlertConfig, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.AlertConfig), args.Error(1)
}

func (m *MockAlertService) UpdateAlertConfig(ctx context.Context, userID string, req dto.AlertConfigRequest) (*domain.AlertConfig, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AlertConfig), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AlertSvcFacade = (*MockAlertService)(nil)

// --- Test Suite ---
type AlertHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockAlertService
	jwtSecret string
}

func (suite *AlertHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *AlertHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockSvc = new(MockAlertService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
	}
	services := &portssvc.ServiceContainer{Alert: suite.mockSvc}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AlertHandlerTestSuite) doRequest(method, url, userID string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AlertHandlerTestSuite) TestListAlerts_Success() {
	userID := uuid.NewString()
	fired := []domain.AlertItem{
		{ID: "low-balance", Title: "Saldo baixo", Message: "Saldo abaixo do limite configurado", Severity: domain.SeverityWarning},
		{ID: "goal-g1-complete", Title: "Meta concluída", Message: "Meta atingida", Severity: domain.SeveritySuccess},
	}

	suite.mockSvc.On("EvaluateAlerts", mock.Anything, userID, mock.AnythingOfType("time.Time")).
		Return(fired, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/alerts", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListAlertsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Alerts, 2)
	suite.Equal("low-balance", body.Alerts[0].ID)
	suite.Equal(domain.SeveritySuccess, body.Alerts[1].Severity)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AlertHandlerTestSuite) TestGetAlertConfig_Defaults() {
	userID := uuid.NewString()
	cfg := domain.DefaultAlertConfig(userID)

	suite.mockSvc.On("GetAlertConfig", mock.Anything, userID).
		Return(cfg, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/alerts/config", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.AlertConfigResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.BalanceThreshold.Equal(cfg.BalanceThreshold))
	suite.True(body.ShowBalanceAlerts)
	suite.True(body.ShowGoalAlerts)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AlertHandlerTestSuite) TestUpdateAlertConfig_Success() {
	userID := uuid.NewString()
	threshold := decimal.NewFromInt(750)

	updated := domain.DefaultAlertConfig(userID)
	updated.BalanceThreshold = threshold
	updated.ShowTrendAlerts = false

	suite.mockSvc.On("UpdateAlertConfig",
		mock.Anything,
		userID,
		mock.MatchedBy(func(r dto.AlertConfigRequest) bool {
			return r.BalanceThreshold != nil && r.BalanceThreshold.Equal(threshold) &&
				r.ShowTrendAlerts != nil && !*r.ShowTrendAlerts
		}),
	).Return(&updated, nil).Once()

	payload := []byte(`{"balanceThreshold": "750", "showTrendAlerts": false}`)
	w := suite.doRequest(http.MethodPut, "/api/v1/alerts/config", userID, payload)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.AlertConfigResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.BalanceThreshold.Equal(threshold))
	suite.False(body.ShowTrendAlerts)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AlertHandlerTestSuite) TestUpdateAlertConfig_MalformedBody() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodPut, "/api/v1/alerts/config", userID, []byte(`{not json`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "UpdateAlertConfig")
}

func TestAlertHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AlertHandlerTestSuite))
}
