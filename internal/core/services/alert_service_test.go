package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/core/services"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AlertServiceTestSuite struct {
	suite.Suite
	mockCfgRepo  *MockAlertConfigRepository
	mockTxnRepo  *MockTransactionRepository
	mockGoalRepo *MockGoalRepository
	mockFundRepo *MockPeaceFundRepository
	service      portssvc.AlertSvcFacade
}

func (suite *AlertServiceTestSuite) SetupTest() {
	suite.mockCfgRepo = new(MockAlertConfigRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockFundRepo = new(MockPeaceFundRepository)
	suite.service = services.NewAlertService(
		suite.mockCfgRepo, suite.mockTxnRepo, suite.mockGoalRepo, suite.mockFundRepo)
}

func (suite *AlertServiceTestSuite) TestGetAlertConfig_FallsBackToDefaults() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockCfgRepo.On("FindAlertConfigByUser", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	cfg, err := suite.service.GetAlertConfig(ctx, userID)

	suite.Require().NoError(err)
	suite.True(cfg.BalanceThreshold.Equal(decimal.NewFromInt(1000)))
	suite.True(cfg.ShowBalanceAlerts)
	suite.True(cfg.ShowGoalAlerts)
	suite.True(cfg.ShowCategoryAlerts)
	suite.True(cfg.ShowTrendAlerts)
	suite.Empty(cfg.MonitoredCategories)
}

func (suite *AlertServiceTestSuite) TestGetAlertConfig_DefaultsOnRepoFailure() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockCfgRepo.On("FindAlertConfigByUser", ctx, userID).Return(nil, errors.New("bad row")).Once()

	cfg, err := suite.service.GetAlertConfig(ctx, userID)

	suite.Require().NoError(err)
	suite.True(cfg.BalanceThreshold.Equal(decimal.NewFromInt(1000)))
}

func (suite *AlertServiceTestSuite) TestGetAlertConfig_Stored() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.AlertConfig{
		UserID:              userID,
		BalanceThreshold:    decimal.NewFromInt(2500),
		MonitoredCategories: []string{"Alimentação"},
		ShowBalanceAlerts:   true,
	}
	suite.mockCfgRepo.On("FindAlertConfigByUser", ctx, userID).Return(stored, nil).Once()

	cfg, err := suite.service.GetAlertConfig(ctx, userID)

	suite.Require().NoError(err)
	suite.True(cfg.BalanceThreshold.Equal(decimal.NewFromInt(2500)))
	suite.False(cfg.ShowGoalAlerts)
}

func (suite *AlertServiceTestSuite) TestEvaluateAlerts_LowBalanceWithStoredThreshold() {
	ctx := context.Background()
	userID := uuid.NewString()
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	stored := &domain.AlertConfig{
		UserID:            userID,
		BalanceThreshold:  decimal.NewFromInt(2000),
		ShowBalanceAlerts: true,
	}
	txns := []domain.Transaction{{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        decimal.NewFromInt(1500),
		Date:          now.AddDate(0, 0, -10),
		Type:          domain.Income,
	}}

	suite.mockCfgRepo.On("FindAlertConfigByUser", ctx, userID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, userID).Return(txns, nil).Once()
	suite.mockGoalRepo.On("ListGoalsByUser", ctx, userID).Return([]domain.Goal{}, nil).Once()
	suite.mockFundRepo.On("FindPeaceFundByUser", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	alerts, err := suite.service.EvaluateAlerts(ctx, userID, now)

	suite.Require().NoError(err)
	suite.Require().Len(alerts, 1)
	suite.Equal("low-balance", alerts[0].ID)
	suite.Equal(domain.SeverityWarning, alerts[0].Severity)
}

func (suite *AlertServiceTestSuite) TestEvaluateAlerts_MissingFundIsNotAnError() {
	ctx := context.Background()
	userID := uuid.NewString()
	now := time.Now()

	suite.mockCfgRepo.On("FindAlertConfigByUser", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, userID).Return([]domain.Transaction{}, nil).Once()
	suite.mockGoalRepo.On("ListGoalsByUser", ctx, userID).Return([]domain.Goal{}, nil).Once()
	suite.mockFundRepo.On("FindPeaceFundByUser", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	alerts, err := suite.service.EvaluateAlerts(ctx, userID, now)

	suite.Require().NoError(err)
	// Zero balance is below the default threshold, so only that rule fires.
	suite.Require().Len(alerts, 1)
	suite.Equal("low-balance", alerts[0].ID)
}

func (suite *AlertServiceTestSuite) TestUpdateAlertConfig_MergesOverDefaults() {
	ctx := context.Background()
	userID := uuid.NewString()
	threshold := decimal.NewFromInt(750)
	off := false

	suite.mockCfgRepo.On("UpsertAlertConfig", ctx, mock.MatchedBy(func(cfg domain.AlertConfig) bool {
		return cfg.UserID == userID && cfg.BalanceThreshold.Equal(threshold) &&
			!cfg.ShowTrendAlerts && cfg.ShowBalanceAlerts && cfg.ShowGoalAlerts
	})).Return(nil).Once()

	cfg, err := suite.service.UpdateAlertConfig(ctx, userID, dto.AlertConfigRequest{
		BalanceThreshold: &threshold,
		ShowTrendAlerts:  &off,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(cfg)
	suite.True(cfg.BalanceThreshold.Equal(threshold))
	suite.mockCfgRepo.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestUpdateAlertConfig_NegativeThreshold() {
	ctx := context.Background()
	threshold := decimal.NewFromInt(-1)

	cfg, err := suite.service.UpdateAlertConfig(ctx, uuid.NewString(), dto.AlertConfigRequest{
		BalanceThreshold: &threshold,
	})

	suite.Require().Error(err)
	suite.Nil(cfg)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCfgRepo.AssertNotCalled(suite.T(), "UpsertAlertConfig", mock.Anything, mock.Anything)
}

func TestAlertServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}
