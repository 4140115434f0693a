package services_test

import (
	"context"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/notify"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUserPaged(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock GoalRepository ---

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	var goal *domain.Goal
	if args.Get(0) != nil {
		goal = args.Get(0).(*domain.Goal)
	}
	return goal, args.Error(1)
}

func (m *MockGoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	var goals []domain.Goal
	if args.Get(0) != nil {
		goals = args.Get(0).([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

// --- Mock PeaceFundRepository ---

type MockPeaceFundRepository struct {
	mock.Mock
}

func (m *MockPeaceFundRepository) FindPeaceFundByUser(ctx context.Context, userID string) (*domain.PeaceFund, error) {
	args := m.Called(ctx, userID)
	var fund *domain.PeaceFund
	if args.Get(0) != nil {
		fund = args.Get(0).(*domain.PeaceFund)
	}
	return fund, args.Error(1)
}

func (m *MockPeaceFundRepository) ListPeaceFundTransactions(ctx context.Context, peaceFundID string) ([]domain.PeaceFundTransaction, error) {
	args := m.Called(ctx, peaceFundID)
	var txns []domain.PeaceFundTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.PeaceFundTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockPeaceFundRepository) SavePeaceFund(ctx context.Context, fund domain.PeaceFund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockPeaceFundRepository) UpdatePeaceFund(ctx context.Context, fund domain.PeaceFund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockPeaceFundRepository) SavePeaceFundTransaction(ctx context.Context, txn domain.PeaceFundTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	var notifs []domain.Notification
	if args.Get(0) != nil {
		notifs = args.Get(0).([]domain.Notification)
	}
	return notifs, args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock AlertConfigRepository ---

type MockAlertConfigRepository struct {
	mock.Mock
}

func (m *MockAlertConfigRepository) FindAlertConfigByUser(ctx context.Context, userID string) (*domain.AlertConfig, error) {
	args := m.Called(ctx, userID)
	var cfg *domain.AlertConfig
	if args.Get(0) != nil {
		cfg = args.Get(0).(*domain.AlertConfig)
	}
	return cfg, args.Error(1)
}

func (m *MockAlertConfigRepository) UpsertAlertConfig(ctx context.Context, cfg domain.AlertConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock notify.Publisher ---

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishFundMovement(ctx context.Context, msg notify.FundMovementMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
