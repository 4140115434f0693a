package services

import (
	portsrepo "github.com/lunnorapp/lunnor_caixa/internal/core/ports/repositories"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/export"
	"github.com/lunnorapp/lunnor_caixa/internal/notify"
)

// NewServiceContainer wires every service over the repository provider.
// publisher may be a notify.NopPublisher when no broker is configured and
// sheets may be nil when no spreadsheet is configured.
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher notify.Publisher, sheets export.SheetAppender) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Goal:        NewGoalService(repos.GoalRepo, repos.TransactionRepo),
		PeaceFund:   NewPeaceFundService(repos.PeaceFundRepo, repos.NotificationRepo, repos.UserRepo, publisher),
		Alert: NewAlertService(
			repos.AlertConfigRepo,
			repos.TransactionRepo,
			repos.GoalRepo,
			repos.PeaceFundRepo,
		),
		Notification: NewNotificationService(repos.NotificationRepo),
		Export:       NewExportService(repos.TransactionRepo, sheets),
	}
}
