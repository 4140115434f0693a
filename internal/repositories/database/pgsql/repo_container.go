package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lunnorapp/lunnor_caixa/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		GoalRepo:         newPgxGoalRepository(dbPool),
		PeaceFundRepo:    newPgxPeaceFundRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		AlertConfigRepo:  newPgxAlertConfigRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
