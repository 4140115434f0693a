package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	portsrepo "github.com/lunnorapp/lunnor_caixa/internal/core/ports/repositories"
	"github.com/lunnorapp/lunnor_caixa/internal/models"
)

type PgxPeaceFundRepository struct {
	db *pgxpool.Pool
}

func newPgxPeaceFundRepository(db *pgxpool.Pool) portsrepo.PeaceFundRepositoryFacade {
	return &PgxPeaceFundRepository{db: db}
}

var _ portsrepo.PeaceFundRepositoryFacade = (*PgxPeaceFundRepository)(nil)

// FindPeaceFundByUser derives the balance with a SUM over the ledger in
// the same query, so callers never see a stale cached amount.
func (r *PgxPeaceFundRepository) FindPeaceFundByUser(ctx context.Context, userID string) (*domain.PeaceFund, error) {
	query := `
		SELECT f.peace_fund_id, f.user_id, f.target_amount, f.minimum_alert_amount,
		       COALESCE(SUM(CASE WHEN t.type = 'deposit' THEN t.amount ELSE -t.amount END), 0) AS current_amount,
		       f.created_at, f.created_by, f.last_updated_at, f.last_updated_by
		FROM peace_funds f
		LEFT JOIN peace_fund_transactions t ON t.peace_fund_id = f.peace_fund_id
		WHERE f.user_id = $1
		GROUP BY f.peace_fund_id;
	`
	var m models.PeaceFund
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.PeaceFundID,
		&m.UserID,
		&m.TargetAmount,
		&m.MinimumAlertAmount,
		&m.CurrentAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find peace fund: %w", err)
	}

	fund := domain.PeaceFund{
		PeaceFundID:        m.PeaceFundID,
		UserID:             m.UserID,
		TargetAmount:       m.TargetAmount,
		CurrentAmount:      m.CurrentAmount,
		MinimumAlertAmount: m.MinimumAlertAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &fund, nil
}

func (r *PgxPeaceFundRepository) ListPeaceFundTransactions(ctx context.Context, peaceFundID string) ([]domain.PeaceFundTransaction, error) {
	query := `
		SELECT peace_fund_transaction_id, peace_fund_id, user_id, type, amount, description, date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM peace_fund_transactions
		WHERE peace_fund_id = $1
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, peaceFundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query peace fund transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.PeaceFundTransaction{}
	for rows.Next() {
		var m models.PeaceFundTransaction
		err := rows.Scan(
			&m.PeaceFundTransactionID,
			&m.PeaceFundID,
			&m.UserID,
			&m.Type,
			&m.Amount,
			&m.Description,
			&m.Date,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan peace fund transaction row: %w", err)
		}
		txns = append(txns, domain.PeaceFundTransaction{
			PeaceFundTransactionID: m.PeaceFundTransactionID,
			PeaceFundID:            m.PeaceFundID,
			UserID:                 m.UserID,
			Type:                   domain.PeaceFundTransactionType(m.Type),
			Amount:                 m.Amount,
			Description:            m.Description,
			Date:                   m.Date,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate peace fund transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxPeaceFundRepository) SavePeaceFund(ctx context.Context, fund domain.PeaceFund) error {
	query := `
        INSERT INTO peace_funds (peace_fund_id, user_id, target_amount, minimum_alert_amount, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		fund.PeaceFundID, fund.UserID, fund.TargetAmount, fund.MinimumAlertAmount,
		fund.CreatedAt, fund.CreatedBy, fund.LastUpdatedAt, fund.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save peace fund: %w", err)
	}
	return nil
}

func (r *PgxPeaceFundRepository) UpdatePeaceFund(ctx context.Context, fund domain.PeaceFund) error {
	query := `
        UPDATE peace_funds SET
            target_amount = $2, minimum_alert_amount = $3, last_updated_at = $4, last_updated_by = $5
        WHERE peace_fund_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		fund.PeaceFundID, fund.TargetAmount, fund.MinimumAlertAmount,
		fund.LastUpdatedAt, fund.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update peace fund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPeaceFundRepository) SavePeaceFundTransaction(ctx context.Context, txn domain.PeaceFundTransaction) error {
	query := `
        INSERT INTO peace_fund_transactions (peace_fund_transaction_id, peace_fund_id, user_id, type, amount, description, date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		txn.PeaceFundTransactionID, txn.PeaceFundID, txn.UserID, string(txn.Type),
		txn.Amount, txn.Description, txn.Date,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save peace fund transaction: %w", err)
	}
	return nil
}
