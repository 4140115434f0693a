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

type PgxTransactionRepository struct {
	BaseRepository
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}, db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, user_id, amount, date, description, category, type, payment_method, contact,
	recurrence_frequency, recurrence_interval, recurrence_start_date, recurrence_end_date, recurrence_parent_id,
	created_at, created_by, last_updated_at, last_updated_by
`

func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Date:          d.Date,
		Description:   d.Description,
		Category:      d.Category,
		Type:          string(d.Type),
		PaymentMethod: d.PaymentMethod,
		Contact:       d.Contact,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Recurrence != nil {
		freq := string(d.Recurrence.Frequency)
		interval := d.Recurrence.Interval
		start := d.Recurrence.StartDate
		m.RecurrenceFrequency = &freq
		m.RecurrenceInterval = &interval
		m.RecurrenceStartDate = &start
		m.RecurrenceEndDate = d.Recurrence.EndDate
		m.RecurrenceParentID = d.Recurrence.ParentTransactionID
	}
	return m
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Date:          m.Date,
		Description:   m.Description,
		Category:      m.Category,
		Type:          domain.TransactionType(m.Type),
		PaymentMethod: m.PaymentMethod,
		Contact:       m.Contact,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.RecurrenceFrequency != nil && m.RecurrenceInterval != nil && m.RecurrenceStartDate != nil {
		d.Recurrence = &domain.Recurrence{
			Frequency:           domain.RecurrenceFrequency(*m.RecurrenceFrequency),
			Interval:            *m.RecurrenceInterval,
			StartDate:           *m.RecurrenceStartDate,
			EndDate:             m.RecurrenceEndDate,
			ParentTransactionID: m.RecurrenceParentID,
		}
	}
	return d
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Amount,
		&m.Date,
		&m.Description,
		&m.Category,
		&m.Type,
		&m.PaymentMethod,
		&m.Contact,
		&m.RecurrenceFrequency,
		&m.RecurrenceInterval,
		&m.RecurrenceStartDate,
		&m.RecurrenceEndDate,
		&m.RecurrenceParentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID, m.UserID, m.Amount, m.Date, m.Description, m.Category, m.Type, m.PaymentMethod, m.Contact,
		m.RecurrenceFrequency, m.RecurrenceInterval, m.RecurrenceStartDate, m.RecurrenceEndDate, m.RecurrenceParentID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, created_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListTransactionsByUserPaged(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        UPDATE transactions SET
            amount = $2, date = $3, description = $4, category = $5, type = $6,
            payment_method = $7, contact = $8,
            recurrence_frequency = $9, recurrence_interval = $10, recurrence_start_date = $11,
            recurrence_end_date = $12, recurrence_parent_id = $13,
            last_updated_at = $14, last_updated_by = $15
        WHERE transaction_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.TransactionID, m.Amount, m.Date, m.Description, m.Category, m.Type,
		m.PaymentMethod, m.Contact,
		m.RecurrenceFrequency, m.RecurrenceInterval, m.RecurrenceStartDate,
		m.RecurrenceEndDate, m.RecurrenceParentID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes the row and, when it is the parent of a
// recurrence, its generated occurrences, in one database transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE recurrence_parent_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to delete recurrence occurrences: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}
