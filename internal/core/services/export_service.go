package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	portsrepo "github.com/lunnorapp/lunnor_caixa/internal/core/ports/repositories"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/export"
)

// exportService implements portssvc.ExportSvcFacade. A nil sheets
// appender marks the Sheets target as unconfigured.
type exportService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
	sheets  export.SheetAppender
}

// NewExportService creates the export service. sheets may be nil when no
// spreadsheet is configured.
func NewExportService(txnRepo portsrepo.TransactionReader, sheets export.SheetAppender) portssvc.ExportSvcFacade {
	return &exportService{txnRepo: txnRepo, sheets: sheets}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

func (s *exportService) filtered(ctx context.Context, userID string, filter finance.Filter) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for export: %w", err)
	}
	return finance.FilterTransactions(txns, filter), nil
}

// WriteCSV streams the user's filtered transactions as CSV.
func (s *exportService) WriteCSV(ctx context.Context, userID string, filter finance.Filter, w io.Writer) error {
	txns, err := s.filtered(ctx, userID, filter)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, txns); err != nil {
		s.LogError(ctx, err, "Failed to write CSV export", slog.String("user_id", userID))
		return fmt.Errorf("failed to write csv: %w", err)
	}
	s.LogInfo(ctx, "CSV export written",
		slog.String("user_id", userID), slog.Int("rows", len(txns)))
	return nil
}

// AppendToSheet appends the user's filtered transactions to the
// configured Google Sheet and returns the number of data rows written.
func (s *exportService) AppendToSheet(ctx context.Context, userID string, filter finance.Filter) (int, error) {
	if s.sheets == nil {
		return 0, apperrors.ErrSheetsNotConfigured
	}
	txns, err := s.filtered(ctx, userID, filter)
	if err != nil {
		return 0, err
	}
	if err := s.sheets.AppendRows(ctx, export.Table(txns)); err != nil {
		s.LogError(ctx, err, "Failed to append export to spreadsheet", slog.String("user_id", userID))
		return 0, fmt.Errorf("failed to append to spreadsheet: %w", err)
	}
	s.LogInfo(ctx, "Spreadsheet export appended",
		slog.String("user_id", userID), slog.Int("rows", len(txns)))
	return len(txns), nil
}
