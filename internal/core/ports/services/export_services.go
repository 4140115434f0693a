package services

import (
	"context"
	"io"

	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
)

// ExportSvcFacade produces tabular exports of a user's filtered
// transactions.
type ExportSvcFacade interface {
	// WriteCSV streams the export table as CSV.
	WriteCSV(ctx context.Context, userID string, filter finance.Filter, w io.Writer) error

	// AppendToSheet appends the export table to the configured Google
	// Sheet and returns the number of data rows written. Returns
	// apperrors.ErrSheetsNotConfigured when no sheet is configured.
	AppendToSheet(ctx context.Context, userID string, filter finance.Filter) (int, error)
}
