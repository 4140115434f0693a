package export

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetAppender appends rows to an external spreadsheet.
type SheetAppender interface {
	// AppendRows appends the given rows after the sheet's existing data.
	AppendRows(ctx context.Context, rows [][]string) error
}

// GoogleSheetAppender appends to a Google Sheet using a service account.
type GoogleSheetAppender struct {
	spreadsheetID string
	sheetRange    string
	credentials   []byte
}

// NewGoogleSheetAppender configures a Sheets target. credentialsJSON is
// the service account key; the range addresses the target tab.
func NewGoogleSheetAppender(spreadsheetID, sheetRange string, credentialsJSON []byte) *GoogleSheetAppender {
	if sheetRange == "" {
		sheetRange = "A1"
	}
	return &GoogleSheetAppender{
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
		credentials:   credentialsJSON,
	}
}

// AppendRows appends the rows after the sheet's existing data.
func (g *GoogleSheetAppender) AppendRows(ctx context.Context, rows [][]string) error {
	creds, err := google.CredentialsFromJSON(ctx, g.credentials, sheets.SpreadsheetsScope)
	if err != nil {
		return fmt.Errorf("failed to parse google credentials: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	_, err = svc.Spreadsheets.Values.
		Append(g.spreadsheetID, g.sheetRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append rows to spreadsheet: %w", err)
	}
	return nil
}
