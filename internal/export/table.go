// Package export builds the tabular representation of a user's filtered
// transactions and delivers it as CSV or to a Google Sheet.
package export

import (
	"encoding/csv"
	"io"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
)

// Header is the fixed pt-BR export header, shared by the CSV and Sheets
// targets so both produce identical tables.
var Header = []string{"Tipo", "Descrição", "Categoria", "Método de Pagamento", "Valor", "Data", "Contato"}

// Row converts a transaction to its export row. Valor is the signed
// amount with two decimals, Data is dd/MM/yyyy, and an absent contact
// renders as "-".
func Row(txn domain.Transaction) []string {
	tipo := "Receita"
	if txn.Type == domain.Expense {
		tipo = "Despesa"
	}
	contato := txn.Contact
	if contato == "" {
		contato = "-"
	}
	return []string{
		tipo,
		txn.Description,
		txn.Category,
		txn.PaymentMethod,
		txn.SignedAmount().StringFixed(2),
		txn.Date.Format("02/01/2006"),
		contato,
	}
}

// Table builds the full export table, header first.
func Table(txns []domain.Transaction) [][]string {
	rows := make([][]string, 0, len(txns)+1)
	rows = append(rows, Header)
	for _, txn := range txns {
		rows = append(rows, Row(txn))
	}
	return rows
}

// WriteCSV streams the export table as CSV.
func WriteCSV(w io.Writer, txns []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Table(txns)); err != nil {
		return err
	}
	return cw.Error()
}
