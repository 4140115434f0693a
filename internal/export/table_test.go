package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/export"
)

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: "t1",
			Amount:        decimal.NewFromFloat(1234.5),
			Date:          time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			Description:   "Salário",
			Category:      "Renda",
			Type:          domain.Income,
			PaymentMethod: "Transferência",
			Contact:       "Empresa X",
		},
		{
			TransactionID: "t2",
			Amount:        decimal.NewFromFloat(89.9),
			Date:          time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC),
			Description:   "Mercado",
			Category:      "Alimentação",
			Type:          domain.Expense,
			PaymentMethod: "Pix",
		},
	}
}

func TestRow(t *testing.T) {
	txns := sampleTransactions()

	income := export.Row(txns[0])
	assert.Equal(t, []string{"Receita", "Salário", "Renda", "Transferência", "1234.50", "15/07/2025", "Empresa X"}, income)

	// Expenses render signed and an empty contact becomes "-".
	expense := export.Row(txns[1])
	assert.Equal(t, []string{"Despesa", "Mercado", "Alimentação", "Pix", "-89.90", "16/07/2025", "-"}, expense)
}

func TestTable_HeaderFirst(t *testing.T) {
	table := export.Table(sampleTransactions())

	require.Len(t, table, 3)
	assert.Equal(t, export.Header, table[0])
	assert.Equal(t, "Receita", table[1][0])
	assert.Equal(t, "Despesa", table[2][0])
}

func TestTable_EmptyStillHasHeader(t *testing.T) {
	table := export.Table(nil)

	require.Len(t, table, 1)
	assert.Equal(t, export.Header, table[0])
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleTransactions()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, export.Header, records[0])
	assert.Equal(t, "-89.90", records[2][4])
}
