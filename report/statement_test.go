package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-backend/internal/shared"
	"github.com/easybank/easybank-backend/internal/transactions"
)

func TestStatementHTML(t *testing.T) {
	page := transactions.Page{
		Items: []transactions.Transaction{
			{
				ID:             "t1",
				Date:           time.Date(2026, 8, 4, 10, 0, 0, 0, time.UTC),
				Summary:        "Salary",
				Type:           transactions.TypeDeposit,
				Amount:         1500,
				ClosingBalance: 35905,
			},
		},
		Pagination: shared.NewPagination(1, 50, 1),
		Summary: transactions.BalanceSummary{
			CurrentBalance:   35905,
			TotalCredits:     1500,
			TotalDebits:      0,
			TransactionCount: 1,
		},
	}

	html, err := StatementHTML("Happy Smith", "happy@example.com", page, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, html, "Happy Smith")
	assert.Contains(t, html, "happy@example.com")
	assert.Contains(t, html, "Salary")
	assert.Contains(t, html, "35,905.00", "amounts use a thousands separator")
	assert.Contains(t, html, "1,500.00")
	assert.Contains(t, html, "2026-08-04")
}

func TestStatementHTMLEscapesContent(t *testing.T) {
	page := transactions.Page{
		Items: []transactions.Transaction{
			{Summary: "<script>alert(1)</script>", Type: transactions.TypeWithdrawal},
		},
	}

	html, err := StatementHTML("Happy", "happy@example.com", page, time.Now())
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>alert(1)</script>"))
}
