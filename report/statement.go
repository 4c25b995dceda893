package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/easybank/easybank-backend/internal/transactions"
)

var statementTmpl = template.Must(template.New("statement").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Account Statement</title></head>
<body>
<h1>EasyBank Account Statement</h1>
<p>{{.Name}} &lt;{{.Email}}&gt; &mdash; generated {{.GeneratedAt}}</p>
<h2>Summary</h2>
<table>
<tr><td>Current balance</td><td>{{.CurrentBalance}}</td></tr>
<tr><td>Total credits</td><td>{{.TotalCredits}}</td></tr>
<tr><td>Total debits</td><td>{{.TotalDebits}}</td></tr>
<tr><td>Transactions</td><td>{{.TransactionCount}}</td></tr>
</table>
<h2>Recent transactions</h2>
<table border="1" cellspacing="0" cellpadding="4">
<tr><th>Date</th><th>Summary</th><th>Type</th><th>Amount</th><th>Balance</th></tr>
{{range .Rows}}<tr><td>{{.Date}}</td><td>{{.Summary}}</td><td>{{.Type}}</td><td>{{.Amount}}</td><td>{{.Balance}}</td></tr>
{{end}}</table>
</body>
</html>`))

type statementRow struct {
	Date    string
	Summary string
	Type    string
	Amount  string
	Balance string
}

type statementData struct {
	Name             string
	Email            string
	GeneratedAt      string
	CurrentBalance   string
	TotalCredits     string
	TotalDebits      string
	TransactionCount int64
	Rows             []statementRow
}

// StatementHTML renders the statement document for a user's transaction
// page. Amounts are locale-formatted with a thousands separator.
func StatementHTML(name, email string, page transactions.Page, now time.Time) (string, error) {
	printer := message.NewPrinter(language.English)
	amount := func(v float64) string {
		return printer.Sprintf("%.2f", v)
	}

	data := statementData{
		Name:             name,
		Email:            email,
		GeneratedAt:      now.Format("2006-01-02 15:04 MST"),
		CurrentBalance:   amount(page.Summary.CurrentBalance),
		TotalCredits:     amount(page.Summary.TotalCredits),
		TotalDebits:      amount(page.Summary.TotalDebits),
		TransactionCount: page.Summary.TransactionCount,
	}
	for _, t := range page.Items {
		data.Rows = append(data.Rows, statementRow{
			Date:    t.Date.Format("2006-01-02"),
			Summary: t.Summary,
			Type:    string(t.Type),
			Amount:  amount(t.Amount),
			Balance: amount(t.ClosingBalance),
		})
	}

	var buf strings.Builder
	if err := statementTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("report: render statement: %w", err)
	}
	return buf.String(), nil
}
