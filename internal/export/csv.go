// Package export renders expense lists as downloadable files.
package export

import (
	"bytes"
	"strings"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/util"
)

// Columns is the header row shared by every export format
var Columns = []string{"User", "Date", "Category", "Amount (INR)", "Description"}

const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// CSV renders expenses as comma-separated text, one row per expense in input
// order. The user and description columns are always quoted; the other
// columns are quoted only when they hold a comma, quote or line break.
func CSV(userName string, expenses []*domain.Expense) []byte {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(Columns, ","))
	buf.WriteString("\n")

	for _, e := range expenses {
		if e == nil {
			continue
		}
		fields := []string{
			quote(userName),
			escape(util.FormatExportDate(e.Date)),
			escape(e.Category),
			escape(e.Amount.String()),
			quote(e.Description),
		}
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func escape(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}
	return s
}
