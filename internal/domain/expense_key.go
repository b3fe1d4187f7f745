package domain

import (
	"strconv"
	"strings"
)

// ExpenseKeyKind selects which representation of an identifier a store
// lookup matches against
type ExpenseKeyKind string

const (
	ExpenseKeyNumeric ExpenseKeyKind = "numeric"
	ExpenseKeyText    ExpenseKeyKind = "text"
)

// ExpenseKey is one representation of an expense identifier
type ExpenseKey struct {
	Kind    ExpenseKeyKind
	Numeric int64
	Text    string
}

func (k ExpenseKey) String() string {
	if k.Kind == ExpenseKeyNumeric {
		return strconv.FormatInt(k.Numeric, 10)
	}
	return k.Text
}

// KeyAttempts returns the ordered representations to try when matching an
// expense id: the numeric key first when the id is an integer, then the text
// key. At most two attempts are ever returned.
func KeyAttempts(id string) ([]ExpenseKey, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidExpenseID
	}

	text := ExpenseKey{Kind: ExpenseKeyText, Text: id}

	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return []ExpenseKey{text}, nil
	}

	return []ExpenseKey{{Kind: ExpenseKeyNumeric, Numeric: n}, text}, nil
}
