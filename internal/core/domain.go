package core

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DateLayout is the only accepted transaction date format. Keeping dates in
// this form makes lexicographic ordering equal to chronological ordering.
const DateLayout = "2006-01-02"

type (
	TransactionType string

	// Transaction is the persisted record of a single income or expense event.
	Transaction struct {
		ID          string          `json:"id" bson:"id"`
		Date        string          `json:"date" bson:"date"`
		Category    string          `json:"category" bson:"category"`
		Description string          `json:"description" bson:"description"`
		Amount      float64         `json:"amount" bson:"amount"`
		Type        TransactionType `json:"type" bson:"type"`
		CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	}

	// TransactionInput is the client-supplied payload for creating a transaction.
	TransactionInput struct {
		Date        string          `json:"date"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Amount      float64         `json:"amount"`
		Type        TransactionType `json:"type"`
	}

	// Summary aggregates the full transaction set. Derived, never stored.
	Summary struct {
		TotalIncome      float64 `json:"total_income"`
		TotalExpense     float64 `json:"total_expense"`
		NetBalance       float64 `json:"net_balance"`
		TransactionCount int     `json:"transaction_count"`
	}

	// CategoryBreakdown is one category's share of a type's total.
	CategoryBreakdown struct {
		Category   string  `json:"category"`
		Amount     float64 `json:"amount"`
		Percentage float64 `json:"percentage"`
	}

	Analytics struct {
		ExpenseByCategory []CategoryBreakdown `json:"expense_by_category"`
		IncomeByCategory  []CategoryBreakdown `json:"income_by_category"`
	}
)

var (
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEmptyCategory  = errors.New("empty category")
	ErrNegativeAmount = errors.New("negative amount")
	ErrInvalidType    = errors.New("type must be income or expense")
)

func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense:
		return true
	}
	return false
}

// Capitalized returns the type with its first letter upper-cased, for display.
func (t TransactionType) Capitalized() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (in TransactionInput) Validate() error {
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return ErrInvalidDate
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrEmptyCategory
	}
	if in.Amount < 0 {
		return ErrNegativeAmount
	}
	if !in.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

// NewTransaction builds a persisted transaction from a validated input,
// assigning the id and creation timestamp server-side.
func NewTransaction(in TransactionInput) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        in.Date,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		CreatedAt:   time.Now().UTC(),
	}
}

// SortByDateDesc orders transactions newest first. Dates are compared as
// strings, which is correct for the enforced YYYY-MM-DD layout.
func SortByDateDesc(items []Transaction) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
}
