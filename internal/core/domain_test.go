package core

import (
	"testing"
)

func TestTransactionInputValidate(t *testing.T) {
	good := TransactionInput{
		Date:        "2024-01-01",
		Category:    "Food",
		Description: "groceries",
		Amount:      50,
		Type:        Expense,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Zero amounts are allowed; only negatives are rejected.
	zero := good
	zero.Amount = 0
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero amount should be valid, got %v", err)
	}

	bads := []struct {
		name string
		in   TransactionInput
		want error
	}{
		{"bad date format", TransactionInput{Date: "01/02/2024", Category: "Food", Amount: 1, Type: Expense}, ErrInvalidDate},
		{"empty date", TransactionInput{Date: "", Category: "Food", Amount: 1, Type: Expense}, ErrInvalidDate},
		{"not zero-padded", TransactionInput{Date: "2024-1-2", Category: "Food", Amount: 1, Type: Expense}, ErrInvalidDate},
		{"empty category", TransactionInput{Date: "2024-01-01", Category: "  ", Amount: 1, Type: Expense}, ErrEmptyCategory},
		{"negative amount", TransactionInput{Date: "2024-01-01", Category: "Food", Amount: -1, Type: Expense}, ErrNegativeAmount},
		{"unknown type", TransactionInput{Date: "2024-01-01", Category: "Food", Amount: 1, Type: "transfer"}, ErrInvalidType},
		{"empty type", TransactionInput{Date: "2024-01-01", Category: "Food", Amount: 1, Type: ""}, ErrInvalidType},
	}
	for _, tc := range bads {
		if err := tc.in.Validate(); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestNewTransaction(t *testing.T) {
	in := TransactionInput{
		Date:        "2024-01-03",
		Category:    "Salary",
		Description: "january",
		Amount:      1000,
		Type:        Income,
	}
	tx := NewTransaction(in)
	if tx.ID == "" {
		t.Fatalf("expected generated id")
	}
	if tx.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
	other := NewTransaction(in)
	if other.ID == tx.ID {
		t.Fatalf("ids must be unique, got %s twice", tx.ID)
	}
	if tx.Date != in.Date || tx.Category != in.Category || tx.Description != in.Description ||
		tx.Amount != in.Amount || tx.Type != in.Type {
		t.Fatalf("input fields not carried over: %+v", tx)
	}
}

func TestTransactionTypeCapitalized(t *testing.T) {
	cases := []struct {
		in   TransactionType
		want string
	}{
		{Expense, "Expense"},
		{Income, "Income"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := tc.in.Capitalized(); got != tc.want {
			t.Fatalf("Capitalized(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSortByDateDesc(t *testing.T) {
	items := []Transaction{
		{ID: "a", Date: "2024-01-01"},
		{ID: "b", Date: "2024-03-15"},
		{ID: "c", Date: "2024-02-10"},
		{ID: "d", Date: "2024-03-15"},
	}
	SortByDateDesc(items)
	got := []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID}
	want := []string{"b", "d", "c", "a"} // stable: b before d on equal dates
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}
