package core

import "testing"

func TestComputeSummaryEmpty(t *testing.T) {
	s := ComputeSummary(nil)
	if s.TotalIncome != 0 || s.TotalExpense != 0 || s.NetBalance != 0 || s.TransactionCount != 0 {
		t.Fatalf("expected all zeros, got %+v", s)
	}
}

func TestComputeSummaryExample(t *testing.T) {
	items := []Transaction{
		{Date: "2024-01-01", Category: "Food", Amount: 50, Type: Expense},
		{Date: "2024-01-02", Category: "Food", Amount: 50, Type: Expense},
		{Date: "2024-01-03", Category: "Salary", Amount: 1000, Type: Income},
	}
	s := ComputeSummary(items)
	if s.TotalIncome != 1000 {
		t.Fatalf("total income = %v, want 1000", s.TotalIncome)
	}
	if s.TotalExpense != 100 {
		t.Fatalf("total expense = %v, want 100", s.TotalExpense)
	}
	if s.NetBalance != 900 {
		t.Fatalf("net balance = %v, want 900", s.NetBalance)
	}
	if s.TransactionCount != 3 {
		t.Fatalf("count = %d, want 3", s.TransactionCount)
	}
}

func TestComputeSummaryNetBalanceExact(t *testing.T) {
	// Decimal fractions that do not add up cleanly in binary floats.
	items := []Transaction{
		{Amount: 0.1, Type: Income},
		{Amount: 0.2, Type: Income},
		{Amount: 0.1, Type: Expense},
		{Amount: 0.1, Type: Expense},
	}
	s := ComputeSummary(items)
	if s.TotalIncome != 0.3 {
		t.Fatalf("total income = %v, want 0.3", s.TotalIncome)
	}
	if s.TotalExpense != 0.2 {
		t.Fatalf("total expense = %v, want 0.2", s.TotalExpense)
	}
	if s.NetBalance != 0.1 {
		t.Fatalf("net balance = %v, want 0.1", s.NetBalance)
	}
}

func TestComputeSummaryUnknownTypeCountsOnlyInTotalCount(t *testing.T) {
	items := []Transaction{
		{Amount: 10, Type: Income},
		{Amount: 4, Type: Expense},
		{Amount: 99, Type: "transfer"},
	}
	s := ComputeSummary(items)
	if s.TotalIncome != 10 || s.TotalExpense != 4 {
		t.Fatalf("unknown type leaked into totals: %+v", s)
	}
	if s.TransactionCount != 3 {
		t.Fatalf("count = %d, want 3", s.TransactionCount)
	}
}
