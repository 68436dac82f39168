package core

import "github.com/shopspring/decimal"

// ComputeSummary reduces the full transaction set into per-type totals.
//
// Sums run on decimals so that NetBalance is exactly TotalIncome minus
// TotalExpense regardless of how the float amounts were entered. Only the two
// known types contribute to the totals; the count covers every record.
func ComputeSummary(items []Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range items {
		switch t.Type {
		case Income:
			income = income.Add(decimal.NewFromFloat(t.Amount))
		case Expense:
			expense = expense.Add(decimal.NewFromFloat(t.Amount))
		}
	}
	return Summary{
		TotalIncome:      income.InexactFloat64(),
		TotalExpense:     expense.InexactFloat64(),
		NetBalance:       income.Sub(expense).InexactFloat64(),
		TransactionCount: len(items),
	}
}
