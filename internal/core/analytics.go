package core

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputeAnalytics groups transactions by category per type and derives each
// category's share of the type's total.
//
// Routing is deliberately permissive: anything that is not an expense counts
// as income, so records stored with legacy type values keep aggregating the
// way they always did. Creation rejects such values at the boundary.
func ComputeAnalytics(items []Transaction) Analytics {
	expense := newCategoryTotals()
	income := newCategoryTotals()
	for _, t := range items {
		if t.Type == Expense {
			expense.add(t.Category, t.Amount)
		} else {
			income.add(t.Category, t.Amount)
		}
	}
	return Analytics{
		ExpenseByCategory: expense.breakdowns(),
		IncomeByCategory:  income.breakdowns(),
	}
}

// categoryTotals accumulates per-category sums while remembering the order
// categories were first seen, which fixes the output order.
type categoryTotals struct {
	order []string
	sums  map[string]decimal.Decimal
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{sums: make(map[string]decimal.Decimal)}
}

func (c *categoryTotals) add(category string, amount float64) {
	if _, ok := c.sums[category]; !ok {
		c.order = append(c.order, category)
	}
	c.sums[category] = c.sums[category].Add(decimal.NewFromFloat(amount))
}

func (c *categoryTotals) breakdowns() []CategoryBreakdown {
	total := decimal.Zero
	for _, s := range c.sums {
		total = total.Add(s)
	}
	out := make([]CategoryBreakdown, 0, len(c.order))
	for _, category := range c.order {
		amount := c.sums[category]
		var percentage float64
		if total.IsPositive() {
			percentage = amount.Div(total).Mul(hundred).Round(2).InexactFloat64()
		}
		out = append(out, CategoryBreakdown{
			Category:   category,
			Amount:     amount.InexactFloat64(),
			Percentage: percentage,
		})
	}
	return out
}
