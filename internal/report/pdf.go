// Package report renders the printable expense report.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"expensetracker/internal/core"
)

// Point units; the page is US Letter.
const inch = 72.0

const (
	titleText            = "Expense Tracker Report"
	summaryTitle         = "Financial Summary"
	expenseCategoryTitle = "Top Expense Categories"
	transactionsTitle    = "Recent Transactions"

	topCategoryCount = 5
	recentCount      = 10
	descriptionMax   = 20
)

// Filename returns the attachment name for a report generated at t.
func Filename(t time.Time) string {
	return "expense_report_" + t.Format("20060102") + ".pdf"
}

// Renderer lays out the report document. Stateless and safe for concurrent use.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the complete PDF for the given transaction set and its
// derived aggregates. On any layout error no bytes are returned.
func (r *Renderer) Render(items []core.Transaction, summary core.Summary, analytics core.Analytics) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(inch, inch, inch)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, titleText, "", 1, "C", false, 0, "")
	pdf.Ln(0.3 * inch)

	r.sectionHeader(pdf, summaryTitle)
	r.summaryTable(pdf, summary)
	pdf.Ln(0.3 * inch)

	if len(analytics.ExpenseByCategory) > 0 {
		r.sectionHeader(pdf, expenseCategoryTitle)
		r.categoryTable(pdf, analytics.ExpenseByCategory)
		pdf.Ln(0.3 * inch)
	}

	r.sectionHeader(pdf, transactionsTitle)
	r.transactionTable(pdf, items)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 18, title, "", 1, "L", false, 0, "")
	pdf.Ln(0.1 * inch)
}

func (r *Renderer) summaryTable(pdf *fpdf.Fpdf, summary core.Summary) {
	rows := [][2]string{
		{"Total Income", currency(summary.TotalIncome)},
		{"Total Expenses", currency(summary.TotalExpense)},
		{"Net Balance", currency(summary.NetBalance)},
		{"Total Transactions", strconv.Itoa(summary.TransactionCount)},
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(173, 216, 230)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(3*inch, 24, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(2*inch, 24, row[1], "1", 1, "L", true, 0, "")
	}
}

func (r *Renderer) categoryTable(pdf *fpdf.Fpdf, breakdowns []core.CategoryBreakdown) {
	top := make([]core.CategoryBreakdown, len(breakdowns))
	copy(top, breakdowns)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Amount > top[j].Amount })
	if len(top) > topCategoryCount {
		top = top[:topCategoryCount]
	}

	widths := []float64{2 * inch, 1.5 * inch, 1.5 * inch}
	rows := make([][]string, 0, len(top))
	for _, b := range top {
		rows = append(rows, []string{b.Category, currency(b.Amount), percentage(b.Percentage)})
	}
	r.table(pdf, widths, []string{"Category", "Amount", "Percentage"}, rows, 10)
}

func (r *Renderer) transactionTable(pdf *fpdf.Fpdf, items []core.Transaction) {
	recent := make([]core.Transaction, len(items))
	copy(recent, items)
	core.SortByDateDesc(recent)
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}

	widths := []float64{1.2 * inch, 1.2 * inch, 1.8 * inch, 1 * inch, 1 * inch}
	rows := make([][]string, 0, len(recent))
	for _, t := range recent {
		rows = append(rows, []string{
			t.Date,
			t.Category,
			truncate(t.Description, descriptionMax),
			currency(t.Amount),
			t.Type.Capitalized(),
		})
	}
	r.table(pdf, widths, []string{"Date", "Category", "Description", "Amount", "Type"}, rows, 8)
}

// table draws a bordered grid: grey header with white text, beige body.
func (r *Renderer) table(pdf *fpdf.Fpdf, widths []float64, header []string, rows [][]string, bodySize float64) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for i, h := range header {
		ln := 0
		if i == len(header)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 22, h, "1", ln, "C", true, 0, "")
	}

	pdf.SetFont("Helvetica", "", bodySize)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			ln := 0
			if i == len(row)-1 {
				ln = 1
			}
			pdf.CellFormat(widths[i], 18, cell, "1", ln, "C", true, 0, "")
		}
	}
}

func currency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func percentage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
