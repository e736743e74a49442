// Package renderer turns cashbuddy results and failures into markdown.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cashbuddy"
)

// Options holds the display settings.
type Options struct {
	Currency string // ISO 4217 code used to format amounts
	BarWidth int    // number of cells of the budget progress bar
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{Currency: "USD", BarWidth: 20}
}

// Render returns the markdown report of a command result.
func Render(res cashbuddy.Result, opts Options) string {
	r := newLedgerRenderer(opts)
	switch v := res.(type) {
	case *cashbuddy.Added:
		r.Printf("New expense added:\n\n")
		r.expense(v.Index, v.Expense)
	case *cashbuddy.Edited:
		r.edited(v)
	case *cashbuddy.Deleted:
		r.Printf("Deleted expense:\n\n")
		r.expense(v.Index, v.Expense)
		if v.Expense.IsMarked() {
			r.progress(v.Summary)
		}
	case *cashbuddy.Marked:
		if v.WasMarked {
			r.Printf("Expense %d is already marked as paid:\n\n", v.Index)
		} else {
			r.Printf("Marked expense as paid:\n\n")
		}
		r.expense(v.Index, v.Expense)
		if !v.WasMarked {
			r.progress(v.Summary)
		}
	case *cashbuddy.Unmarked:
		if v.WasMarked {
			r.Printf("Marked expense as unpaid:\n\n")
		} else {
			r.Printf("Expense %d is not marked:\n\n", v.Index)
		}
		r.expense(v.Index, v.Expense)
		if v.WasMarked {
			r.progress(v.Summary)
		}
	case *cashbuddy.BudgetSet:
		r.Printf("Your total budget is now %s.\n", r.money(v.Summary.Budget))
		r.progress(v.Summary)
	case *cashbuddy.Listed:
		r.list(v.Snapshot)
	case *cashbuddy.Found:
		r.found(v)
	case *cashbuddy.Help:
		r.help(v.Topic)
	case *cashbuddy.Bye:
		r.Printf("Bye. Hope to see you again soon!\n")
	default:
		r.Printf("%v\n", res)
	}
	return r.String()
}

// ledgerRenderer accumulates the markdown of a single report.
type ledgerRenderer struct {
	*strings.Builder
	opts Options
}

func newLedgerRenderer(opts Options) *ledgerRenderer {
	def := DefaultOptions()
	if opts.Currency == "" {
		opts.Currency = def.Currency
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = def.BarWidth
	}
	return &ledgerRenderer{Builder: &strings.Builder{}, opts: opts}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *ledgerRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *ledgerRenderer) money(a cashbuddy.Amount) string {
	return Money(a, r.opts.Currency)
}

// expense prints a single numbered expense line.
func (r *ledgerRenderer) expense(index int, e cashbuddy.Expense) {
	r.Printf("%s\n", ExpenseLine(index, e, r.opts.Currency))
}

func (r *ledgerRenderer) edited(v *cashbuddy.Edited) {
	if v.Unchanged {
		r.Printf("No changes were made to expense %d:\n\n", v.Index)
		r.expense(v.Index, v.After)
		return
	}
	r.Printf("Edited expense %d:\n\n", v.Index)
	r.Printf("- Before: %s\n", expenseText(v.Before, r.opts.Currency))
	r.Printf("- After: %s\n", expenseText(v.After, r.opts.Currency))
	if v.After.IsMarked() && v.AmountChanged {
		r.progress(v.Summary)
	}
}

// summary prints the financial summary.
func (r *ledgerRenderer) summary(s cashbuddy.Summary) {
	r.Printf("- Total Budget: %s\n", r.money(s.Budget))
	r.Printf("- Total Spent: %s\n", r.money(s.Total))
	r.Printf("- Remaining Balance: %s\n", r.money(s.Remaining))
}

// progress prints how much of the budget the marked expenses consume.
func (r *ledgerRenderer) progress(s cashbuddy.Summary) {
	r.Printf("\n")
	if s.Budget.IsZero() {
		r.Printf("No budget set. Use `setbudget a/AMOUNT` to track your spending.\n")
		return
	}
	ratio := s.Total.Ratio(s.Budget)
	r.Printf("Budget used: `%s` %.2f%%\n", ProgressBar(ratio, r.opts.BarWidth), ratio*100)
	if s.Remaining.IsNegative() {
		r.Printf("\n**You are over budget by %s.**\n", r.money(s.Remaining.Neg()))
	}
}

func (r *ledgerRenderer) list(s cashbuddy.Snapshot) {
	r.Printf("## Financial Summary\n\n")
	r.summary(s.Summary)
	r.progress(s.Summary)

	r.Printf("\n## Expenses\n\n")
	if len(s.Expenses) == 0 {
		r.Printf("No expenses added so far.\n")
		return
	}
	for i, e := range s.Expenses {
		r.expense(i+1, e)
	}

	Section(r, "Spent by Category", func(w io.Writer) bool {
		totals := categoryTotals(s.Expenses)
		if len(totals) == 0 {
			return false
		}
		rows := make([][]string, 0, len(totals))
		for _, t := range totals {
			rows = append(rows, []string{t.category, r.money(t.total)})
		}
		Table(w, []string{"Category", "Spent"}, rows)
		return true
	})
}

func (r *ledgerRenderer) found(v *cashbuddy.Found) {
	criterion := "category"
	value := v.Query.Category
	if value == "" {
		criterion = "description"
		value = v.Query.Description
	}
	if len(v.Matches) == 0 {
		r.Printf("No expenses found matching %s: %s\n", criterion, value)
		return
	}
	r.Printf("Found %d expense(s) matching %s: %s\n\n", len(v.Matches), criterion, value)
	for _, m := range v.Matches {
		r.expense(m.Index, m.Expense)
	}
}
