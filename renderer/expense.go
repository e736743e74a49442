package renderer

import (
	"fmt"
	"slices"

	"github.com/etnz/cashbuddy"
)

// ExpenseLine formats an expense with its 1-based index, for instance
// "1. [X] Lunch - $12.50 (Food)".
func ExpenseLine(index int, e cashbuddy.Expense, currency string) string {
	return fmt.Sprintf("%d. %s", index, expenseText(e, currency))
}

// expenseText formats an expense without its index.
func expenseText(e cashbuddy.Expense, currency string) string {
	mark := " "
	if e.IsMarked() {
		mark = "X"
	}
	return fmt.Sprintf("[%s] %s - %s (%s)", mark, e.Description(), Money(e.Amount(), currency), e.Category())
}

type categoryTotal struct {
	category string
	total    cashbuddy.Amount
}

// categoryTotals sums the marked expenses per category, in order of first appearance.
func categoryTotals(expenses []cashbuddy.Expense) []categoryTotal {
	var totals []categoryTotal
	for _, e := range expenses {
		if !e.IsMarked() {
			continue
		}
		i := slices.IndexFunc(totals, func(t categoryTotal) bool { return t.category == e.Category() })
		if i < 0 {
			totals = append(totals, categoryTotal{category: e.Category()})
			i = len(totals) - 1
		}
		totals[i].total = totals[i].total.Add(e.Amount())
	}
	return totals
}
