package cashbuddy

import (
	"slices"
	"strings"
)

// editEpsilon is the amount difference below which an edit leaves the amount unchanged.
var editEpsilon = A(0.001)

// Ledger is an ordered list of expenses and a budget.
//
// Expenses are addressed by their 1-based position. The total spent and the
// remaining balance are never stored: they are recomputed from the expenses
// each time they are asked for.
type Ledger struct {
	expenses []Expense
	budget   Amount
}

// NewLedger creates an empty ledger with a zero budget.
func NewLedger() *Ledger {
	return &Ledger{expenses: make([]Expense, 0)}
}

// Summary is the budget situation of a ledger at a point in time.
type Summary struct {
	Budget    Amount
	Total     Amount // sum of the marked expenses
	Remaining Amount // Budget - Total
}

// Snapshot is a copy of the full ledger state.
type Snapshot struct {
	Summary
	Expenses []Expense
}

// Len returns the number of expenses.
func (l *Ledger) Len() int { return len(l.expenses) }

// Budget returns the current budget.
func (l *Ledger) Budget() Amount { return l.budget }

// SetBudget replaces the budget.
func (l *Ledger) SetBudget(budget Amount) error {
	budget, err := checkBudget(budget)
	if err != nil {
		return err
	}
	l.budget = budget
	return nil
}

// checkBudget rejects negative budgets and budgets out of the amount range.
// A budget below a cent is zero.
func checkBudget(budget Amount) (Amount, error) {
	if budget.IsNegative() {
		return Amount{}, &Error{Kind: ErrNegativeBudget, Input: budget.literal()}
	}
	b, err := bounded(budget.Decimal())
	if err != nil {
		return Amount{}, &Error{Kind: err, Field: "Budget", Input: budget.literal()}
	}
	return b, nil
}

// Total returns the sum of the marked expenses.
func (l *Ledger) Total() Amount {
	var total Amount
	for _, e := range l.expenses {
		if e.marked {
			total = total.Add(e.amount)
		}
	}
	return total
}

// Remaining returns the budget minus the total of marked expenses.
func (l *Ledger) Remaining() Amount { return l.budget.Sub(l.Total()) }

// Summary returns the current budget, total and remaining balance.
func (l *Ledger) Summary() Summary {
	total := l.Total()
	return Summary{
		Budget:    l.budget,
		Total:     total,
		Remaining: l.budget.Sub(total),
	}
}

// Expenses returns a copy of the expenses in order.
func (l *Ledger) Expenses() []Expense { return slices.Clone(l.expenses) }

// Snapshot returns a copy of the full ledger state.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{Summary: l.Summary(), Expenses: l.Expenses()}
}

// Restore replaces the whole ledger state, typically with data loaded from a store.
func (l *Ledger) Restore(budget Amount, expenses []Expense) error {
	budget, err := checkBudget(budget)
	if err != nil {
		return err
	}
	l.budget = budget
	l.expenses = slices.Clone(expenses)
	if l.expenses == nil {
		l.expenses = make([]Expense, 0)
	}
	return nil
}

// Add appends an expense and returns its 1-based position.
func (l *Ledger) Add(e Expense) int {
	l.expenses = append(l.expenses, e)
	return len(l.expenses)
}

// Get returns the expense at a 1-based index.
func (l *Ledger) Get(index int) (Expense, error) {
	if err := l.check(index); err != nil {
		return Expense{}, err
	}
	return l.expenses[index-1], nil
}

// Replace stores e at a 1-based index in place of the current expense.
func (l *Ledger) Replace(index int, e Expense) error {
	if err := l.check(index); err != nil {
		return err
	}
	l.expenses[index-1] = e
	return nil
}

// Delete removes and returns the expense at a 1-based index.
func (l *Ledger) Delete(index int) (Expense, error) {
	if err := l.check(index); err != nil {
		return Expense{}, err
	}
	removed := l.expenses[index-1]
	l.expenses = slices.Delete(l.expenses, index-1, index)
	return removed, nil
}

// Mark flags the expense at a 1-based index as counting toward the total.
// Marking a marked expense is a no-op.
func (l *Ledger) Mark(index int) (Expense, error) {
	if err := l.check(index); err != nil {
		return Expense{}, err
	}
	l.expenses[index-1].marked = true
	return l.expenses[index-1], nil
}

// Unmark clears the marked flag of the expense at a 1-based index.
// Unmarking an unmarked expense is a no-op.
func (l *Ledger) Unmark(index int) (Expense, error) {
	if err := l.check(index); err != nil {
		return Expense{}, err
	}
	l.expenses[index-1].marked = false
	return l.expenses[index-1], nil
}

// EditOutcome describes an applied edit.
type EditOutcome struct {
	Index  int
	Before Expense
	After  Expense
	// Unchanged is true when every merged field equals the original one
	// (amounts within 0.001).
	Unchanged bool
	// AmountChanged is true when the amount moved by at least 0.001.
	AmountChanged bool
}

// Edit replaces the expense at a 1-based index with a new expense built from
// the requested fields, keeping the current value of every unset field.
// The marked flag of the original expense carries over to the new one.
func (l *Ledger) Edit(index int, req EditRequest) (EditOutcome, error) {
	original, err := l.Get(index)
	if err != nil {
		return EditOutcome{}, err
	}
	if req.IsEmpty() {
		return EditOutcome{Index: index, Before: original, After: original, Unchanged: true}, nil
	}

	amount := req.Amount.Or(original.amount)
	description := req.Description.Or(original.description)
	category := req.Category.Or(original.category)

	edited := NewExpense(amount, description, category)
	if err := l.Replace(index, edited); err != nil {
		return EditOutcome{}, err
	}
	if original.marked {
		if edited, err = l.Mark(index); err != nil {
			return EditOutcome{}, err
		}
	}

	amountChanged := !edited.amount.NearlyEqual(original.amount, editEpsilon)
	return EditOutcome{
		Index:         index,
		Before:        original,
		After:         edited,
		AmountChanged: amountChanged,
		Unchanged: !amountChanged &&
			edited.description == original.description &&
			edited.category == original.category,
	}, nil
}

// FindQuery selects expenses by category or by description keyword.
// Matching is case insensitive; an empty criterion matches everything.
type FindQuery struct {
	Category    string
	Description string
}

// Match is an expense found by Find with its 1-based index.
type Match struct {
	Index   int
	Expense Expense
}

// Find returns the expenses matching q, in ledger order.
func (l *Ledger) Find(q FindQuery) []Match {
	category := strings.ToLower(q.Category)
	keyword := strings.ToLower(q.Description)
	var matches []Match
	for i, e := range l.expenses {
		if category != "" && !strings.Contains(strings.ToLower(e.category), category) {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(e.description), keyword) {
			continue
		}
		matches = append(matches, Match{Index: i + 1, Expense: e})
	}
	return matches
}

// check enforces the index contract: an empty ledger first, then the range.
func (l *Ledger) check(index int) error {
	if index < 1 || index > len(l.expenses) {
		return indexError(index, len(l.expenses))
	}
	return nil
}
