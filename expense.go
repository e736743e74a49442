package cashbuddy

// Expense is a single ledger entry.
//
// An Expense is immutable except for its marked flag, which only the Ledger
// changes. A marked expense counts toward the total spent.
type Expense struct {
	amount      Amount
	description string
	category    string
	marked      bool
}

// NewExpense creates an unmarked expense. The amount is truncated to cents.
//
// NewExpense does not validate its arguments; use the Parse* functions on
// user input first.
func NewExpense(amount Amount, description, category string) Expense {
	return Expense{
		amount:      amount.Truncate(2),
		description: description,
		category:    category,
	}
}

// RestoreExpense validates stored expense fields as if they were user input
// and rebuilds the expense, marked flag included. An empty category is the
// DefaultCategory.
func RestoreExpense(amount Amount, description, category string, marked bool) (Expense, error) {
	const command = "load"
	a, err := checkAmount(amount.Decimal(), amount.literal(), command)
	if err != nil {
		return Expense{}, err
	}
	d, err := ParseDescription(description, command)
	if err != nil {
		return Expense{}, err
	}
	c, err := ParseCategory(category, category != "", command)
	if err != nil {
		return Expense{}, err
	}
	e := NewExpense(a, d, c)
	e.marked = marked
	return e, nil
}

func (e Expense) Amount() Amount      { return e.amount }
func (e Expense) Description() string { return e.description }
func (e Expense) Category() string    { return e.category }
func (e Expense) IsMarked() bool      { return e.marked }

// MarshalJSON implements the json.Marshaler interface with a stable key order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", e.amount)
	w.Append("description", e.description)
	w.Append("category", e.category)
	w.Optional("marked", e.marked)
	return w.MarshalJSON()
}
