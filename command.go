package cashbuddy

// Command is a validated request against a ledger.
//
// Execute either fully applies the command or leaves the ledger untouched.
type Command interface {
	// Name returns the command word.
	Name() string
	Execute(l *Ledger) (Result, error)
}

// Result is the plain outcome of a command, handed to the display layer.
type Result interface {
	// Modified reports whether the ledger changed and needs saving.
	Modified() bool
	// Exit reports whether the interpreter should stop.
	Exit() bool
}

// Command words.
const (
	CmdAdd       = "add"
	CmdEdit      = "edit"
	CmdDelete    = "delete"
	CmdMark      = "mark"
	CmdUnmark    = "unmark"
	CmdSetBudget = "setbudget"
	CmdList      = "list"
	CmdFind      = "find"
	CmdHelp      = "help"
	CmdBye       = "bye"
)

// Commands lists every command word in help order.
var Commands = []string{CmdAdd, CmdEdit, CmdDelete, CmdMark, CmdUnmark, CmdSetBudget, CmdList, CmdFind, CmdHelp, CmdBye}

// result is embedded in every Result to provide the defaults.
type result struct{}

func (result) Modified() bool { return false }
func (result) Exit() bool     { return false }

// modified is embedded in results of commands that change the ledger.
type modified struct{ result }

func (modified) Modified() bool { return true }

// AddCommand appends a new expense.
type AddCommand struct {
	Amount      Amount
	Description string
	Category    string
}

// Added is the result of AddCommand.
type Added struct {
	modified
	Index   int
	Expense Expense
	Summary Summary
}

func (*AddCommand) Name() string { return CmdAdd }
func (c *AddCommand) Execute(l *Ledger) (Result, error) {
	e := NewExpense(c.Amount, c.Description, c.Category)
	index := l.Add(e)
	return &Added{Index: index, Expense: e, Summary: l.Summary()}, nil
}

// EditCommand replaces some fields of an expense.
type EditCommand struct {
	Index int
	EditRequest
}

// Edited is the result of EditCommand.
type Edited struct {
	modified
	EditOutcome
	Summary Summary
}

func (*EditCommand) Name() string { return CmdEdit }
func (c *EditCommand) Execute(l *Ledger) (Result, error) {
	outcome, err := l.Edit(c.Index, c.EditRequest)
	if err != nil {
		return nil, withCommand(err, CmdEdit)
	}
	return &Edited{EditOutcome: outcome, Summary: l.Summary()}, nil
}

// DeleteCommand removes an expense.
type DeleteCommand struct{ Index int }

// Deleted is the result of DeleteCommand.
type Deleted struct {
	modified
	Index   int
	Expense Expense
	Summary Summary
}

func (*DeleteCommand) Name() string { return CmdDelete }
func (c *DeleteCommand) Execute(l *Ledger) (Result, error) {
	e, err := l.Delete(c.Index)
	if err != nil {
		return nil, withCommand(err, CmdDelete)
	}
	return &Deleted{Index: c.Index, Expense: e, Summary: l.Summary()}, nil
}

// MarkCommand flags an expense as counting toward the total spent.
type MarkCommand struct{ Index int }

// Marked is the result of MarkCommand.
type Marked struct {
	modified
	Index   int
	Expense Expense
	// WasMarked is true when the expense was already marked.
	WasMarked bool
	Summary   Summary
}

func (*MarkCommand) Name() string { return CmdMark }
func (c *MarkCommand) Execute(l *Ledger) (Result, error) {
	before, err := l.Get(c.Index)
	if err != nil {
		return nil, withCommand(err, CmdMark)
	}
	e, err := l.Mark(c.Index)
	if err != nil {
		return nil, withCommand(err, CmdMark)
	}
	return &Marked{Index: c.Index, Expense: e, WasMarked: before.IsMarked(), Summary: l.Summary()}, nil
}

// UnmarkCommand clears the marked flag of an expense.
type UnmarkCommand struct{ Index int }

// Unmarked is the result of UnmarkCommand.
type Unmarked struct {
	modified
	Index   int
	Expense Expense
	// WasMarked is false when the expense was already unmarked.
	WasMarked bool
	Summary   Summary
}

func (*UnmarkCommand) Name() string { return CmdUnmark }
func (c *UnmarkCommand) Execute(l *Ledger) (Result, error) {
	before, err := l.Get(c.Index)
	if err != nil {
		return nil, withCommand(err, CmdUnmark)
	}
	e, err := l.Unmark(c.Index)
	if err != nil {
		return nil, withCommand(err, CmdUnmark)
	}
	return &Unmarked{Index: c.Index, Expense: e, WasMarked: before.IsMarked(), Summary: l.Summary()}, nil
}

// SetBudgetCommand replaces the budget.
type SetBudgetCommand struct{ Budget Amount }

// BudgetSet is the result of SetBudgetCommand.
type BudgetSet struct {
	modified
	Summary Summary
}

func (*SetBudgetCommand) Name() string { return CmdSetBudget }
func (c *SetBudgetCommand) Execute(l *Ledger) (Result, error) {
	if err := l.SetBudget(c.Budget); err != nil {
		return nil, withCommand(err, CmdSetBudget)
	}
	return &BudgetSet{Summary: l.Summary()}, nil
}

// ListCommand reports the whole ledger.
type ListCommand struct{}

// Listed is the result of ListCommand.
type Listed struct {
	result
	Snapshot
}

func (*ListCommand) Name() string { return CmdList }
func (*ListCommand) Execute(l *Ledger) (Result, error) {
	return &Listed{Snapshot: l.Snapshot()}, nil
}

// FindCommand searches expenses.
type FindCommand struct{ FindQuery }

// Found is the result of FindCommand.
type Found struct {
	result
	Query   FindQuery
	Matches []Match
}

func (*FindCommand) Name() string { return CmdFind }
func (c *FindCommand) Execute(l *Ledger) (Result, error) {
	return &Found{Query: c.FindQuery, Matches: l.Find(c.FindQuery)}, nil
}

// HelpCommand asks for usage, of one command or of all.
type HelpCommand struct{ Topic string }

// Help is the result of HelpCommand.
type Help struct {
	result
	Topic string
}

func (*HelpCommand) Name() string { return CmdHelp }
func (c *HelpCommand) Execute(*Ledger) (Result, error) {
	return &Help{Topic: c.Topic}, nil
}

// ByeCommand stops the interpreter.
type ByeCommand struct{}

// Bye is the result of ByeCommand.
type Bye struct{ result }

func (Bye) Exit() bool { return true }

func (*ByeCommand) Name() string { return CmdBye }
func (*ByeCommand) Execute(*Ledger) (Result, error) {
	return &Bye{}, nil
}

// withCommand records the command name in a typed failure.
func withCommand(err error, command string) error {
	if e, ok := err.(*Error); ok && e.Command == "" {
		e.Command = command
	}
	return err
}
