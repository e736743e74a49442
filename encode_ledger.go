package cashbuddy

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Kinds of JSONL records.
const (
	recordBudget  = "budget"
	recordExpense = "expense"
)

// record is the union of all fields found in a ledger line.
type record struct {
	Kind        string  `json:"kind"`
	Amount      *Amount `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Marked      bool    `json:"marked"`
}

// DecodeLedger decodes a ledger from a stream of JSONL data.
//
// Every line is validated as if it were typed by the user: a hand edited file
// cannot smuggle in an expense the interpreter would refuse.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	budget := Amount{}
	var expenses []Expense

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: could not decode %q: %w", lineNo, string(line), err)
		}
		switch rec.Kind {
		case recordBudget:
			if rec.Amount == nil {
				return nil, fmt.Errorf("line %d: budget without amount", lineNo)
			}
			budget = *rec.Amount
		case recordExpense:
			e, err := decodeExpense(rec)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			expenses = append(expenses, e)
		default:
			return nil, fmt.Errorf("line %d: unknown record kind %q", lineNo, rec.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger := NewLedger()
	if err := ledger.Restore(budget, expenses); err != nil {
		return nil, err
	}
	return ledger, nil
}

func decodeExpense(rec record) (Expense, error) {
	if rec.Amount == nil {
		return Expense{}, &Error{Kind: ErrEmptyAmount, Command: "load", Field: "Amount"}
	}
	return RestoreExpense(*rec.Amount, rec.Description, rec.Category, rec.Marked)
}

// EncodeExpense writes a single expense record, followed by a newline.
func EncodeExpense(w io.Writer, e Expense) error {
	var o jsonObjectWriter
	o.Append("kind", recordExpense).EmbedFrom(e)
	if err := o.WriteLine(w); err != nil {
		return fmt.Errorf("failed to write expense: %w", err)
	}
	return nil
}

// EncodeLedger writes the budget then every expense in order, in JSONL format.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	var o jsonObjectWriter
	o.Append("kind", recordBudget).Append("amount", ledger.Budget())
	if err := o.WriteLine(w); err != nil {
		return fmt.Errorf("failed to write budget: %w", err)
	}

	for _, e := range ledger.expenses {
		if err := EncodeExpense(w, e); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. It is the queryable
// view of a ledger: the summary, then every expense with its 1-based index
// and an explicit marked flag.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	expenses := make([]json.RawMessage, 0, len(s.Expenses))
	for i, e := range s.Expenses {
		var w jsonObjectWriter
		w.Append("index", i+1)
		w.Append("amount", e.amount)
		w.Append("description", e.description)
		w.Append("category", e.category)
		w.Append("marked", e.marked)
		raw, err := w.MarshalJSON()
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, raw)
	}

	var w jsonObjectWriter
	w.Append("budget", s.Budget)
	w.Append("total", s.Total)
	w.Append("remaining", s.Remaining)
	w.Append("expenses", expenses)
	return w.MarshalJSON()
}
