// Package cashbuddy is the core of a line-oriented personal expense ledger.
//
// A user types commands such as
//
//	add a/12.50 desc/Lunch cat/Food
//	mark 1
//	edit id/1 a/15
//	setbudget a/300
//	list
//
// and each line goes through the same pipeline:
//   - Tokenize slices the argument string into prefix/value pairs (a/, desc/,
//     cat/, id/) without judging the values.
//   - The Parse* functions validate each raw value into a typed one (Amount,
//     description, category, index) or return a typed *Error.
//   - ParseCommand assembles the validated values into a Command.
//   - Command.Execute applies it to a Ledger, which owns the ordered expenses
//     and the budget, and returns a Result for the display layer.
//
// Only marked expenses count toward the total spent; the total and the
// remaining balance are always recomputed from the expenses.
//
// A failing command never changes the ledger. Persistence is behind the Store
// interface; FileStore keeps the ledger in a JSONL file.
package cashbuddy
