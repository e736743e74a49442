package cashbuddy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and executes line against l.
func run(t *testing.T, l *Ledger, line string) (Result, error) {
	t.Helper()
	cmd, err := ParseCommand(line)
	require.NoError(t, err)
	return cmd.Execute(l)
}

func TestExecute(t *testing.T) {
	l := NewLedger()

	res, err := run(t, l, "add a/12.50 desc/Lunch cat/Food")
	require.NoError(t, err)
	added := res.(*Added)
	assert.Equal(t, 1, added.Index)
	assert.True(t, added.Modified())
	assert.False(t, added.Exit())

	res, err = run(t, l, "mark 1")
	require.NoError(t, err)
	marked := res.(*Marked)
	assert.False(t, marked.WasMarked)
	assert.True(t, marked.Expense.IsMarked())
	assertAmount(t, "12.50", marked.Summary.Total)

	res, err = run(t, l, "mark 1")
	require.NoError(t, err)
	assert.True(t, res.(*Marked).WasMarked)

	res, err = run(t, l, "setbudget a/100")
	require.NoError(t, err)
	assertAmount(t, "87.50", res.(*BudgetSet).Summary.Remaining)

	res, err = run(t, l, "edit id/1 a/20")
	require.NoError(t, err)
	edited := res.(*Edited)
	assert.True(t, edited.AmountChanged)
	assert.True(t, edited.After.IsMarked())
	assertAmount(t, "20.00", edited.Summary.Total)

	res, err = run(t, l, "unmark 1")
	require.NoError(t, err)
	assert.True(t, res.(*Unmarked).WasMarked)
	assertAmount(t, "0.00", res.(*Unmarked).Summary.Total)

	res, err = run(t, l, "list")
	require.NoError(t, err)
	listed := res.(*Listed)
	assert.False(t, listed.Modified())
	assert.Len(t, listed.Expenses, 1)

	res, err = run(t, l, "find desc/lun")
	require.NoError(t, err)
	assert.Len(t, res.(*Found).Matches, 1)

	res, err = run(t, l, "delete 1")
	require.NoError(t, err)
	assert.Equal(t, "Lunch", res.(*Deleted).Expense.Description())
	assert.Equal(t, 0, l.Len())

	res, err = run(t, l, "help mark")
	require.NoError(t, err)
	assert.Equal(t, "mark", res.(*Help).Topic)
	assert.False(t, res.Modified())

	res, err = run(t, l, "bye")
	require.NoError(t, err)
	assert.True(t, res.Exit())
	assert.False(t, res.Modified())
}

func TestExecute_FailureLeavesLedgerUntouched(t *testing.T) {
	testCases := []struct {
		line    string
		wantErr error
	}{
		{line: "edit id/4 a/5", wantErr: ErrIndexOutOfRange},
		{line: "delete 4", wantErr: ErrIndexOutOfRange},
		{line: "mark 2147483647", wantErr: ErrIndexUnprocessable},
		{line: "unmark 9", wantErr: ErrIndexOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			l := newTestLedger(t)
			before, err := json.Marshal(l.Snapshot())
			require.NoError(t, err)

			_, err = run(t, l, tc.line)
			require.ErrorIs(t, err, tc.wantErr)
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.NotEmpty(t, e.Command)

			after, err := json.Marshal(l.Snapshot())
			require.NoError(t, err)
			assert.JSONEq(t, string(before), string(after))
		})
	}

	t.Run("empty ledger", func(t *testing.T) {
		_, err := run(t, NewLedger(), "delete 1")
		assert.ErrorIs(t, err, ErrEmptyLedger)
	})
}

func TestCommandsHaveNames(t *testing.T) {
	for _, name := range Commands {
		line := name
		switch name {
		case CmdAdd:
			line = "add a/1 desc/x"
		case CmdEdit:
			line = "edit id/1"
		case CmdDelete, CmdMark, CmdUnmark:
			line += " 1"
		case CmdSetBudget:
			line = "setbudget a/1"
		case CmdFind:
			line = "find cat/x"
		}
		cmd, err := ParseCommand(line)
		require.NoError(t, err, line)
		assert.Equal(t, name, cmd.Name())
	}
}
