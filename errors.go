package cashbuddy

import (
	"errors"
	"fmt"
	"math"
)

// Failure kinds. Every failure returned by the package is an *Error wrapping one of them,
// so callers test the kind with errors.Is.
var (
	ErrMissingPrefix = errors.New("missing prefix")

	ErrEmptyAmount       = errors.New("amount is missing")
	ErrInvalidAmount     = errors.New("amount is not a valid decimal")
	ErrAmountNotPositive = errors.New("amount must be at least 0.01")
	ErrAmountTooLarge    = errors.New("amount is too large")

	ErrEmptyDescription = errors.New("description is missing")
	ErrEmptyCategory    = errors.New("category is missing")
	ErrInvalidCategory  = errors.New("category must start with a letter and contain only letters, numbers, spaces, or hyphens")
	ErrNonASCII         = errors.New("supports ASCII characters only")

	ErrMissingIndex  = errors.New("missing expense index")
	ErrInvalidIndex  = errors.New("expense index must be an integer")
	ErrIndexTooSmall = errors.New("expense index must be at least 1")
	ErrIndexTooLarge = errors.New("expense index is too large")

	ErrNotFound           = errors.New("expense not found")
	ErrEmptyLedger        = fmt.Errorf("%w: no expenses available", ErrNotFound)
	ErrIndexOutOfRange    = fmt.Errorf("%w: expense index out of range", ErrNotFound)
	ErrIndexUnprocessable = fmt.Errorf("%w: the number entered is too large to process", ErrIndexOutOfRange)

	ErrNegativeBudget = errors.New("budget must not be negative")

	ErrEmptyCommand        = errors.New("empty command")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrMissingCriteria     = errors.New("missing search criteria")
	ErrTooManyCriteria     = errors.New("only one search criterion is allowed")
	ErrUnexpectedArguments = errors.New("unexpected arguments")
)

// unprocessableThreshold is the smallest index reported as "too large to process"
// rather than as an ordinary out of range index.
const unprocessableThreshold = math.MaxInt32 - 1000

// Error is a typed failure with the minimal context needed to report it.
type Error struct {
	Kind    error  // one of the Err* sentinels
	Command string // command word being executed, if any
	Field   string // field name for field level failures
	Prefix  string // prefix involved, if any
	Input   string // offending raw input
	Index   int    // offending index, for index failures
	Size    int    // ledger size at the time of an index failure
}

func (e *Error) Unwrap() error { return e.Kind }

func (e *Error) Error() string {
	switch e.Kind {
	case ErrMissingPrefix:
		return fmt.Sprintf("Missing prefix %q after '%s' command", e.Prefix, e.Command)
	case ErrEmptyAmount:
		return fmt.Sprintf("Amount is missing after 'a/' after '%s' command", e.Command)
	case ErrInvalidAmount:
		return fmt.Sprintf("Amount is not a valid decimal: %s", e.Input)
	case ErrAmountNotPositive:
		return fmt.Sprintf("Amount must be at least 0.01: %s", e.Input)
	case ErrAmountTooLarge:
		return fmt.Sprintf("Amount is too large (maximum is %s): %s", MaxAmount, e.Input)
	case ErrEmptyDescription:
		return fmt.Sprintf("Description is missing after 'desc/' after '%s' command", e.Command)
	case ErrEmptyCategory:
		return fmt.Sprintf("Category is missing after 'cat/' after '%s' command", e.Command)
	case ErrInvalidCategory:
		return fmt.Sprintf("Category must start with a letter and contain only letters, numbers, spaces, or hyphens (max 20 characters): %s", e.Input)
	case ErrNonASCII:
		return fmt.Sprintf("%s supports ASCII characters only", e.Field)
	case ErrMissingIndex:
		return fmt.Sprintf("Missing expense index after '%s' command", e.Command)
	case ErrInvalidIndex:
		return "Expense index must be an integer"
	case ErrIndexTooSmall:
		return "Expense index must be at least 1"
	case ErrIndexTooLarge:
		return "Expense index is too large to process"
	case ErrEmptyLedger:
		return "No expenses available. Add some expenses first"
	case ErrIndexUnprocessable:
		return fmt.Sprintf("Expense index must be between 1 and %d. The number entered is too large to process", e.Size)
	case ErrIndexOutOfRange:
		return fmt.Sprintf("Expense index must be between 1 and %d, but got %d", e.Size, e.Index)
	case ErrNegativeBudget:
		return fmt.Sprintf("Budget must not be negative: %s", e.Input)
	case ErrEmptyCommand:
		return "Please enter a command"
	case ErrUnknownCommand:
		return fmt.Sprintf("Unknown command: %s", e.Input)
	case ErrMissingCriteria:
		return fmt.Sprintf("Missing search criteria after '%s' command", e.Command)
	case ErrTooManyCriteria:
		return fmt.Sprintf("Only one search criterion is allowed after '%s' command", e.Command)
	case ErrUnexpectedArguments:
		return fmt.Sprintf("Unexpected arguments after '%s' command: %s", e.Command, e.Input)
	default:
		if e.Kind != nil {
			return e.Kind.Error()
		}
		return "unknown error"
	}
}

// indexError returns the failure for an index outside the current ledger.
func indexError(index, size int) *Error {
	switch {
	case size == 0:
		return &Error{Kind: ErrEmptyLedger, Index: index, Size: size}
	case index >= unprocessableThreshold:
		return &Error{Kind: ErrIndexUnprocessable, Index: index, Size: size}
	default:
		return &Error{Kind: ErrIndexOutOfRange, Index: index, Size: size}
	}
}
