package cashbuddy

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory is the category of an expense added without cat/.
const DefaultCategory = "Uncategorized"

var (
	// MinAmount is the smallest amount accepted: one cent.
	MinAmount = A(decimal.New(1, -2))
	// MaxAmount is the largest amount accepted.
	MaxAmount = A(decimal.New(1, 12))
)

// categoryPattern: a letter, then up to 19 letters, digits, whitespaces or hyphens.
var categoryPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\s-]{0,19}$`)

// ParseAmount validates the raw value of a/ and returns it truncated to cents.
func ParseAmount(raw, command string) (Amount, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Amount{}, &Error{Kind: ErrEmptyAmount, Command: command, Field: "Amount"}
	}
	// NaN and infinities are not decimal literals and fail here too.
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, &Error{Kind: ErrInvalidAmount, Command: command, Field: "Amount", Input: raw}
	}
	return checkAmount(d, raw, command)
}

// maxLiteralMagnitude is the largest order of magnitude a float64 can hold.
// Beyond it the literal is an overflow, reported as an invalid amount.
const maxLiteralMagnitude = 309

// checkAmount applies the amount range to d and truncates it to cents.
func checkAmount(d decimal.Decimal, input, command string) (Amount, error) {
	amount, err := bounded(d)
	if err != nil {
		return Amount{}, &Error{Kind: err, Command: command, Field: "Amount", Input: input}
	}
	if amount.LessThan(MinAmount) {
		return Amount{}, &Error{Kind: ErrAmountNotPositive, Command: command, Field: "Amount", Input: input}
	}
	if amount.GreaterThan(MaxAmount) {
		return Amount{}, &Error{Kind: ErrAmountTooLarge, Command: command, Field: "Amount", Input: input}
	}
	return amount.Truncate(2), nil
}

// bounded sorts d by order of magnitude without rescaling it: comparing or
// truncating a decimal costs memory linear in its exponent, which a literal
// like 1e-50000000 makes unbounded.
//
// Negative values and values too large for the ledger are rejected. Values
// below a cent come back as zero, which is what truncation to cents gives
// them. Anything else comes back unchanged, with an exponent bounded by its
// digit count.
func bounded(d decimal.Decimal) (Amount, error) {
	switch d.Sign() {
	case 0:
		return Amount{}, nil
	case -1:
		return Amount{}, ErrAmountNotPositive
	}
	// d lies in [10^(magnitude-1), 10^magnitude).
	magnitude := int64(d.Exponent()) + int64(len(d.Coefficient().Text(10)))
	switch {
	case magnitude > maxLiteralMagnitude:
		return Amount{}, ErrInvalidAmount
	case magnitude > 13:
		return Amount{}, ErrAmountTooLarge
	case magnitude < -1:
		return Amount{}, nil
	}
	return A(d), nil
}

// ParseDescription validates the raw value of desc/ and returns it trimmed.
func ParseDescription(raw, command string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &Error{Kind: ErrEmptyDescription, Command: command, Field: "Description"}
	}
	if err := ensureASCII(trimmed, "Description", command); err != nil {
		return "", err
	}
	return trimmed, nil
}

// ParseCategory validates the raw value of cat/.
//
// An absent category (present is false) is the DefaultCategory; a present but
// blank one is an error.
func ParseCategory(raw string, present bool, command string) (string, error) {
	if !present {
		return DefaultCategory, nil
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &Error{Kind: ErrEmptyCategory, Command: command, Field: "Category"}
	}
	if err := ensureASCII(trimmed, "Category", command); err != nil {
		return "", err
	}
	if !categoryPattern.MatchString(trimmed) {
		return "", &Error{Kind: ErrInvalidCategory, Command: command, Field: "Category", Input: trimmed}
	}
	return trimmed, nil
}

// ParseIndex validates a 1-based expense index.
//
// Only an empty raw value is a missing index: whitespace is present, and not
// an integer. Whether the index exists is for the Ledger to say.
func ParseIndex(raw, command string) (int, error) {
	if raw == "" {
		return 0, &Error{Kind: ErrMissingIndex, Command: command, Field: "Index"}
	}
	trimmed := strings.TrimSpace(raw)
	index, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &Error{Kind: ErrIndexTooLarge, Command: command, Field: "Index", Input: trimmed}
		}
		return 0, &Error{Kind: ErrInvalidIndex, Command: command, Field: "Index", Input: trimmed}
	}
	if index < 1 {
		return 0, &Error{Kind: ErrIndexTooSmall, Command: command, Field: "Index", Input: trimmed}
	}
	return int(index), nil
}

// ensureASCII checks that every byte is printable ASCII (0x20-0x7E).
func ensureASCII(value, field, command string) error {
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7E {
			return &Error{Kind: ErrNonASCII, Command: command, Field: field, Input: value}
		}
	}
	return nil
}
