package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/cashbuddy"
)

// Money formats an amount in the given currency, for instance "$1,234.50".
// Digits beyond the currency's minor unit are truncated.
func Money(a cashbuddy.Amount, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := a.Decimal().Shift(int32(cur.Fraction)).IntPart()
	return cur.Formatter().Format(minor)
}

// ProgressBar draws a bar of width cells filled in proportion to ratio,
// clamped to [0, 1].
func ProgressBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
