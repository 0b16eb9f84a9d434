package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amount is a monetary value in minor currency units (paise).
// All arithmetic stays in minor units; conversion to rupees happens
// only at the presentation boundary.
type Amount int64

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Rupees converts to major units for display fields only, never for
// arithmetic.
func (a Amount) Rupees() float64 {
	return float64(a) / 100
}

// Format renders the amount as an INR string with locale digit
// grouping, e.g. 123450 -> "₹1,234.50".
func Format(a Amount) string {
	return printer.Sprintf("₹%v", number.Decimal(
		a.Rupees(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Min returns the smaller of two amounts.
func Min(a, b Amount) Amount {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Amount) Amount {
	if a > b {
		return a
	}
	return b
}
