package engine

import "golang.org/x/text/currency"

// minorUnitDigits returns the number of fraction digits for an ISO 4217
// currency code. Component amounts are rounded to this precision so
// that breakdowns are exact in the currency's minor unit.
//
// Unknown or empty codes fall back to two digits.
func minorUnitDigits(code string) int32 {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}

	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}
