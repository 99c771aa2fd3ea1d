package engine

import "github.com/shopspring/decimal"

// ResolvedTaxes maps the order's tax lines to the state and federal
// buckets by position: the first tax line is treated as state tax, the
// second as federal tax, all remaining ones as additional taxes that
// are reported under the state bucket.
//
// This is a modeling choice carried over from the upstream order
// source, which does not classify tax lines itself.
type ResolvedTaxes struct {
	State      *TaxLine
	Federal    *TaxLine
	Additional []TaxLine
}

// ResolveTaxes maps the order's tax line sequence positionally.
// An order without tax lines resolves to all-nil and the tax phase
// contributes nothing.
func ResolveTaxes(order Order) ResolvedTaxes {
	var resolved ResolvedTaxes

	for i := range order.TaxLines {
		switch i {
		case 0:
			resolved.State = &order.TaxLines[i]
		case 1:
			resolved.Federal = &order.TaxLines[i]
		default:
			resolved.Additional = append(resolved.Additional, order.TaxLines[i])
		}
	}

	return resolved
}

// effectiveRate returns the fractional rate of a tax line. When the
// order source did not report a rate, it is derived from the reported
// tax amount relative to the order total.
func effectiveRate(line TaxLine, orderTotal decimal.Decimal) decimal.Decimal {
	if line.Rate.IsPositive() {
		return line.Rate
	}

	if orderTotal.IsPositive() {
		return line.Amount.Div(orderTotal)
	}

	return decimal.Zero
}
