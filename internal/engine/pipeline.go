package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxMode selects how the tax phase treats multiple tax lines.
//
// The authoritative mode is TaxSimultaneous: every tax is computed from
// the same base, the remaining amount after all allocation components,
// and their sum is subtracted once. TaxSequential computes each tax
// from the remainder the previous one left, matching an older revision
// of the upstream documentation.
type TaxMode string

const (
	TaxSimultaneous TaxMode = "simultaneous"
	TaxSequential   TaxMode = "sequential"
)

// Options configures a computation. The zero value selects the
// simultaneous tax mode.
type Options struct {
	TaxMode TaxMode
}

var percent = decimal.NewFromInt(100)

// Compute runs the deduction pipeline for one order and returns its
// breakdown.
//
// The phases operate on a running remaining amount seeded with the
// line-item subtotal: refunds, discounts, cost, the matched rule's
// allocation components in position order, taxes, and finally the
// residual revenue. Compute is a pure function, the same order and rule
// always produce the same breakdown.
//
// Orders with the financial status "refunded" return ErrOrderRefunded
// and no breakdown. rule may be nil, the order is then processed with
// refunds, discounts, cost and taxes only.
func Compute(order Order, rule *Rule, opts Options) (Breakdown, error) {
	if order.FinancialStatus == StatusRefunded {
		return Breakdown{}, fmt.Errorf("order %s: %w", order.ID, ErrOrderRefunded)
	}

	digits := minorUnitDigits(order.Currency)
	subtotal := order.Subtotal()

	var result pipelineResult

	// Refunds come off the subtotal first. Partially refunded orders
	// are processed normally with the adjusted amount.
	result.salePrice = subtotal.Sub(order.TotalRefunded)

	// Percentage discounts apply to the original subtotal, not the
	// refund-adjusted amount. Multiple discounts are summed, not
	// compounded.
	result.discountTotal = decimal.Zero
	for _, discount := range order.Discounts {
		amount := discount.Value
		if discount.Kind == DiscountPercentage {
			amount = subtotal.Mul(discount.Value).Div(percent).Round(digits)
		}

		result.discountTotal = result.discountTotal.Add(amount)
	}

	remaining := result.salePrice.Sub(result.discountTotal).Sub(order.TotalCost)
	result.baseAmount = remaining

	// Allocation components are applied sequentially, each percentage
	// is taken from the amount the previous component left.
	if rule != nil {
		for _, component := range rule.allocationComponents() {
			amount := component.Value.Round(digits)
			if component.Kind == KindPercentage {
				amount = remaining.Mul(component.Value).Div(percent).Round(digits)
			}

			remaining = remaining.Sub(amount)
			result.components = append(result.components, ComponentAmount{
				Type:   component.Type,
				Label:  component.Label,
				Name:   component.Name(),
				Amount: amount,
			})
		}
	}

	remaining = applyTaxes(order, opts.TaxMode, remaining, digits, &result)

	// Revenue is the residual, it absorbs any rounding remainder so
	// that the breakdown sums exactly to the base amount.
	result.revenue = remaining

	return assemble(order, rule, result), nil
}

// applyTaxes runs the tax phase on the remaining amount and returns the
// amount left after it.
//
// Taxes are computed from the order's own tax lines, mapped to the
// state and federal buckets by ResolveTaxes. In the simultaneous mode
// every tax is computed from the base the allocation phase left and the
// sum is subtracted once, so reordering tax lines never changes the
// individual amounts.
func applyTaxes(order Order, mode TaxMode, remaining decimal.Decimal, digits int32, result *pipelineResult) decimal.Decimal {
	resolved := ResolveTaxes(order)
	base := remaining
	taxTotal := decimal.Zero

	apply := func(line TaxLine, componentType ComponentType, name string) {
		if mode == TaxSequential {
			base = remaining.Sub(taxTotal)
		}

		amount := base.Mul(effectiveRate(line, order.TotalPrice)).Round(digits)
		taxTotal = taxTotal.Add(amount)

		result.components = append(result.components, ComponentAmount{
			Type:   componentType,
			Name:   name,
			Amount: amount,
		})
	}

	if resolved.State != nil {
		apply(*resolved.State, ComponentStateTax, displayNames[ComponentStateTax])
	}

	if resolved.Federal != nil {
		apply(*resolved.Federal, ComponentFederalTax, displayNames[ComponentFederalTax])
	}

	// Additional tax lines are reported under the state bucket, but
	// stay visible as distinct entries.
	for _, line := range resolved.Additional {
		title := line.Title
		if title == "" {
			title = "Tax"
		}

		apply(line, ComponentStateTax, fmt.Sprintf("Additional Tax (%s)", title))
	}

	return remaining.Sub(taxTotal)
}
