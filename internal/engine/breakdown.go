package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UnmatchedRule is the matched-rule text for orders no rule applies to.
const UnmatchedRule = "No match"

// ComponentAmount is a single applied deduction of a breakdown.
type ComponentAmount struct {
	Type   ComponentType   `json:"type"`   // Bucket the amount belongs to
	Label  string          `json:"label"`  // Label of the component, if any
	Name   string          `json:"name"`   // Display name, e.g. "Investor - Bank A"
	Amount decimal.Decimal `json:"amount"` // Amount deducted
}

// Breakdown is the result of processing one order. The raw upstream tax
// lines are carried alongside the computed tax amounts, the two views
// can legitimately differ and are never merged.
type Breakdown struct {
	OrderID      string    `json:"orderId"`
	OrderNumber  string    `json:"orderNumber"`
	Date         time.Time `json:"date"`
	Customer     string    `json:"customer"`
	Products     string    `json:"products"`
	Vendors      string    `json:"vendors"`
	ProductTypes string    `json:"productTypes"`
	Tags         string    `json:"tags"`
	Collections  string    `json:"collections"`
	Currency     string    `json:"currency"`

	OrderTotal    decimal.Decimal `json:"orderTotal"`    // Total price as reported upstream
	SalePrice     decimal.Decimal `json:"salePrice"`     // Subtotal after refunds
	DiscountTotal decimal.Decimal `json:"discountTotal"` // Sum of all discount applications
	Cost          decimal.Decimal `json:"cost"`          // Total inventory cost
	BaseAmount    decimal.Decimal `json:"baseAmount"`    // Amount entering the allocation phase

	Components   []ComponentAmount `json:"components"` // Every applied component in application order
	Investor     decimal.Decimal   `json:"investor"`
	Consigner    decimal.Decimal   `json:"consigner"`
	Vendor       decimal.Decimal   `json:"vendor"`
	StateTaxes   decimal.Decimal   `json:"stateTaxes"`
	FederalTaxes decimal.Decimal   `json:"federalTaxes"`
	Revenue      decimal.Decimal   `json:"revenue"`

	MatchedRule string    `json:"matchedRule"` // Description of the applied rule, "No match" otherwise
	TaxLines    []TaxLine `json:"taxLines"`    // Raw upstream tax breakdown
}

// pipelineResult is the output of the deduction phases before it is
// merged with the order and rule metadata.
type pipelineResult struct {
	salePrice     decimal.Decimal
	discountTotal decimal.Decimal
	baseAmount    decimal.Decimal
	components    []ComponentAmount
	revenue       decimal.Decimal
}

// assemble merges the matcher result and the pipeline result into the
// breakdown for one order.
func assemble(order Order, rule *Rule, result pipelineResult) Breakdown {
	breakdown := Breakdown{
		OrderID:       order.ID,
		OrderNumber:   order.Number,
		Date:          order.CreatedAt,
		Customer:      order.CustomerName,
		Currency:      order.Currency,
		OrderTotal:    order.TotalPrice,
		SalePrice:     result.salePrice,
		DiscountTotal: result.discountTotal,
		Cost:          order.TotalCost,
		BaseAmount:    result.baseAmount,
		Components:    result.components,
		Investor:      decimal.Zero,
		Consigner:     decimal.Zero,
		Vendor:        decimal.Zero,
		StateTaxes:    decimal.Zero,
		FederalTaxes:  decimal.Zero,
		Revenue:       result.revenue,
		MatchedRule:   UnmatchedRule,
		TaxLines:      order.TaxLines,
	}

	if rule != nil {
		breakdown.MatchedRule = rule.Description
	}

	for _, component := range result.components {
		switch component.Type {
		case ComponentInvestor:
			breakdown.Investor = breakdown.Investor.Add(component.Amount)
		case ComponentConsigner:
			breakdown.Consigner = breakdown.Consigner.Add(component.Amount)
		case ComponentVendor:
			breakdown.Vendor = breakdown.Vendor.Add(component.Amount)
		case ComponentStateTax:
			breakdown.StateTaxes = breakdown.StateTaxes.Add(component.Amount)
		case ComponentFederalTax:
			breakdown.FederalTaxes = breakdown.FederalTaxes.Add(component.Amount)
		}
	}

	var products []string
	vendors := make(map[string]bool)
	productTypes := make(map[string]bool)
	tags := make(map[string]bool)
	collections := make(map[string]bool)

	for _, item := range order.LineItems {
		if item.Title != "" {
			products = append(products, item.Title)
		}
		if item.Vendor != "" {
			vendors[item.Vendor] = true
		}
		if item.ProductType != "" {
			productTypes[item.ProductType] = true
		}
		for _, tag := range item.Tags {
			if tag != "" {
				tags[tag] = true
			}
		}
		for _, collection := range item.Collections {
			if collection != "" {
				collections[collection] = true
			}
		}
	}

	breakdown.Products = strings.Join(products, ", ")
	breakdown.Vendors = joinSorted(vendors)
	breakdown.ProductTypes = joinSorted(productTypes)
	breakdown.Tags = joinSorted(tags)
	breakdown.Collections = joinSorted(collections)

	return breakdown
}

func joinSorted(values map[string]bool) string {
	list := make([]string, 0, len(values))
	for value := range values {
		list = append(list, value)
	}

	sort.Strings(list)
	return strings.Join(list, ", ")
}
