package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Financial statuses as reported by the order source.
const (
	StatusPaid              = "paid"
	StatusPartiallyRefunded = "partially_refunded"
	StatusRefunded          = "refunded"
)

// Discount kinds.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// OrderInput is the wire representation of an order as the order source
// reports it. All monetary values are decimal strings, ParseOrder
// converts them.
type OrderInput struct {
	ID              string          `json:"id" binding:"required"`                                // ID of the order
	Number          string          `json:"number"`                                               // Human readable order number
	CreatedAt       string          `json:"createdAt" example:"2024-03-05T17:24:01Z"`             // Creation timestamp of the order
	Currency        string          `json:"currency" example:"USD"`                               // ISO 4217 currency code
	FinancialStatus string          `json:"financialStatus" example:"paid"`                       // One of "paid", "partially_refunded", "refunded"
	Customer        CustomerInput   `json:"customer"`                                             // Customer the order belongs to
	LineItems       []LineItemInput `json:"lineItems"`                                            // Line items of the order
	Discounts       []DiscountInput `json:"discounts"`                                            // Discount applications on the order
	TaxLines        []TaxLineInput  `json:"taxLines"`                                             // Tax lines as reported upstream
	TotalRefunded   string          `json:"totalRefunded" example:"10.00"`                        // Total amount refunded for the order
	TotalPrice      string          `json:"totalPrice" example:"118.25"`                          // Total price of the order
	TotalCost       string          `json:"totalCost" example:"40.00"`                            // Total inventory cost. Calculated from the line items when empty
}

type CustomerInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type LineItemInput struct {
	Title       string   `json:"title"`       // Product title
	Vendor      string   `json:"vendor"`      // Product vendor
	ProductType string   `json:"productType"` // Product type
	Tags        []string `json:"tags"`        // Product tags
	Collections []string `json:"collections"` // Collections the product is part of
	Price       string   `json:"price"`       // Unit price
	Quantity    string   `json:"quantity"`    // Quantity ordered
	Cost        string   `json:"cost"`        // Unit inventory cost
}

type DiscountInput struct {
	Kind  string `json:"kind" example:"percentage"` // "percentage" or "fixed"
	Value string `json:"value" example:"10"`        // Percentage or absolute amount
}

type TaxLineInput struct {
	Title  string `json:"title" example:"CA State Tax"` // Name of the tax
	Rate   string `json:"rate" example:"0.085"`         // Fractional tax rate
	Amount string `json:"amount" example:"8.50"`        // Tax amount as reported upstream
}

// Order is a parsed order. It is never mutated after ParseOrder
// returns it.
type Order struct {
	ID              string
	Number          string
	CreatedAt       time.Time
	Currency        string
	FinancialStatus string
	CustomerName    string
	LineItems       []LineItem
	Discounts       []DiscountApplication
	TaxLines        []TaxLine
	TotalRefunded   decimal.Decimal
	TotalPrice      decimal.Decimal
	TotalCost       decimal.Decimal
}

type LineItem struct {
	Title       string
	Vendor      string
	ProductType string
	Tags        []string
	Collections []string
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	Cost        decimal.Decimal
}

// SearchableFields returns every text field of the line item that rule
// keywords are matched against.
func (l LineItem) SearchableFields() []string {
	fields := make([]string, 0, 3+len(l.Tags)+len(l.Collections))

	if l.Title != "" {
		fields = append(fields, l.Title)
	}
	if l.Vendor != "" {
		fields = append(fields, l.Vendor)
	}
	if l.ProductType != "" {
		fields = append(fields, l.ProductType)
	}
	for _, tag := range l.Tags {
		if tag != "" {
			fields = append(fields, tag)
		}
	}
	for _, collection := range l.Collections {
		if collection != "" {
			fields = append(fields, collection)
		}
	}

	return fields
}

type DiscountApplication struct {
	Kind  string
	Value decimal.Decimal
}

type TaxLine struct {
	Title  string          `json:"title"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// Subtotal returns the sum of unit price times quantity over all
// line items.
func (o Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.LineItems {
		subtotal = subtotal.Add(item.Price.Mul(item.Quantity))
	}

	return subtotal
}

// ParseOrder converts an OrderInput into an Order.
//
// Missing optional fields parse as zero values. Missing or non-numeric
// values for required fields return a MalformedOrderError naming the
// field so that callers can skip the order and report it.
func ParseOrder(input OrderInput) (Order, error) {
	order := Order{
		ID:              input.ID,
		Number:          input.Number,
		Currency:        input.Currency,
		FinancialStatus: input.FinancialStatus,
		CustomerName:    customerName(input.Customer),
	}

	// The timestamp is only carried through for display, an order
	// without a parseable one is still processed.
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, input.CreatedAt); err == nil {
			order.CreatedAt = t
			break
		}
	}

	var err error
	order.TotalRefunded, err = parseOptionalAmount(input.ID, "totalRefunded", input.TotalRefunded)
	if err != nil {
		return Order{}, err
	}

	order.TotalPrice, err = parseOptionalAmount(input.ID, "totalPrice", input.TotalPrice)
	if err != nil {
		return Order{}, err
	}

	order.LineItems = make([]LineItem, 0, len(input.LineItems))
	for i, item := range input.LineItems {
		parsed := LineItem{
			Title:       item.Title,
			Vendor:      item.Vendor,
			ProductType: item.ProductType,
			Tags:        item.Tags,
			Collections: item.Collections,
		}

		parsed.Price, err = parseRequiredAmount(input.ID, fmt.Sprintf("lineItems[%d].price", i), item.Price)
		if err != nil {
			return Order{}, err
		}

		parsed.Quantity, err = parseRequiredAmount(input.ID, fmt.Sprintf("lineItems[%d].quantity", i), item.Quantity)
		if err != nil {
			return Order{}, err
		}

		parsed.Cost, err = parseOptionalAmount(input.ID, fmt.Sprintf("lineItems[%d].cost", i), item.Cost)
		if err != nil {
			return Order{}, err
		}

		order.LineItems = append(order.LineItems, parsed)
	}

	order.Discounts = make([]DiscountApplication, 0, len(input.Discounts))
	for i, d := range input.Discounts {
		value, err := parseRequiredAmount(input.ID, fmt.Sprintf("discounts[%d].value", i), d.Value)
		if err != nil {
			return Order{}, err
		}

		order.Discounts = append(order.Discounts, DiscountApplication{Kind: d.Kind, Value: value})
	}

	order.TaxLines = make([]TaxLine, 0, len(input.TaxLines))
	for i, t := range input.TaxLines {
		rate, err := parseOptionalAmount(input.ID, fmt.Sprintf("taxLines[%d].rate", i), t.Rate)
		if err != nil {
			return Order{}, err
		}

		amount, err := parseOptionalAmount(input.ID, fmt.Sprintf("taxLines[%d].amount", i), t.Amount)
		if err != nil {
			return Order{}, err
		}

		order.TaxLines = append(order.TaxLines, TaxLine{Title: t.Title, Rate: rate, Amount: amount})
	}

	// When the order source does not report a total cost, it is the sum
	// of unit cost times quantity over the line items.
	if input.TotalCost != "" {
		order.TotalCost, err = parseRequiredAmount(input.ID, "totalCost", input.TotalCost)
		if err != nil {
			return Order{}, err
		}
	} else {
		for _, item := range order.LineItems {
			order.TotalCost = order.TotalCost.Add(item.Cost.Mul(item.Quantity))
		}
	}

	return order, nil
}

func parseRequiredAmount(orderID, field, value string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, MalformedOrderError{OrderID: orderID, Field: field, Value: value}
	}

	return parsed, nil
}

func parseOptionalAmount(orderID, field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}

	return parseRequiredAmount(orderID, field, value)
}

func customerName(c CustomerInput) string {
	name := c.FirstName
	if c.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.LastName
	}

	if name == "" {
		name = c.Email
	}

	if name == "" {
		name = "Unknown"
	}

	return name
}
