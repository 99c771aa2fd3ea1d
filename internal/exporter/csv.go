// Package exporter renders breakdown lists for the result consumers,
// currently as CSV.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/splitledger/backend/internal/engine"
)

var baseColumns = []string{
	"Order ID",
	"Order Number",
	"Date",
	"Customer",
	"Products",
	"Vendor",
	"Product Type",
	"Tags",
	"Collections",
	"Order Total",
	"Total Cost",
	"Revenue",
	"State Taxes",
	"Federal Taxes",
}

// WriteCSV renders the breakdowns as CSV.
//
// Labeled investor and consigner components get one column per label so
// that e.g. "Investor - Bank A" and "Investor - Bank B" stay separate.
// The raw upstream tax amounts get one column per tax title, they are
// reported next to the computed tax allocation, never merged with it.
// The last row carries column totals.
func WriteCSV(w io.Writer, breakdowns []engine.Breakdown) error {
	investorColumns := labeledColumns(breakdowns, engine.ComponentInvestor)
	consignerColumns := labeledColumns(breakdowns, engine.ComponentConsigner)
	taxColumns := upstreamTaxColumns(breakdowns)

	columns := make([]string, 0, len(baseColumns)+len(investorColumns)+len(consignerColumns)+len(taxColumns)+2)
	columns = append(columns, baseColumns...)
	columns = append(columns, investorColumns...)
	columns = append(columns, consignerColumns...)
	columns = append(columns, taxColumns...)
	columns = append(columns, "Component Breakdown", "Matched Rule")

	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	totals := make(map[string]decimal.Decimal)

	for _, breakdown := range breakdowns {
		row := make(map[string]string, len(columns))

		date := ""
		if !breakdown.Date.IsZero() {
			date = breakdown.Date.Format("2006-01-02")
		}

		row["Order ID"] = breakdown.OrderID
		row["Order Number"] = breakdown.OrderNumber
		row["Date"] = date
		row["Customer"] = breakdown.Customer
		row["Products"] = breakdown.Products
		row["Vendor"] = breakdown.Vendors
		row["Product Type"] = breakdown.ProductTypes
		row["Tags"] = breakdown.Tags
		row["Collections"] = breakdown.Collections

		setAmount(row, totals, "Order Total", breakdown.OrderTotal)
		setAmount(row, totals, "Total Cost", breakdown.Cost)
		setAmount(row, totals, "Revenue", breakdown.Revenue)
		setAmount(row, totals, "State Taxes", breakdown.StateTaxes)
		setAmount(row, totals, "Federal Taxes", breakdown.FederalTaxes)

		for _, component := range breakdown.Components {
			if component.Type != engine.ComponentInvestor && component.Type != engine.ComponentConsigner {
				continue
			}

			amount := component.Amount
			if existing, ok := row[component.Name]; ok && existing != "" {
				amount = amount.Add(decimal.RequireFromString(existing))
			}

			row[component.Name] = amount.String()
			totals[component.Name] = totals[component.Name].Add(component.Amount)
		}

		for _, line := range breakdown.TaxLines {
			column := upstreamTaxColumn(line.Title)
			row[column] = line.Amount.String()
			totals[column] = totals[column].Add(line.Amount)
		}

		details := make([]string, 0, len(breakdown.Components))
		for _, component := range breakdown.Components {
			details = append(details, fmt.Sprintf("%s: %s", component.Name, component.Amount))
		}

		row["Component Breakdown"] = strings.Join(details, "; ")
		row["Matched Rule"] = breakdown.MatchedRule

		if err := writer.Write(record(columns, row)); err != nil {
			return fmt.Errorf("could not write CSV row for order %s: %w", breakdown.OrderID, err)
		}
	}

	totalsRow := map[string]string{"Order ID": "TOTAL"}
	for column, total := range totals {
		totalsRow[column] = total.String()
	}

	if err := writer.Write(record(columns, totalsRow)); err != nil {
		return fmt.Errorf("could not write CSV totals row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}

func setAmount(row map[string]string, totals map[string]decimal.Decimal, column string, amount decimal.Decimal) {
	row[column] = amount.String()
	totals[column] = totals[column].Add(amount)
}

func record(columns []string, row map[string]string) []string {
	values := make([]string, 0, len(columns))
	for _, column := range columns {
		values = append(values, row[column])
	}

	return values
}

// labeledColumns returns the sorted column names for every distinct
// component name of the given type across all breakdowns.
func labeledColumns(breakdowns []engine.Breakdown, componentType engine.ComponentType) []string {
	names := make(map[string]bool)
	for _, breakdown := range breakdowns {
		for _, component := range breakdown.Components {
			if component.Type == componentType {
				names[component.Name] = true
			}
		}
	}

	columns := make([]string, 0, len(names))
	for name := range names {
		columns = append(columns, name)
	}

	sort.Strings(columns)
	return columns
}

func upstreamTaxColumn(title string) string {
	if title == "" {
		title = "Tax"
	}

	return "Upstream Tax - " + title
}

func upstreamTaxColumns(breakdowns []engine.Breakdown) []string {
	names := make(map[string]bool)
	for _, breakdown := range breakdowns {
		for _, line := range breakdown.TaxLines {
			names[upstreamTaxColumn(line.Title)] = true
		}
	}

	columns := make([]string, 0, len(names))
	for name := range names {
		columns = append(columns, name)
	}

	sort.Strings(columns)
	return columns
}
