package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ComponentType is the accounting bucket a component allocates to.
type ComponentType string

const (
	ComponentInvestor   ComponentType = "investor"
	ComponentConsigner  ComponentType = "consigner"
	ComponentVendor     ComponentType = "vendor"
	ComponentStateTax   ComponentType = "state_taxes"
	ComponentFederalTax ComponentType = "federal_taxes"
)

// ComponentKind determines how the component value is interpreted.
type ComponentKind string

const (
	KindPercentage ComponentKind = "percentage"
	KindFlat       ComponentKind = "flat"
)

// Component is a single allocation of a rule. Components with a tax
// type may appear in a rule, but the deduction pipeline computes taxes
// from the order's own tax lines, so they carry no value there.
type Component struct {
	Type     ComponentType   `json:"type"`
	Kind     ComponentKind   `json:"kind"`
	Value    decimal.Decimal `json:"value"`
	Label    string          `json:"label"`
	Position uint            `json:"position"`
}

// IsTax returns true for the tax component types.
func (c Component) IsTax() bool {
	return c.Type == ComponentStateTax || c.Type == ComponentFederalTax
}

var displayNames = map[ComponentType]string{
	ComponentInvestor:   "Investor",
	ComponentConsigner:  "Consigner",
	ComponentVendor:     "Vendor",
	ComponentStateTax:   "State Taxes",
	ComponentFederalTax: "Federal Taxes",
}

// Name returns the display name of the component. The label
// distinguishes multiple components of the same type, e.g.
// "Investor - Bank A".
func (c Component) Name() string {
	name := displayNames[c.Type]
	if name == "" {
		name = string(c.Type)
	}

	if c.Label != "" {
		name = fmt.Sprintf("%s - %s", name, c.Label)
	}

	return name
}

// Rule matches orders by keyword and defines the allocation components
// applied to them.
type Rule struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords"`
	Components  []Component `json:"components"`
}

// allocationComponents returns the non-tax components of the rule in
// position order. The sort is stable so that components sharing a
// position keep their configured order.
func (r Rule) allocationComponents() []Component {
	components := make([]Component, 0, len(r.Components))
	for _, c := range r.Components {
		if !c.IsTax() {
			components = append(components, c)
		}
	}

	sort.SliceStable(components, func(i, j int) bool {
		return components[i].Position < components[j].Position
	})

	return components
}

// ValidateRules checks every rule for unsupported component type and
// kind combinations. It is called when rules are loaded, before any
// order is processed.
func ValidateRules(rules []Rule) error {
	for _, rule := range rules {
		for _, component := range rule.Components {
			if _, ok := displayNames[component.Type]; !ok {
				return RuleError{RuleID: rule.ID, Err: fmt.Errorf("%w: %q", ErrInvalidComponentType, component.Type)}
			}

			if component.Kind != KindPercentage && component.Kind != KindFlat {
				return RuleError{RuleID: rule.ID, Err: fmt.Errorf("%w: %q", ErrInvalidComponentKind, component.Kind)}
			}
		}
	}

	return nil
}
