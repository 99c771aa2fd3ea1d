package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/splitledger/backend/internal/engine"
	"gorm.io/gorm"
)

// Rule is a persisted allocation rule. Rules are applied to orders in
// priority order, the first rule with a matching keyword wins.
type Rule struct {
	DefaultModel
	Description string      `gorm:"uniqueIndex"`
	Priority    uint
	Keywords    []string    `gorm:"serializer:json"`
	Components  []Component `gorm:"constraint:OnDelete:CASCADE"`
}

// Component is one allocation of a rule, e.g. "Investor - Bank A gets
// 15 percent".
type Component struct {
	DefaultModel
	RuleID   uuid.UUID            `gorm:"index"`
	Type     engine.ComponentType
	Kind     engine.ComponentKind
	Value    decimal.Decimal      `gorm:"type:DECIMAL(20,8)"`
	Label    string
	Position uint
}

func (r *Rule) BeforeSave(_ *gorm.DB) error {
	r.Description = strings.TrimSpace(r.Description)

	for i, keyword := range r.Keywords {
		r.Keywords[i] = strings.TrimSpace(keyword)
	}

	return nil
}

// BeforeSave rejects components with an unsupported type or kind.
// This runs when rules are saved so that misconfigured rules are
// caught before any order is processed against them.
func (c *Component) BeforeSave(_ *gorm.DB) error {
	c.Label = strings.TrimSpace(c.Label)

	return engine.ValidateRules([]engine.Rule{{
		ID:         c.RuleID.String(),
		Components: []engine.Component{c.toEngine()},
	}})
}

func (c Component) toEngine() engine.Component {
	return engine.Component{
		Type:     c.Type,
		Kind:     c.Kind,
		Value:    c.Value,
		Label:    c.Label,
		Position: c.Position,
	}
}

// ToEngine converts the persisted rule into the engine representation.
func (r Rule) ToEngine() engine.Rule {
	components := make([]engine.Component, 0, len(r.Components))
	for _, component := range r.Components {
		components = append(components, component.toEngine())
	}

	return engine.Rule{
		ID:          r.ID.String(),
		Description: r.Description,
		Keywords:    r.Keywords,
		Components:  components,
	}
}

// ComponentOrder orders preloaded components by their position.
func ComponentOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// LoadRules returns all rules in priority order, converted for the
// engine. The returned slice is an immutable snapshot, it can be
// shared across concurrent order computations.
func LoadRules() ([]engine.Rule, error) {
	var rules []Rule
	err := DB.Preload("Components", ComponentOrder).Order("priority ASC, description ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	converted := make([]engine.Rule, 0, len(rules))
	for _, rule := range rules {
		converted = append(converted, rule.ToEngine())
	}

	return converted, nil
}

// Export returns all rules on this instance for export.
func (Rule) Export() (json.RawMessage, error) {
	var rules []Rule
	err := DB.Unscoped().Preload("Components", ComponentOrder).Where(&Rule{}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&rules)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
