package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/splitledger/backend/internal/engine"
	"github.com/splitledger/backend/internal/httputil"
	"github.com/splitledger/backend/internal/models"
)

type ComponentEditable struct {
	Type     engine.ComponentType `json:"type" example:"investor" enums:"investor,consigner,vendor,state_taxes,federal_taxes"`            // Who this component allocates money to
	Kind     engine.ComponentKind `json:"kind" example:"percentage" enums:"percentage,flat"`                                              // How Value is interpreted
	Value    decimal.Decimal      `json:"value" example:"15" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`         // Percentage or flat amount
	Label    string               `json:"label" example:"Bank A" default:""`                                                              // Distinguishes multiple components of the same type
	Position uint                 `json:"position" example:"1" default:"0"`                                                               // Deduction order within the rule
}

func (editable ComponentEditable) model() models.Component {
	return models.Component{
		Type:     editable.Type,
		Kind:     editable.Kind,
		Value:    editable.Value,
		Label:    editable.Label,
		Position: editable.Position,
	}
}

type RuleEditable struct {
	Description string              `json:"description" example:"Consignment vinyl" default:""` // Unique, human readable description
	Priority    uint                `json:"priority" example:"1" default:"0"`                   // Rules are tried in ascending priority order
	Keywords    []string            `json:"keywords" example:"vinyl,record"`                    // Keywords matched against order line items
	Components  []ComponentEditable `json:"components"`                                         // The allocations this rule applies
}

// model returns the database resource for the API representation of the editable fields
func (editable RuleEditable) model() models.Rule {
	components := make([]models.Component, 0, len(editable.Components))
	for _, component := range editable.Components {
		components = append(components, component.model())
	}

	return models.Rule{
		Description: editable.Description,
		Priority:    editable.Priority,
		Keywords:    editable.Keywords,
		Components:  components,
	}
}

type RuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/rules/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The Rule itself
}

type Rule struct {
	models.DefaultModel
	RuleEditable
	Links RuleLinks `json:"links"`
}

// newRule returns the API v1 representation of the resource
func newRule(c *gin.Context, model models.Rule) Rule {
	components := make([]ComponentEditable, 0, len(model.Components))
	for _, component := range model.Components {
		components = append(components, ComponentEditable{
			Type:     component.Type,
			Kind:     component.Kind,
			Value:    component.Value,
			Label:    component.Label,
			Position: component.Position,
		})
	}

	return Rule{
		DefaultModel: model.DefaultModel,
		RuleEditable: RuleEditable{
			Description: model.Description,
			Priority:    model.Priority,
			Keywords:    model.Keywords,
			Components:  components,
		},
		Links: RuleLinks{
			Self: fmt.Sprintf("%s/rules/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type RuleListResponse struct {
	Data       []Rule      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type RuleCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RuleResponse `json:"data"`                                                          // List of created resources
}

func (t *RuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, RuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RuleResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Rule   `json:"data"`                                                          // The resource
}

type RuleQueryFilter struct {
	Description string `form:"description" filterField:"false"` // By description, partial match
	Priority    uint   `form:"priority"`                        // By exact priority
	Keyword     string `form:"keyword" filterField:"false"`     // By rules containing this keyword
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first rule returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of rules to return. Defaults to 50.
}

func (f RuleQueryFilter) model() models.Rule {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Rule{
		Priority: f.Priority,
	}
}
