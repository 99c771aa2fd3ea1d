package models_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/splitledger/backend/internal/engine"
	"github.com/splitledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRuleTrimmed() {
	rule := suite.createTestRule(models.Rule{
		Description: " Consignment goods ",
		Keywords:    []string{" consignment ", "Acme"},
	})

	assert.Equal(suite.T(), "Consignment goods", rule.Description)
	assert.Equal(suite.T(), []string{"consignment", "Acme"}, rule.Keywords)
}

func (suite *TestSuiteStandard) TestRuleDescriptionUnique() {
	_ = suite.createTestRule(models.Rule{Description: "Pottery"})

	err := models.DB.Create(&models.Rule{Description: "Pottery"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrRuleDescriptionNotUnique)
}

func (suite *TestSuiteStandard) TestComponentValidation() {
	tests := []struct {
		name      string
		component models.Component
		err       error
	}{
		{
			"valid component",
			models.Component{Type: engine.ComponentInvestor, Kind: engine.KindPercentage, Value: decimal.RequireFromString("10")},
			nil,
		},
		{
			"invalid type",
			models.Component{Type: "shareholder", Kind: engine.KindFlat},
			engine.ErrInvalidComponentType,
		},
		{
			"invalid kind",
			models.Component{Type: engine.ComponentVendor, Kind: "ratio"},
			engine.ErrInvalidComponentKind,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			rule := models.Rule{
				Description: "Rule for " + tt.name,
				Components:  []models.Component{tt.component},
			}

			err := models.DB.Create(&rule).Error
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestLoadRulesOrdered() {
	_ = suite.createTestRule(models.Rule{Description: "Second", Priority: 2, Keywords: []string{"b"}})
	_ = suite.createTestRule(models.Rule{Description: "First", Priority: 1, Keywords: []string{"a"}})

	rules, err := models.LoadRules()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rules, 2)

	assert.Equal(suite.T(), "First", rules[0].Description)
	assert.Equal(suite.T(), "Second", rules[1].Description)
}

func (suite *TestSuiteStandard) TestRuleToEngine() {
	rule := suite.createTestRule(models.Rule{
		Description: "Consignment",
		Keywords:    []string{"consignment"},
		Components: []models.Component{
			{Type: engine.ComponentConsigner, Kind: engine.KindPercentage, Value: decimal.RequireFromString("20"), Position: 1},
			{Type: engine.ComponentInvestor, Kind: engine.KindFlat, Value: decimal.RequireFromString("10"), Label: "Bank A", Position: 2},
		},
	})

	converted := rule.ToEngine()

	assert.Equal(suite.T(), rule.ID.String(), converted.ID)
	assert.Equal(suite.T(), []string{"consignment"}, converted.Keywords)
	require.Len(suite.T(), converted.Components, 2)
	assert.Equal(suite.T(), "Investor - Bank A", converted.Components[1].Name())
	assert.NoError(suite.T(), engine.ValidateRules([]engine.Rule{converted}))
}

func (suite *TestSuiteStandard) TestRuleExport() {
	t := suite.T()

	for range 2 {
		_ = suite.createTestRule(models.Rule{Description: "Export " + uuid.NewString()})
	}

	raw, err := models.Rule{}.Export()
	if err != nil {
		require.Fail(t, "rule export failed", err)
	}

	var rules []models.Rule
	err = json.Unmarshal(raw, &rules)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, rules, 2, "number of rules in export is wrong")
}
