package v1

import (
	"fmt"
	"net/http"

	"golang.org/x/exp/slices"

	"github.com/gin-gonic/gin"
	"github.com/splitledger/backend/internal/httputil"
	"github.com/splitledger/backend/internal/models"
)

// RegisterRuleRoutes registers the routes for rules with
// the RouterGroup that is passed.
func RegisterRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRuleList)
		r.GET("", GetRules)
		r.POST("", CreateRules)
	}

	// Rule with ID
	{
		r.OPTIONS("/:id", OptionsRuleDetail)
		r.GET("/:id", GetRule)
		r.PATCH("/:id", UpdateRule)
		r.DELETE("/:id", DeleteRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Router			/v1/rules [options]
func OptionsRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/rules/{id} [options]
func OptionsRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Rule{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create rules
// @Description	Creates rules from the list of submitted rule data. The response code is the highest response code number that a single rule creation would have caused. If it is not equal to 201, at least one rule has an error.
// @Tags			Rules
// @Produce		json
// @Success		201		{object}	RuleCreateResponse
// @Failure		400		{object}	RuleCreateResponse
// @Failure		404		{object}	RuleCreateResponse
// @Failure		500		{object}	RuleCreateResponse
// @Param			rules	body		[]RuleEditable	true	"Rules"
// @Router			/v1/rules [post]
func CreateRules(c *gin.Context) {
	var rules []RuleEditable

	err := httputil.BindData(c, &rules)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RuleCreateResponse{}

	for _, editable := range rules {
		rule := editable.model()

		// Create the resource
		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRule(c, rule)
		r.Data = append(r.Data, RuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get rules
// @Description	Returns a list of rules
// @Tags			Rules
// @Produce		json
// @Success		200			{object}	RuleListResponse
// @Failure		400			{object}	RuleListResponse
// @Failure		500			{object}	RuleListResponse
// @Param			priority	query		uint	false	"Filter by priority"
// @Param			description	query		string	false	"Filter by description"
// @Param			keyword		query		string	false	"Filter by keyword"
// @Param			offset		query		uint	false	"The offset of the first Rule returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Rules to return. Defaults to 50.".
// @Router			/v1/rules [get]
func GetRules(c *gin.Context) {
	var filter RuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RuleListResponse{
			Error: &s,
		})
		return
	}

	// Get the parameters set in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	q := models.DB.
		Order("priority ASC, description ASC").
		Preload("Components", models.ComponentOrder).
		Where(&model, queryFields...)

	// Filter for description containing the query string or explicitly empty one
	if filter.Description != "" {
		q = q.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Description))
	} else if slices.Contains(setFields, "Description") {
		q = q.Where("description = ''")
	}

	// Keywords are stored serialized, so a substring match is the
	// closest the database can get us. False positives do not matter
	// for a filter.
	if filter.Keyword != "" {
		q = q.Where("keywords LIKE ?", fmt.Sprintf("%%%s%%", filter.Keyword))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	// Execute the query
	var rules []models.Rule
	err := q.Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Rule, 0)
	for _, rule := range rules {
		data = append(data, newRule(c, rule))
	}

	c.JSON(http.StatusOK, RuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get rule
// @Description	Returns a specific rule
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	RuleResponse
// @Failure		400	{object}	RuleResponse
// @Failure		404	{object}	RuleResponse
// @Failure		500	{object}	RuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/rules/{id} [get]
func GetRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	var rule models.Rule
	err = models.DB.Preload("Components", models.ComponentOrder).First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RuleResponse{Error: &s})
		return
	}
	data := newRule(c, rule)

	c.JSON(http.StatusOK, RuleResponse{
		Data: &data,
	})
}

// @Summary		Update rule
// @Description	Update a rule. Only values to be updated need to be specified. When components are specified, they replace all existing components of the rule.
// @Tags			Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	RuleResponse
// @Failure		400		{object}	RuleResponse
// @Failure		404		{object}	RuleResponse
// @Failure		500		{object}	RuleResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		RuleEditable	true	"Rule"
// @Router			/v1/rules/{id} [patch]
func UpdateRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	var data RuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	// Components are an association, gorm cannot update them with a
	// Select on the parent resource. They are replaced separately.
	fields := make([]any, 0, len(updateFields))
	var replaceComponents bool
	for _, field := range updateFields {
		if field == "Components" {
			replaceComponents = true
			continue
		}
		fields = append(fields, field)
	}

	model := data.model()

	if len(fields) > 0 {
		err = models.DB.Model(&rule).Select("", fields...).Updates(model).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), RuleResponse{
				Error: &e,
			})
			return
		}
	}

	if replaceComponents {
		components := model.Components
		err = models.DB.Model(&rule).Association("Components").Unscoped().Replace(&components)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), RuleResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Preload("Components", models.ComponentOrder).First(&rule, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newRule(c, rule)
	c.JSON(http.StatusOK, RuleResponse{
		Data: &apiResource,
	})
}

// @Summary		Delete rule
// @Description	Deletes a rule
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/rules/{id} [delete]
func DeleteRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
