package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/splitledger/backend/internal/engine"
	"github.com/splitledger/backend/internal/exporter"
	"github.com/splitledger/backend/internal/httputil"
	"github.com/splitledger/backend/internal/metrics"
	"github.com/splitledger/backend/internal/models"
)

// RegisterBreakdownRoutes registers the routes for breakdowns with
// the RouterGroup that is passed.
func RegisterBreakdownRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBreakdownList)
		r.POST("", CreateBreakdowns)
	}

	{
		r.OPTIONS("/csv", OptionsBreakdownCSV)
		r.POST("/csv", CreateBreakdownCSV)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Breakdowns
// @Success		204
// @Router			/v1/breakdowns [options]
func OptionsBreakdownList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Breakdowns
// @Success		204
// @Router			/v1/breakdowns/csv [options]
func OptionsBreakdownCSV(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Compute breakdowns
// @Description	Computes the allocation breakdown for every submitted order. Fully refunded orders are skipped, orders with malformed data are reported as failed. Neither aborts the rest of the batch.
// @Tags			Breakdowns
// @Accept			json
// @Produce		json
// @Success		200		{object}	BreakdownResponse
// @Failure		400		{object}	BreakdownResponse
// @Failure		500		{object}	BreakdownResponse
// @Param			taxMode	query		string				false	"How multiple tax lines are applied, \"simultaneous\" (default) or \"sequential\""
// @Param			orders	body		[]engine.OrderInput	true	"Orders"
// @Router			/v1/breakdowns [post]
func CreateBreakdowns(c *gin.Context) {
	result, err := computeBreakdowns(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{
		Data: &result,
	})
}

// @Summary		Export breakdowns
// @Description	Computes the allocation breakdown for every submitted order and returns it as a CSV report, including a totals row.
// @Tags			Breakdowns
// @Accept			json
// @Produce		text/csv
// @Success		200		{string}	string
// @Failure		400		{object}	BreakdownResponse
// @Failure		500		{object}	BreakdownResponse
// @Param			taxMode	query		string				false	"How multiple tax lines are applied, \"simultaneous\" (default) or \"sequential\""
// @Param			orders	body		[]engine.OrderInput	true	"Orders"
// @Router			/v1/breakdowns/csv [post]
func CreateBreakdownCSV(c *gin.Context) {
	result, err := computeBreakdowns(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &e,
		})
		return
	}

	filename := fmt.Sprintf("breakdowns-%s.csv", time.Now().UTC().Format("2006-01-02"))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	err = exporter.WriteCSV(c.Writer, result.Breakdowns)
	if err != nil {
		// The header is already written at this point, all we can do
		// is log the failure
		_ = c.Error(err)
	}
}

// computeBreakdowns binds the batch request and runs it against the
// persisted rules.
func computeBreakdowns(c *gin.Context) (engine.BatchResult, error) {
	var query BreakdownQuery
	if err := c.BindQuery(&query); err != nil {
		return engine.BatchResult{}, err
	}

	mode, err := taxMode(query.TaxMode)
	if err != nil {
		return engine.BatchResult{}, err
	}

	var orders []engine.OrderInput
	err = httputil.BindData(c, &orders)
	if err != nil {
		return engine.BatchResult{}, err
	}

	if len(orders) == 0 {
		return engine.BatchResult{}, errNoOrders
	}

	rules, err := models.LoadRules()
	if err != nil {
		return engine.BatchResult{}, err
	}

	result := engine.ProcessBatch(orders, rules, engine.Options{TaxMode: mode})
	metrics.Record(len(result.Breakdowns), len(result.Skipped), len(result.Failed))

	return result, nil
}
