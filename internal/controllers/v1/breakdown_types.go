package v1

import (
	"github.com/splitledger/backend/internal/engine"
)

type BreakdownQuery struct {
	TaxMode string `form:"taxMode" example:"simultaneous" enums:"simultaneous,sequential"` // How multiple tax lines are applied. Defaults to "simultaneous".
}

type BreakdownResponse struct {
	Error *string             `json:"error" example:"the request must contain at least one order"` // The error, if any occurred
	Data  *engine.BatchResult `json:"data"`                                                        // The computed breakdowns
}
