package v1

import (
	"errors"
	"net/http"

	"github.com/splitledger/backend/internal/engine"
	"github.com/splitledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Breakdown errors
var (
	errNoOrders       = errors.New("the request must contain at least one order")
	errInvalidTaxMode = errors.New("the taxMode parameter must be \"simultaneous\" or \"sequential\"")
)

func taxMode(value string) (engine.TaxMode, error) {
	switch value {
	case "", string(engine.TaxSimultaneous):
		return engine.TaxSimultaneous, nil
	case string(engine.TaxSequential):
		return engine.TaxSequential, nil
	default:
		return "", errInvalidTaxMode
	}
}
