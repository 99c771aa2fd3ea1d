package engine

import (
	"errors"
	"runtime"
	"sync"
)

// BatchError reports the failure of a single order in a batch.
type BatchError struct {
	OrderID string `json:"orderId"`
	Err     error  `json:"-"`
	Message string `json:"error"`
}

func (e BatchError) Error() string {
	return e.Message
}

func (e BatchError) Unwrap() error {
	return e.Err
}

// BatchResult is the outcome of processing a batch of orders.
// Breakdowns are in input order. Skipped lists the IDs of fully
// refunded orders, Failed the orders that could not be processed.
// A failed or skipped order never aborts the rest of the batch.
type BatchResult struct {
	Breakdowns []Breakdown  `json:"breakdowns"`
	Skipped    []string     `json:"skipped"`
	Failed     []BatchError `json:"failed"`
}

// ProcessBatch parses, matches and computes every order in the batch.
//
// Orders are independent, so they are processed concurrently with a
// bounded number of workers. The rule list is shared read-only across
// workers and the results are reassembled in input order.
func ProcessBatch(orders []OrderInput, rules []Rule, opts Options) BatchResult {
	type outcome struct {
		breakdown Breakdown
		err       error
	}

	outcomes := make([]outcome, len(orders))

	workers := runtime.NumCPU()
	if workers > len(orders) {
		workers = len(orders)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := range orders {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			outcomes[i].breakdown, outcomes[i].err = processOrder(orders[i], rules, opts)
		}(i)
	}

	wg.Wait()

	result := BatchResult{
		Breakdowns: make([]Breakdown, 0, len(orders)),
		Skipped:    make([]string, 0),
		Failed:     make([]BatchError, 0),
	}

	for i, o := range outcomes {
		switch {
		case o.err == nil:
			result.Breakdowns = append(result.Breakdowns, o.breakdown)
		case errors.Is(o.err, ErrOrderRefunded):
			result.Skipped = append(result.Skipped, orders[i].ID)
		default:
			result.Failed = append(result.Failed, BatchError{
				OrderID: orders[i].ID,
				Err:     o.err,
				Message: o.err.Error(),
			})
		}
	}

	return result
}

func processOrder(input OrderInput, rules []Rule, opts Options) (Breakdown, error) {
	order, err := ParseOrder(input)
	if err != nil {
		return Breakdown{}, err
	}

	var matched *Rule
	if rule, ok := Match(order.LineItems, rules); ok {
		matched = &rule
	}

	return Compute(order, matched, opts)
}
