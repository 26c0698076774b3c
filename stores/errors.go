package stores

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTableNotFound    = errors.New("table not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrNotEnoughTables  = errors.New("at least 2 tables are required to merge")
	ErrInvalidCapacity  = errors.New("capacity must be a positive number of seats")
	ErrCapacityTooLarge = errors.New("new capacity must be less than current capacity")
)

// PartialFailureError reports a multi-call sequence that failed after some
// of its server writes already succeeded. The server is left in an
// inconsistent state that only a refetch or manual action can reconcile,
// so the error names exactly which steps landed.
type PartialFailureError struct {
	Op        string
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialFailureError) Error() string {
	if len(e.Completed) == 0 {
		return fmt.Sprintf("%s: step %q failed: %v", e.Op, e.Failed, e.Err)
	}
	return fmt.Sprintf("%s: step %q failed after [%s] completed: %v",
		e.Op, e.Failed, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
