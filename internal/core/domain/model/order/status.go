package order

import (
	"fmt"

	"icetube/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Transitions (anything not listed is invalid):
//
//	Pending        -> OutForDelivery, Completed, Cancelled
//	OutForDelivery -> Completed, Cancelled
//	Cancelled      -> Pending, OutForDelivery, Completed (reactivation)
//	Completed      -> none
//
// Moving into Cancelled from an active status restores stock; leaving
// Cancelled deducts it again. Completed accepts no transitions.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order.
	Pending

	// OutForDelivery means a rider has left with the order.
	OutForDelivery

	// Completed means the order was handed over. It is final.
	Completed

	// Cancelled orders gave their stock back and may be reactivated.
	Cancelled
)

// StockEffect is the inventory side effect a transition requires.
type StockEffect int

const (
	// NoStockEffect transitions leave the inventory alone.
	NoStockEffect StockEffect = iota

	// RestoreStock gives the order quantity back to the inventory item.
	RestoreStock

	// DeductStock takes the order quantity from the inventory item again.
	DeductStock
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		OutForDelivery: "out_for_delivery",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// getTransitions is the transition table. Missing entries are invalid moves;
// a status moving to itself is handled before the table is consulted.
func getTransitions() map[Status]map[Status]StockEffect {
	//nolint:exhaustive // Unknown and Completed have no outgoing transitions
	return map[Status]map[Status]StockEffect{
		Pending: {
			OutForDelivery: NoStockEffect,
			Completed:      NoStockEffect,
			Cancelled:      RestoreStock,
		},
		OutForDelivery: {
			Completed: NoStockEffect,
			Cancelled: RestoreStock,
		},
		Cancelled: {
			Pending:        DeductStock,
			OutForDelivery: DeductStock,
			Completed:      DeductStock,
		},
	}
}

// ParseStatus reads a status from its external representation
// ("pending", "out_for_delivery", "completed" or "cancelled").
// Anything else, including "unknown", is rejected.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the external representation, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the order has left the active part of the
// lifecycle (Completed or Cancelled).
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CheckTransition looks the move from s to target up in the transition table
// and returns the stock effect it requires. Moving to the same status is a
// valid no-op with NoStockEffect.
//
// Returns an errs.InvalidTransitionError when target is not a valid status or
// the table has no such move.
//
// Example:
//
//	effect, err := order.Pending.CheckTransition(order.Cancelled)
//	// effect == order.RestoreStock, err == nil
func (s Status) CheckTransition(target Status) (StockEffect, error) {
	if err := target.Validate(); err != nil {
		return NoStockEffect, errs.NewInvalidTransitionErrorWithCause(s.String(), target.String(), err)
	}
	if s == target {
		return NoStockEffect, nil
	}

	effect, ok := getTransitions()[s][target]
	if !ok {
		return NoStockEffect, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return effect, nil
}
