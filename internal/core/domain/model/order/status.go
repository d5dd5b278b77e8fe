package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Placed ──┬──> Assigned ──┬──> Delivered
//	         │               └──> CancelledByUser
//	         ├──> CancelledByUser
//	         └──> CancelledByRestaurant
//
// Delivered, CancelledByUser, and CancelledByRestaurant are terminal:
// no transition leaves them. Status is a value object that validates
// state transitions and provides string representations for persistence
// and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status recorded when an order is created.
	Placed

	// Assigned indicates a courier has been assigned to the order.
	Assigned

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// CancelledByUser indicates the owning customer cancelled the order. Terminal.
	CancelledByUser

	// CancelledByRestaurant indicates the restaurant cancelled the order. Terminal.
	CancelledByRestaurant
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:               "Unknown",
		Placed:                "Placed",
		Assigned:              "Assigned",
		Delivered:             "Delivered",
		CancelledByUser:       "CancelledByUser",
		CancelledByRestaurant: "CancelledByRestaurant",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:                "Placed",
		Assigned:              "Assigned",
		Delivered:             "Delivered",
		CancelledByUser:       "CancelledByUser",
		CancelledByRestaurant: "CancelledByRestaurant",
	}
}

// transitions is the authoritative table of allowed status changes.
// A status absent from the table (the terminal statuses) has no
// outgoing transitions.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:   {Assigned, CancelledByUser, CancelledByRestaurant},
		Assigned: {Delivered, CancelledByUser},
	}
}

// StatusFromString parses the textual representation of a status as used
// by the API and persistence layers. Returns an error for unrecognized or
// invalid names, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, Assigned, Delivered, CancelledByUser,
// CancelledByRestaurant. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Orders in a terminal status are retained but can never change again.
func (s Status) IsTerminal() bool {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return false
	}
	return len(transitions()[s]) == 0
}

// IsCancellation reports whether the status records a cancellation outcome.
func (s Status) IsCancellation() bool {
	return s == CancelledByUser || s == CancelledByRestaurant
}

// CanTransitionTo reports whether the transition from s to requested is
// allowed by the state machine. It is a pure, deterministic predicate,
// total over all pairs of Status values: any pair outside the table is
// rejected, including transitions out of terminal statuses and any pair
// involving an invalid status.
func (s Status) CanTransitionTo(requested Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == requested {
			return true
		}
	}
	return false
}
