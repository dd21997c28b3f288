package order

import (
	"fmt"
	"strings"

	"wholesale/internal/pkg/errs"
)

// Status is the order lifecycle state. Transitions follow a fixed adjacency
// table; the zero value Unknown is never valid.
type Status int

const (
	Unknown Status = iota
	New
	Confirmed
	Shipped
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Completed: "completed",
	}
}

// legacy labels stored by the original back office
func getStatusAliases() map[string]Status {
	return map[string]Status{
		"новый":       New,
		"подтвержден": Confirmed,
		"подтверждён": Confirmed,
		"отправлен":   Shipped,
		"выполнен":    Completed,
		"завершен":    Completed,
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Completed and Unknown have no outgoing edges
	return map[Status][]Status{
		New:       {Confirmed},
		Confirmed: {Shipped},
		Shipped:   {Completed},
	}
}

// ParseStatus accepts the canonical lowercase names and the legacy labels.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	if status, ok := getStatusAliases()[name]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) IsFinal() bool {
	return s == Completed
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge s -> target exists.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsFinal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is final and cannot change", s),
		)
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition %s -> %s is not allowed", s, target),
		)
	}
	return target, nil
}
