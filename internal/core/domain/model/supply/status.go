package supply

import (
	"fmt"
	"strings"

	"wholesale/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Ordered
	Shipped
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Ordered:   "ordered",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getStatusAliases() map[string]Status {
	return map[string]Status{
		"заказан":   Ordered,
		"отправлен": Shipped,
		"доставлен": Delivered,
		"отменен":   Cancelled,
		"отменён":   Cancelled,
		"canceled":  Cancelled,
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal states have no outgoing edges
	return map[Status][]Status{
		Ordered: {Shipped, Cancelled},
		Shipped: {Delivered, Cancelled},
	}
}

// ParseStatus maps a name to a Status. An empty name means Ordered.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Ordered, nil
	}
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	if status, ok := getStatusAliases()[name]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a supply status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
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
	return s == Delivered || s == Cancelled
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

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
