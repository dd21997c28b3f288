package kernel

import (
	"fmt"
	"time"

	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

var ErrDateRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"date range must be created via NewDateRange constructor")

// DateRange is an inclusive calendar window, for example a delivery slot.
type DateRange struct { //nolint:recvcheck //using for validation
	from  time.Time
	to    time.Time
	guard guard.ConstructorGuard
}

// NewDateRange truncates both bounds to calendar days. from must not be after to.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if from.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("dateFrom")
	}
	if to.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("dateTo")
	}

	from, to = Day(from), Day(to)
	if to.Before(from) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"dateTo",
			fmt.Errorf("%s is before %s", to.Format(time.DateOnly), from.Format(time.DateOnly)),
		)
	}

	return DateRange{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

func (r DateRange) Validate() error {
	return r.guard.Validate(ErrDateRangeIsNotConstructed)
}

func (r DateRange) From() time.Time {
	return r.from
}

func (r DateRange) To() time.Time {
	return r.to
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.from.Format(time.DateOnly), r.to.Format(time.DateOnly))
}

// Day strips the clock part of t, keeping its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
