package kernel

import (
	"strconv"

	"wholesale/internal/pkg/errs"
)

// ID identifies a persisted row. IDs are assigned by the store; zero means
// "not persisted yet".
type ID int64

func (id ID) IsZero() bool {
	return id == 0
}

// Validate reports a ValueIsRequiredError naming param when id is not a
// positive store identifier.
func (id ID) Validate(param string) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a positive decimal identifier.
func ParseID(param, s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	id := ID(n)
	if err = id.Validate(param); err != nil {
		return 0, err
	}
	return id, nil
}
