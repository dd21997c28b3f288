package errs

import (
	"errors"
	"fmt"
)

var (
	ErrConstraintViolation = errors.New("constraint violation")
	ErrTransientStore      = errors.New("transient store error")
	ErrResourceExhausted   = errors.New("resource exhausted")
	ErrCommitFailed        = errors.New("commit failed")
)

// ConstraintViolationError is raised when the store rejects a statement on an
// integrity constraint (foreign key, not-null, unique, check).
type ConstraintViolationError struct {
	Constraint string
	Cause      error
}

func NewConstraintViolationError(constraint string, cause error) *ConstraintViolationError {
	return &ConstraintViolationError{
		Constraint: constraint,
		Cause:      cause,
	}
}

func (e *ConstraintViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConstraintViolation, e.Constraint, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Constraint)
}

func (e *ConstraintViolationError) Unwrap() error {
	return ErrConstraintViolation
}

// TransientStoreError is a connectivity or contention failure. The whole
// operation may be retried.
type TransientStoreError struct {
	Op    string
	Cause error
}

func NewTransientStoreError(op string, cause error) *TransientStoreError {
	return &TransientStoreError{
		Op:    op,
		Cause: cause,
	}
}

func (e *TransientStoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrTransientStore, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransientStore, e.Op)
}

func (e *TransientStoreError) Unwrap() error {
	return ErrTransientStore
}

type ResourceExhaustedError struct {
	Resource string
	Cause    error
}

func NewResourceExhaustedError(resource string, cause error) *ResourceExhaustedError {
	return &ResourceExhaustedError{
		Resource: resource,
		Cause:    cause,
	}
}

func (e *ResourceExhaustedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrResourceExhausted, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrResourceExhausted, e.Resource)
}

func (e *ResourceExhaustedError) Unwrap() error {
	return ErrResourceExhausted
}

// CommitFailedError means the commit outcome is unknown. Callers must re-read
// before retrying.
type CommitFailedError struct {
	Cause error
}

func NewCommitFailedError(cause error) *CommitFailedError {
	return &CommitFailedError{Cause: cause}
}

func (e *CommitFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrCommitFailed, e.Cause)
	}
	return ErrCommitFailed.Error()
}

func (e *CommitFailedError) Unwrap() error {
	return ErrCommitFailed
}

// IsRetryable reports whether the failed operation can be repeated as a whole.
// CommitFailed is never retryable.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrCommitFailed) {
		return false
	}
	return errors.Is(err, ErrTransientStore) || errors.Is(err, ErrResourceExhausted)
}
