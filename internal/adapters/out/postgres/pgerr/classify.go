// Package pgerr translates PostgreSQL and driver failures into the error kinds
// of internal/pkg/errs.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes and classes the store can answer with.
const (
	classIntegrityConstraint  = "23"
	classConnectionException  = "08"
	classInsufficientResource = "53"

	codeTooManyConnections  = "53300"
	codeSerializationFail   = "40001"
	codeDeadlockDetected    = "40P01"
	codeAdminShutdown       = "57P01"
	codeCrashShutdown       = "57P02"
	codeCannotConnectNow    = "57P03"
	codeLockNotAvailable    = "55P03"
	codeQueryCanceled       = "57014"
	codeIdleSessionTimeout  = "57P05"
	codeIdleInTxTimeout     = "25P03"
	codeReadOnlyTransaction = "25006"
)

// Classifier hands Classify to code that only knows ports.ErrorClassifier.
var Classifier ports.ErrorClassifier = ports.ErrorClassifierFunc(Classify)

// Classify maps err to a store error kind. Context errors, domain errors and
// record-not-found are returned as they are; anything unrecognised is wrapped
// with op.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gorm.ErrRecordNotFound) || isClassified(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(op, pgErr, err)
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return errs.NewConstraintViolationError(op, err)
	case errors.Is(err, driver.ErrBadConn), pgconn.Timeout(err), pgconn.SafeToRetry(err):
		return errs.NewTransientStoreError(op, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return errs.NewTransientStoreError(op, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errs.NewTransientStoreError(op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func classifyPgError(op string, pgErr *pgconn.PgError, err error) error {
	code := pgErr.Code

	switch {
	case strings.HasPrefix(code, classIntegrityConstraint):
		name := pgErr.ConstraintName
		if name == "" {
			name = pgErr.ColumnName
		}
		if name == "" {
			name = code
		}
		return errs.NewConstraintViolationError(name, err)

	case code == codeTooManyConnections, strings.HasPrefix(code, classInsufficientResource):
		return errs.NewResourceExhaustedError(op, err)

	case strings.HasPrefix(code, classConnectionException),
		code == codeSerializationFail,
		code == codeDeadlockDetected,
		code == codeAdminShutdown,
		code == codeCrashShutdown,
		code == codeCannotConnectNow,
		code == codeLockNotAvailable,
		code == codeIdleSessionTimeout,
		code == codeIdleInTxTimeout,
		code == codeReadOnlyTransaction:
		return errs.NewTransientStoreError(op, err)

	case code == codeQueryCanceled:
		return fmt.Errorf("%s: %w", op, context.Canceled)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isClassified(err error) bool {
	return errors.Is(err, errs.ErrConstraintViolation) ||
		errors.Is(err, errs.ErrTransientStore) ||
		errors.Is(err, errs.ErrResourceExhausted) ||
		errors.Is(err, errs.ErrCommitFailed) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errs.IsValidation(err)
}
