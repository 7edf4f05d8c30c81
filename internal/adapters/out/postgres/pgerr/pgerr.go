// Package pgerr translates driver and gorm errors into the kitchen error taxonomy.
//
// Foreign key violations mean the write referenced a record that does not exist
// and become errs.ObjectNotFoundError. Constraint violations caused by the input
// become errs.ValueIsInvalidError. Everything else, including connection failures
// and cancelled contexts, is an I/O problem and becomes errs.StoreUnavailableError.
package pgerr

import (
	"errors"
	"fmt"

	"kitchen/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Translate classifies err raised while performing operation. It returns nil for nil.
// gorm.ErrRecordNotFound is passed through untouched so callers can attach the id
// they were looking for.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if isClassified(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			table := pgErr.TableName
			if table == "" {
				table = "referenced record"
			}
			return errs.NewObjectNotFoundErrorWithCause(table,
				fmt.Sprintf("constraint: %s", pgErr.ConstraintName), err)
		case pgerrcode.UniqueViolation,
			pgerrcode.CheckViolation,
			pgerrcode.NotNullViolation,
			pgerrcode.InvalidTextRepresentation:
			return errs.NewValueIsInvalidErrorWithCause(operation, err)
		}
	}

	return errs.NewStoreUnavailableError(operation, err)
}

// NotFound converts gorm.ErrRecordNotFound into errs.ObjectNotFoundError for the
// given entity and id; other errors go through Translate.
func NotFound(operation, paramName string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return Translate(operation, err)
}

func isClassified(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrNoOp) ||
		errors.Is(err, errs.ErrStoreUnavailable)
}
