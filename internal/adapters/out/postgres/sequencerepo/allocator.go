package sequencerepo

import (
	"context"
	"errors"
	"strings"

	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// nextSQL upserts the counter and returns the post-increment value in one statement,
// so concurrent callers never observe the same value and a missing counter starts at 1.
const nextSQL = `
	INSERT INTO sequences (name, value) VALUES (?, 1)
	ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
	RETURNING value`

// GormSequenceAllocator implements ports.SequenceAllocator.
//
// It must be given the root connection, never a transaction: every increment commits
// on its own so identifiers stay unique even when the caller's transaction rolls back.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates an allocator on the given connection.
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next atomically increments counter and returns its new value.
func (a *GormSequenceAllocator) Next(ctx context.Context, counter string) (kernel.SequenceID, error) {
	counter = strings.TrimSpace(counter)
	if counter == "" {
		return 0, errs.NewValueIsRequiredError("counter")
	}

	var value int64
	result := a.db.WithContext(ctx).Raw(nextSQL, counter).Scan(&value)
	if result.Error != nil {
		return 0, pgerr.Translate("next sequence value", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewStoreUnavailableError("next sequence value",
			errors.New("counter upsert returned no row"))
	}

	return kernel.NewSequenceID(value)
}
