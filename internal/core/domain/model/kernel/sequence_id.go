package kernel

import (
	"strconv"

	"kitchen/internal/pkg/errs"
)

// SequenceID is an identifier minted by the sequence allocator. Values start at 1
// and are never reused, so any value below 1 is a construction error.
type SequenceID int64

// NewSequenceID validates v and converts it to a SequenceID.
func NewSequenceID(v int64) (SequenceID, error) {
	id := SequenceID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseSequenceID parses a decimal identifier, e.g. from a URL path segment.
func ParseSequenceID(param, s string) (SequenceID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	id := SequenceID(v)
	if id.Validate() != nil {
		return 0, errs.NewValueIsOutOfRangeError(param, v, 1, int64(^uint64(0)>>1))
	}
	return id, nil
}

func (id SequenceID) Int64() int64 {
	return int64(id)
}

func (id SequenceID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Validate rejects the zero value and negative ids.
func (id SequenceID) Validate() error {
	if id < 1 {
		return errs.NewValueIsOutOfRangeError("sequence id", int64(id), 1, int64(^uint64(0)>>1))
	}
	return nil
}
