package ports

import "kitchen/internal/pkg/errs"

// MatchResult reports how many records a targeted write matched and how many it changed.
type MatchResult struct {
	Matched  int64
	Modified int64
}

// Err converts the result into the error taxonomy:
//   - nothing matched: ObjectNotFoundError
//   - matched but nothing modified: NoOpError
//   - otherwise nil
func (r MatchResult) Err(paramName string, id any) error {
	switch {
	case r.Matched == 0:
		return errs.NewObjectNotFoundError(paramName, id)
	case r.Modified == 0:
		return errs.NewNoOpError(paramName, id)
	default:
		return nil
	}
}
