package ports_test

import (
	"testing"

	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResult_Err(t *testing.T) {
	require.ErrorIs(t, ports.MatchResult{}.Err("order", 1), errs.ErrObjectNotFound)
	require.ErrorIs(t, ports.MatchResult{Matched: 1}.Err("order", 1), errs.ErrNoOp)
	require.NoError(t, ports.MatchResult{Matched: 1, Modified: 1}.Err("order", 1))

	err := ports.MatchResult{Matched: 1}.Err("order", int64(7))
	assert.Equal(t, "no changes applied: order 7", err.Error())
}
