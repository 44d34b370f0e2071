package compiler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternStringIdempotent(t *testing.T) {
	p := newPrototype("t")

	index := p.internString(7)
	require.Equal(t, 0, index)
	require.Len(t, p.constants, 1)

	// Interning the same symbol again returns the same index without
	// growing the pool.
	require.Equal(t, 0, p.internString(7))
	require.Len(t, p.constants, 1)

	require.Equal(t, 1, p.internString(9))
	require.Len(t, p.constants, 2)
}

func TestInternNumberIdempotent(t *testing.T) {
	p := newPrototype("t")

	require.Equal(t, 0, p.internNumber(3.14))
	require.Equal(t, 0, p.internNumber(3.14))
	require.Len(t, p.constants, 1)
}

func TestNumberDedupIsExact(t *testing.T) {
	p := newPrototype("t")

	// Dedup compares bit patterns, so 0.0 and -0.0 are distinct entries
	// even though they compare equal numerically. This is a documented
	// limitation of the pool, not tolerance-based matching.
	posZero := p.internNumber(0.0)
	negZero := p.internNumber(math.Copysign(0, -1))
	require.Equal(t, 0, posZero)
	require.Equal(t, 1, negZero)
	require.Len(t, p.constants, 2)
}

func TestTagsDoNotCollide(t *testing.T) {
	p := newPrototype("t")

	// A string keyed by symbol id 5 and the number 5 share nothing.
	require.Equal(t, 0, p.internString(5))
	require.Equal(t, 1, p.internNumber(5.5))
	require.Equal(t, []Constant{
		StringConstant{SymbolID: 5},
		NumberConstant{Value: 5.5},
	}, p.constants)
}

func TestInsertionOrderIndices(t *testing.T) {
	p := newPrototype("t")

	for i := 0; i < 10; i++ {
		require.Equal(t, i, p.internNumber(float64(i)+0.5))
	}
	// Earlier indices stay stable as the pool grows.
	require.Equal(t, 3, p.internNumber(3.5))
}
