package compiler

import (
	"testing"

	"github.com/lupine-lang/lupine/op"
	"github.com/stretchr/testify/require"
)

func TestSectionAppend(t *testing.T) {
	s := NewSection()
	require.Equal(t, 0, s.Len())

	s.Append(ABC{Op: op.VarArgPrep})
	s.Append(ABx{Op: op.LoadK, A: 0, Bx: 3})
	require.Equal(t, 2, s.Len())
	require.Equal(t, ABC{Op: op.VarArgPrep}, s.At(0))
	require.Equal(t, ABx{Op: op.LoadK, A: 0, Bx: 3}, s.At(1))
}

func TestSectionJoin(t *testing.T) {
	first := NewSection(ABC{Op: op.VarArgPrep}, AsBx{Op: op.LoadI, A: 0, SBx: 1})
	second := NewSection(ABC{Op: op.Return, B: 1})

	joined := Join(first, second)
	require.Equal(t, 3, joined.Len())
	require.Equal(t, ABC{Op: op.Return, B: 1}, joined.At(2))
}

func TestSectionJoinNilOperands(t *testing.T) {
	s := NewSection(ABC{Op: op.Return, B: 1})

	require.Equal(t, s, Join(nil, s))
	require.Equal(t, s, Join(s, nil))
	require.Nil(t, Join(nil, nil))
}

func TestNilSectionLen(t *testing.T) {
	var s *Section
	require.Equal(t, 0, s.Len())
	require.Nil(t, s.Instructions())
}
