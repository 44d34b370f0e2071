package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileErrorString(t *testing.T) {
	err := &CompileError{
		Code:    E2101,
		Message: "out of registers when trying to allocate 3 registers",
		Proto:   "main.0",
	}
	require.Equal(t,
		"compile error: out of registers when trying to allocate 3 registers\n\nproto: main.0",
		err.Error())
}

func TestCompileErrorWithLocation(t *testing.T) {
	err := &CompileError{
		Code:    E2103,
		Message: `no lowering for local reference "x"`,
		Proto:   "main",
		Line:    3,
		Column:  7,
	}
	require.Equal(t,
		"compile error: no lowering for local reference \"x\"\n\nproto: main\n\nlocation: 3:7 (line 3, column 7)",
		err.Error())
}

func TestIsCode(t *testing.T) {
	err := &CompileError{Code: E2102, Message: "attempt to free 1 registers"}
	require.True(t, IsCode(err, E2102))
	require.False(t, IsCode(err, E2101))
	require.False(t, IsCode(nil, E2102))
}

func TestDescriptions(t *testing.T) {
	require.Equal(t, "register exhausted", E2101.Description())
	require.Equal(t, "register underflow", E2102.Description())
	require.Equal(t, "unsupported reference", E2103.Description())
}
