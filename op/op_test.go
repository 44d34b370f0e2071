package op

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo(LoadK)
	require.Equal(t, "LOADK", info.Name)
	require.Equal(t, ModeABx, info.Mode)
	require.Equal(t, LoadK, info.Code)
}

func TestGetInfoAllOpcodes(t *testing.T) {
	tests := []struct {
		code Code
		name string
		mode Mode
	}{
		{Call, "CALL", ModeABC},
		{Return, "RETURN", ModeABC},
		{LoadK, "LOADK", ModeABx},
		{LoadKX, "LOADKX", ModeABx},
		{LoadI, "LOADI", ModeAsBx},
		{GetGlobal, "GETGLOBAL", ModeABx},
		{ArgPrep, "ARGPREP", ModeABC},
		{VarArgPrep, "VARARGPREP", ModeABC},
		{Closure, "CLOSURE", ModeABx},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetInfo(tt.code)
			require.Equal(t, tt.code, info.Code)
			require.Equal(t, tt.name, info.Name)
			require.Equal(t, tt.mode, info.Mode)
		})
	}
}

func TestGetInfoInvalid(t *testing.T) {
	info := GetInfo(Invalid)
	require.Equal(t, Code(0), info.Code)
	require.Equal(t, "", info.Name)
}
