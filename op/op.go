// Package op defines opcodes used by the Lupine IR builder and bytecode emitter.
package op

// Code is an integer opcode that indicates an operation to execute.
type Code uint8

const (
	Invalid Code = 0

	// Execution
	Call   Code = 1
	Return Code = 2

	// Load
	LoadK  Code = 10 // Load a constant-pool entry into a register
	LoadKX Code = 11 // Like LoadK, with the pool index in a trailing raw word
	LoadI  Code = 12 // Load a small signed integer immediate into a register

	// Globals
	GetGlobal Code = 20

	// Function entry
	ArgPrep    Code = 30
	VarArgPrep Code = 31

	// Closures
	Closure Code = 40
)

// Mode identifies the operand layout an instruction using the opcode carries.
type Mode uint8

const (
	// ModeABC carries three small integer operands, each addressing a
	// register or encoding a small count.
	ModeABC Mode = iota

	// ModeABx carries one register operand and an unsigned 16-bit
	// immediate, used for constant-pool and closure indices.
	ModeABx

	// ModeAsBx carries one register operand and a signed 16-bit immediate,
	// used for small integer literals that bypass the constant pool.
	ModeAsBx
)

// Info contains information about an opcode.
type Info struct {
	Code Code
	Name string
	Mode Mode
}

var infos = make([]Info, 256)

func init() {
	type opInfo struct {
		op   Code
		name string
		mode Mode
	}
	ops := []opInfo{
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
	for _, o := range ops {
		infos[o.op] = Info{
			Code: o.op,
			Name: o.name,
			Mode: o.mode,
		}
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}
