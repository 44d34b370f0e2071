// Package dis renders compiled Lupine prototypes as human-readable text
// for diagnostics. The layout is fixed for tooling parity: a dashed
// separator, the prototype header, one line per instruction, the
// constant pool, a closing separator, then every child prototype
// recursively. Printing never mutates the prototype tree.
package dis

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lupine-lang/lupine/compiler"
	"github.com/lupine-lang/lupine/op"
)

var (
	separator = strings.Repeat("-", 64)

	opcodeColor = color.New(color.FgCyan)
	faultColor  = color.New(color.FgRed)
)

// Print writes the prototype and, recursively, each of its children to w.
func Print(proto *compiler.Prototype, w io.Writer) {
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "%-16s%7v\n", "vararg", proto.IsVararg())
	fmt.Fprintf(w, "%-16s%7d\n", "parameters", proto.ParamCount())
	fmt.Fprintf(w, "%-16s%7d\n", "max stack size", proto.MaxStackSize())
	if !proto.IsValid() {
		fmt.Fprintf(w, "%-16s%7v\n", faultColor.Sprint("invalid"), true)
	}

	fmt.Fprintln(w)
	for i, instr := range proto.Code().Instructions() {
		printInstruction(w, i+1, instr)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "constants:")
	for _, c := range proto.Constants() {
		printConstant(w, c)
	}
	fmt.Fprintln(w, separator)

	for _, child := range proto.Children() {
		Print(child, w)
	}
}

// PrintContext writes the compilation unit's symbol table followed by
// its whole prototype tree.
func PrintContext(ctx *compiler.Context, w io.Writer) {
	ctx.Symbols().Print(w)
	Print(ctx.Main(), w)
}

func printInstruction(w io.Writer, num int, instr compiler.Instruction) {
	fmt.Fprintf(w, "[%04d]     ", num)
	switch instr := instr.(type) {
	case compiler.ABC:
		fmt.Fprintf(w, "%s%10d %d %d\n", opcodeName(instr.Op), instr.A, instr.B, instr.C)
	case compiler.ABx:
		fmt.Fprintf(w, "%s%10d %d\n", opcodeName(instr.Op), instr.A, instr.Bx)
	case compiler.AsBx:
		fmt.Fprintf(w, "%s%10d %d\n", opcodeName(instr.Op), instr.A, instr.SBx)
	case compiler.Word:
		// Continuation words carry no opcode of their own.
		fmt.Fprintf(w, "%-10s%10d\n", "", instr.Value)
	default:
		panic(fmt.Sprintf("dis error: unknown instruction layout: %T", instr))
	}
}

func printConstant(w io.Writer, c compiler.Constant) {
	switch c := c.(type) {
	case compiler.StringConstant:
		fmt.Fprintf(w, "   string { %d }\n", c.SymbolID)
	case compiler.NumberConstant:
		fmt.Fprintf(w, "   number { %f }\n", c.Value)
	default:
		panic(fmt.Sprintf("dis error: unknown constant type: %T", c))
	}
}

func opcodeName(code op.Code) string {
	return opcodeColor.Sprintf("%-10s", op.GetInfo(code).Name)
}
