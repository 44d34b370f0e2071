package compiler

import "github.com/lupine-lang/lupine/op"

// Instruction is a single IR operation. Exactly one of the four concrete
// layouts implements it; the layout is fixed at construction and
// determines which operand fields are meaningful.
type Instruction interface {
	instruction()
}

// ABC is the three-register layout. A, B and C each address a register
// or encode a small count, depending on the opcode.
type ABC struct {
	Op      op.Code
	A, B, C int
}

// ABx pairs one register operand with an unsigned 16-bit immediate, used
// for constant-pool and closure indices.
type ABx struct {
	Op op.Code
	A  int
	Bx uint16
}

// AsBx pairs one register operand with a signed 16-bit immediate, used
// for small integer literals that bypass the constant pool.
type AsBx struct {
	Op  op.Code
	A   int
	SBx int16
}

// Word is an opcode-less continuation carrying one raw 32-bit value. It
// exists only immediately after a LoadKX instruction whose constant-pool
// index does not fit the 16-bit immediate; the pair is never split.
type Word struct {
	Value uint32
}

func (ABC) instruction()  {}
func (ABx) instruction()  {}
func (AsBx) instruction() {}
func (Word) instruction() {}

// Section is an ordered sequence of instructions exclusively owned by
// one prototype.
type Section struct {
	instructions []Instruction
}

// NewSection creates a section holding the given instructions.
func NewSection(instrs ...Instruction) *Section {
	return &Section{instructions: instrs}
}

// Append adds one instruction to the end of the section.
func (s *Section) Append(instr Instruction) {
	s.instructions = append(s.instructions, instr)
}

// Len returns the number of instructions in the section.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.instructions)
}

// At returns the instruction at the given index.
func (s *Section) At(i int) Instruction {
	return s.instructions[i]
}

// Instructions returns the section's instructions in order.
func (s *Section) Instructions() []Instruction {
	if s == nil {
		return nil
	}
	return s.instructions
}

// Join concatenates two sections, producing one whose size is the sum of
// the two operands' sizes. Either operand may be nil, in which case the
// other is returned unchanged.
func Join(first, second *Section) *Section {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	first.instructions = append(first.instructions, second.instructions...)
	return first
}
