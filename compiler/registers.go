package compiler

import (
	"fmt"

	"github.com/lupine-lang/lupine/errors"
)

// MaxRegisters is the register-file extent of one prototype. Register
// operands are 8-bit, so topRegister may never exceed this value.
const MaxRegisters = 255

// allocate reserves n contiguous registers and returns the first one as
// the base of the block. Registers are allocated and freed in strict
// LIFO order matching the tree walk's lexical nesting.
func (p *Prototype) allocate(n int) (int, error) {
	top := p.topRegister
	if top+n > MaxRegisters {
		return 0, &errors.CompileError{
			Code:    errors.E2101,
			Message: fmt.Sprintf("out of registers when trying to allocate %d registers", n),
			Proto:   p.id,
		}
	}
	p.topRegister += n
	if p.topRegister > p.maxStackSize {
		p.maxStackSize = p.topRegister
	}
	return top, nil
}

// free releases the n most recently allocated registers.
func (p *Prototype) free(n int) error {
	if p.topRegister-n < 0 {
		return &errors.CompileError{
			Code:    errors.E2102,
			Message: fmt.Sprintf("attempt to free %d registers setting the stack size below the minimum of 0", n),
			Proto:   p.id,
		}
	}
	p.topRegister -= n
	return nil
}
