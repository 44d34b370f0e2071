package compiler

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/lupine-lang/lupine/symbol"
)

// Prototype is one compiled function unit: its instruction section, its
// deduplicated constant pool, the prototypes of functions nested within
// it, vararg and parameter metadata, and register allocator state.
type Prototype struct {
	id       string
	parent   *Prototype
	children []*Prototype

	code       *Section
	constants  []Constant
	constIndex map[constantKey]int

	isVararg   bool
	paramCount int

	topRegister  int
	maxStackSize int

	// Set when the build of this prototype was aborted; an invalid
	// prototype carries no code.
	invalid bool
}

func newPrototype(id string) *Prototype {
	return &Prototype{
		id:         id,
		code:       NewSection(),
		constIndex: map[constantKey]int{},
	}
}

// newChild creates a prototype for a function nested within p and
// registers it in p's child list.
func (p *Prototype) newChild() *Prototype {
	child := newPrototype(fmt.Sprintf("%s.%d", p.id, len(p.children)))
	child.parent = p
	p.children = append(p.children, child)
	return child
}

// markInvalid abandons the prototype's build, discarding any partially
// emitted code so a failed build can never surface wrong bytecode.
func (p *Prototype) markInvalid() {
	p.invalid = true
	p.code = NewSection()
}

// ID returns the prototype's identifier, formed from its nesting path.
func (p *Prototype) ID() string {
	return p.id
}

// Parent returns the enclosing prototype, or nil for the root.
func (p *Prototype) Parent() *Prototype {
	return p.parent
}

// Children returns the nested prototypes in declaration order.
func (p *Prototype) Children() []*Prototype {
	return p.children
}

// Code returns the prototype's instruction section.
func (p *Prototype) Code() *Section {
	return p.code
}

// Constants returns the constant pool in insertion order.
func (p *Prototype) Constants() []Constant {
	return p.constants
}

// IsVararg reports whether the function accepts forwarded extra arguments.
func (p *Prototype) IsVararg() bool {
	return p.isVararg
}

// ParamCount returns the declared parameter count.
func (p *Prototype) ParamCount() int {
	return p.paramCount
}

// TopRegister returns the next free register.
func (p *Prototype) TopRegister() int {
	return p.topRegister
}

// MaxStackSize returns the high-water mark of the register file: the
// largest extent ever reserved during the build. It never decreases.
func (p *Prototype) MaxStackSize() int {
	return p.maxStackSize
}

// IsValid reports whether the prototype's build ran to completion.
func (p *Prototype) IsValid() bool {
	return !p.invalid
}

// Flatten returns every prototype in the tree as one ordered sequence,
// children strictly before their enclosing parent. A bytecode emitter
// assigning final indices by emission order can therefore resolve a
// child's index before encoding the parent's closure instruction.
func (p *Prototype) Flatten() []*Prototype {
	var protos []*Prototype
	for _, child := range p.children {
		protos = append(protos, child.Flatten()...)
	}
	return append(protos, p)
}

// Context is the top-level state for one compilation unit: the root
// prototype, the symbol table, and the fault side channel.
type Context struct {
	main       *Prototype
	symbols    *symbol.Table
	errorCount int
	faults     *multierror.Error
}

// Main returns the root prototype of the compilation unit.
func (ctx *Context) Main() *Prototype {
	return ctx.main
}

// Symbols returns the symbol table the build read from.
func (ctx *Context) Symbols() *symbol.Table {
	return ctx.symbols
}

// ErrorCount returns the number of faults recorded during the build.
func (ctx *Context) ErrorCount() int {
	return ctx.errorCount
}

// Err returns all recorded faults as a single error, or nil if the
// build completed without faults.
func (ctx *Context) Err() error {
	return ctx.faults.ErrorOrNil()
}

func (ctx *Context) recordFault(err error) {
	ctx.errorCount++
	ctx.faults = multierror.Append(ctx.faults, err)
}
