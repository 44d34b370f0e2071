// Package compiler lowers a Lupine syntax tree into register-based IR: a
// tree of function prototypes, each holding a fixed-width instruction
// sequence and a deduplicated constant pool, ready for bytecode emission.
//
// # Register Discipline
//
// Each prototype owns a stack-discipline register allocator. Temporary
// registers follow the tree walk's lexical nesting: an expression's
// registers are freed before control returns to its syntactic parent,
// except where a value must survive, such as a call's callee and
// argument registers, which are freed together once the call instruction
// has been emitted. The allocator tracks a high-water mark that becomes
// the prototype's stack size.
//
// # Fault Policy
//
// Allocator faults (register exhaustion or underflow) and references
// with no defined lowering are reported as *errors.CompileError values.
// Every fault increments the Context's error counter and is appended to
// its aggregated fault list, so a caller can ask "did any prototype
// fail" after the build. By default the first fault aborts the whole
// compilation. With ContinueOnError set, a fault inside a nested
// function body abandons only that child prototype - its partial code is
// discarded and the prototype marked invalid - and the build continues
// with syntactically later code in the parent, whose allocator state is
// untouched. Faults in the root prototype always abort, since no outer
// frame remains whose register arithmetic can be trusted. A failed build
// never yields wrong bytecode: invalid prototypes carry no code.
package compiler

import (
	"fmt"
	"math"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/lupine-lang/lupine/ast"
	"github.com/lupine-lang/lupine/errors"
	"github.com/lupine-lang/lupine/op"
	"github.com/lupine-lang/lupine/symbol"
)

// Compiler lowers AST nodes into an IR prototype tree.
type Compiler struct {
	// Top-level state for the compilation unit being built.
	ctx *Context

	// The prototype instructions are currently emitted into. This changes
	// as the builder enters and leaves nested function bodies.
	current *Prototype

	// Recover from faults at function-body boundaries instead of
	// aborting the whole compilation.
	continueOnError bool

	logger zerolog.Logger
}

// Config holds compiler configuration options.
type Config struct {
	// Symbols is the symbol table produced by the parser. The builder
	// consumes it read-only for constant interning. If nil, an empty
	// table is used.
	Symbols *symbol.Table

	// ContinueOnError keeps building after a fault inside a nested
	// function body, abandoning only that prototype. See the package
	// documentation for the exact semantics.
	ContinueOnError bool

	// Logger receives structured build events. If nil, logging is
	// disabled.
	Logger *zerolog.Logger
}

// Compile lowers the given AST node and returns the resulting Context
// holding the prototype tree. This is the standard entry point. Pass nil
// for cfg to use default settings.
func Compile(node ast.Node, cfg *Config) (*Context, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return c.Compile(node)
}

// New creates and returns a new Compiler. Pass nil for cfg to use defaults.
func New(cfg *Config) (*Compiler, error) {
	c := &Compiler{logger: zerolog.Nop()}
	var symbols *symbol.Table
	if cfg != nil {
		symbols = cfg.Symbols
		c.continueOnError = cfg.ContinueOnError
		if cfg.Logger != nil {
			c.logger = *cfg.Logger
		}
	}
	if symbols == nil {
		symbols = symbol.NewTable()
	}
	buildID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	c.logger = c.logger.With().Str("build_id", buildID.String()).Logger()
	c.ctx = &Context{main: newPrototype("main"), symbols: symbols}
	c.current = c.ctx.main
	return c, nil
}

// Compile builds the compilation unit's root prototype from the given
// node. Module-level code accepts and forwards extra arguments, so the
// root is always vararg and opens with a vararg-preparation instruction.
func (c *Compiler) Compile(node ast.Node) (*Context, error) {
	main := c.ctx.main
	main.isVararg = true
	main.code.Append(ABC{Op: op.VarArgPrep})

	// A whole-module node arrives as a function body whose block is the
	// module's code.
	if fb, ok := node.(*ast.FunctionBody); ok {
		node = fb.Body
	}

	if err := c.compile(node); err != nil {
		c.ctx.recordFault(err)
		main.markInvalid()
		c.logger.Error().Err(err).Str("proto", main.id).Msg("build aborted")
		return c.ctx, err
	}
	main.code.Append(ABC{Op: op.Return, B: 1})
	c.logger.Debug().
		Int("instructions", main.code.Len()).
		Int("constants", len(main.constants)).
		Int("prototypes", len(main.Flatten())).
		Int("faults", c.ctx.errorCount).
		Msg("build complete")
	return c.ctx, nil
}

// compile the given AST node and all its children.
func (c *Compiler) compile(node ast.Node) error {
	if node == nil {
		return nil
	}
	switch node := node.(type) {
	case *ast.ExprStmt:
		return c.compile(node.X)
	case *ast.ExprList:
		return c.compileExprList(node)
	case *ast.String:
		return c.compileString(node)
	case *ast.Number:
		return c.compileNumber(node)
	case *ast.Ident:
		return c.compileIdent(node)
	case *ast.NameRef:
		return c.compile(node.Target)
	case *ast.Call:
		return c.compileCall(node)
	case *ast.Block:
		return c.compileBlock(node)
	case *ast.FunctionBody:
		return c.compileFunctionBody(node)
	default:
		panic(fmt.Sprintf("compile error: unknown ast node type: %T", node))
	}
}

func (c *Compiler) compileExprList(node *ast.ExprList) error {
	// Elements lower left-to-right in source order; each one's side
	// effects and register placement are observable downstream.
	for _, expr := range node.Exprs {
		if err := c.compile(expr); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) compileString(node *ast.String) error {
	if node.Symbol == nil {
		return c.unsupportedReference(node, fmt.Sprintf("string literal %q has no interned symbol", node.Literal))
	}
	return c.emitLoadConstant(c.current.internString(node.Symbol.ID()))
}

func (c *Compiler) compileNumber(node *ast.Number) error {
	value := node.Value
	// Whole numbers small enough for the signed 16-bit immediate skip
	// the constant pool entirely.
	if value >= math.MinInt16 && value <= math.MaxInt16 && math.Floor(value) == value {
		reg, err := c.current.allocate(1)
		if err != nil {
			return err
		}
		c.current.code.Append(AsBx{Op: op.LoadI, A: reg, SBx: int16(value)})
		return nil
	}
	return c.emitLoadConstant(c.current.internNumber(value))
}

// emitLoadConstant allocates the destination register and emits a LoadK,
// or a LoadKX with a raw continuation word when the pool index does not
// fit the 16-bit immediate. Every instruction is a fixed 32-bit word, so
// larger indices need the continuation.
func (c *Compiler) emitLoadConstant(index int) error {
	reg, err := c.current.allocate(1)
	if err != nil {
		return err
	}
	if index <= math.MaxUint16 {
		c.current.code.Append(ABx{Op: op.LoadK, A: reg, Bx: uint16(index)})
		return nil
	}
	c.current.code.Append(ABx{Op: op.LoadKX, A: reg})
	c.current.code.Append(Word{Value: uint32(index)})
	return nil
}

func (c *Compiler) compileIdent(node *ast.Ident) error {
	if !node.IsGlobal {
		// Locals hold no register mapping at this stage; lowering one
		// would need an instruction this IR does not define. Fail loudly
		// instead of emitting an uninitialized instruction.
		return c.unsupportedReference(node, fmt.Sprintf("no lowering for local reference %q", node.Name))
	}
	if node.Symbol == nil {
		return c.unsupportedReference(node, fmt.Sprintf("global reference %q has no interned symbol", node.Name))
	}
	index := c.current.internString(node.Symbol.ID())
	if index > math.MaxUint16 {
		// GetGlobal has no extended-index encoding.
		return c.unsupportedReference(node, fmt.Sprintf("global reference %q requires constant index %d, beyond the 16-bit immediate", node.Name, index))
	}
	reg, err := c.current.allocate(1)
	if err != nil {
		return err
	}
	c.current.code.Append(ABx{Op: op.GetGlobal, A: reg, Bx: uint16(index)})
	return nil
}

func (c *Compiler) compileCall(node *ast.Call) error {
	argc := argCount(node.Args)

	// The callee lands at the current top register; arguments follow in
	// the registers immediately above it.
	base := c.current.topRegister

	if err := c.compile(node.Fun); err != nil {
		return err
	}
	if err := c.compile(node.Args); err != nil {
		return err
	}

	// B encodes argument count plus one; zero is reserved to mean "all
	// available up the stack" for forwarded varargs. C of 1 discards the
	// call's results, since statement-position calls retain none.
	c.current.code.Append(ABC{Op: op.Call, A: base, B: argc + 1, C: 1})

	// Callee and arguments are dead past the call instruction.
	return c.current.free(argc + 1)
}

func argCount(args ast.Expr) int {
	switch args := args.(type) {
	case nil:
		return 0
	case *ast.ExprList:
		return len(args.Exprs)
	default:
		return 1
	}
}

func (c *Compiler) compileBlock(node *ast.Block) error {
	if err := c.compile(node.Init); err != nil {
		return err
	}
	return c.compile(node.Stmt)
}

func (c *Compiler) compileFunctionBody(node *ast.FunctionBody) error {
	child := c.current.newChild()
	if params := node.Params; params != nil {
		child.isVararg = params.Vararg
		child.paramCount = len(params.Names)
	}

	// The argument-preparation instruction is always the function's
	// first; its A operand carries the declared parameter count.
	prep := op.ArgPrep
	if child.isVararg {
		prep = op.VarArgPrep
	}
	child.code.Append(ABC{Op: prep, A: child.paramCount})

	c.logger.Debug().Str("proto", child.id).Msg("begin prototype")

	// Lower the body into the child's own code section.
	c.current = child
	err := c.compile(node.Body)
	c.current = child.parent

	if err != nil {
		child.markInvalid()
		if !c.continueOnError {
			return err
		}
		c.ctx.recordFault(err)
		c.logger.Error().Err(err).Str("proto", child.id).Msg("prototype build abandoned")
		return nil
	}

	child.code.Append(ABC{Op: op.Return, B: 1})
	c.logger.Debug().
		Str("proto", child.id).
		Int("instructions", child.code.Len()).
		Int("constants", len(child.constants)).
		Int("max_stack", child.maxStackSize).
		Msg("prototype complete")

	// The closure value lands in a fresh register of the enclosing
	// prototype, referencing the child by its position in the child list.
	reg, err := c.current.allocate(1)
	if err != nil {
		return err
	}
	c.current.code.Append(ABx{Op: op.Closure, A: reg, Bx: uint16(len(c.current.children) - 1)})
	return nil
}

func (c *Compiler) unsupportedReference(node ast.Node, msg string) error {
	ce := &errors.CompileError{
		Code:    errors.E2103,
		Message: msg,
		Proto:   c.current.id,
	}
	if pos := node.Pos(); pos.IsValid() {
		ce.Line = pos.LineNumber()
		ce.Column = pos.ColumnNumber()
	}
	return ce
}
