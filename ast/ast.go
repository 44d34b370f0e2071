// Package ast defines the syntax tree representation of Lupine code that
// the IR builder consumes. The parser produces these nodes with name and
// string-literal symbols already resolved against the symbol table.
package ast

import (
	"fmt"
	"strings"

	"github.com/lupine-lang/lupine/internal/token"
	"github.com/lupine-lang/lupine/symbol"
)

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node. Statements cause side effects but
// do not evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// String is an expression node that holds a string literal. The parser
// interns the literal text into the symbol table, so the IR references
// the string by its symbol identifier.
type String struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text, without quotes
	Symbol   *symbol.Symbol // interned literal, set by the parser
}

func (x *String) exprNode() {}

func (x *String) Pos() token.Position { return x.ValuePos }
func (x *String) End() token.Position { return x.ValuePos.Advance(len(x.Literal) + 2) }

func (x *String) String() string { return fmt.Sprintf("%q", x.Literal) }

// Number is an expression node that holds a numeric literal.
type Number struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text
	Value    float64        // the parsed value
}

func (x *Number) exprNode() {}

func (x *Number) Pos() token.Position { return x.ValuePos }
func (x *Number) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Number) String() string {
	if x.Literal != "" {
		return x.Literal
	}
	return fmt.Sprintf("%v", x.Value)
}

// Ident is an expression node that refers to a variable by name. The
// parser resolves the name against the symbol table and marks whether it
// refers to a global.
type Ident struct {
	NamePos  token.Position // position of the name
	Name     string         // the referenced name
	Symbol   *symbol.Symbol // interned name, set by the parser
	IsGlobal bool           // true when the name resolves to a global
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Ident) String() string { return x.Name }

// NameRef is an expression node that wraps a name used as a value, such
// as the callee of a call expression.
type NameRef struct {
	Target Expr // the wrapped reference, usually an *Ident
}

func (x *NameRef) exprNode() {}

func (x *NameRef) Pos() token.Position { return x.Target.Pos() }
func (x *NameRef) End() token.Position { return x.Target.End() }

func (x *NameRef) String() string { return x.Target.String() }

// ExprList is a comma-separated sequence of expressions, evaluated
// left-to-right in source order.
type ExprList struct {
	Exprs []Expr
}

func (x *ExprList) exprNode() {}

func (x *ExprList) Pos() token.Position {
	if len(x.Exprs) > 0 {
		return x.Exprs[0].Pos()
	}
	return token.NoPos
}

func (x *ExprList) End() token.Position {
	if n := len(x.Exprs); n > 0 {
		return x.Exprs[n-1].End()
	}
	return token.NoPos
}

func (x *ExprList) String() string {
	parts := make([]string, len(x.Exprs))
	for i, expr := range x.Exprs {
		parts[i] = expr.String()
	}
	return strings.Join(parts, ", ")
}

// Call is an expression node representing a function call. Args may be
// nil (no arguments), a single expression, or an *ExprList.
type Call struct {
	Fun    Expr           // the callee expression
	Args   Expr           // nil, a single expression, or an *ExprList
	RParen token.Position // position of the closing parenthesis
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return x.RParen.Advance(1) }

func (x *Call) String() string {
	args := ""
	if x.Args != nil {
		args = x.Args.String()
	}
	return fmt.Sprintf("%s(%s)", x.Fun.String(), args)
}

// ExprStmt is a statement node that wraps an expression evaluated for
// its side effects.
type ExprStmt struct {
	X Expr
}

func (x *ExprStmt) stmtNode() {}

func (x *ExprStmt) Pos() token.Position { return x.X.Pos() }
func (x *ExprStmt) End() token.Position { return x.X.End() }

func (x *ExprStmt) String() string { return x.X.String() }

// Block is a statement node holding an optional leading initializer
// chain followed by an optional statement. Either half may be absent.
type Block struct {
	StartPos token.Position // position of the block's first token
	Init     Node           // leading statements, possibly another *Block
	Stmt     Node           // the trailing statement
}

func (x *Block) stmtNode() {}

func (x *Block) Pos() token.Position { return x.StartPos }

func (x *Block) End() token.Position {
	if x.Stmt != nil {
		return x.Stmt.End()
	}
	if x.Init != nil {
		return x.Init.End()
	}
	return x.StartPos
}

func (x *Block) String() string {
	var b strings.Builder
	if x.Init != nil {
		b.WriteString(x.Init.String())
	}
	if x.Stmt != nil {
		if x.Init != nil {
			b.WriteString("; ")
		}
		b.WriteString(x.Stmt.String())
	}
	return b.String()
}

// ParamList holds a function's parameter names and whether the function
// accepts variadic arguments.
type ParamList struct {
	LParen token.Position // position of the opening parenthesis
	Names  []*Ident       // declared parameter names, in order
	Vararg bool           // true when the list ends with "..."
}

func (x *ParamList) Pos() token.Position { return x.LParen }

func (x *ParamList) End() token.Position {
	if n := len(x.Names); n > 0 {
		return x.Names[n-1].End()
	}
	return x.LParen.Advance(1)
}

func (x *ParamList) String() string {
	parts := make([]string, 0, len(x.Names)+1)
	for _, name := range x.Names {
		parts = append(parts, name.Name)
	}
	if x.Vararg {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}

// FunctionBody is an expression node representing a nested function
// definition: its parameter list and its body block.
type FunctionBody struct {
	FuncPos token.Position // position of the "function" keyword
	Params  *ParamList     // parameter metadata, never nil in parsed code
	Body    Node           // the function body block
}

func (x *FunctionBody) exprNode() {}

func (x *FunctionBody) Pos() token.Position { return x.FuncPos }

func (x *FunctionBody) End() token.Position {
	if x.Body != nil {
		return x.Body.End()
	}
	return x.Params.End()
}

func (x *FunctionBody) String() string {
	body := ""
	if x.Body != nil {
		body = x.Body.String()
	}
	return fmt.Sprintf("function (%s) %s end", x.Params.String(), body)
}
