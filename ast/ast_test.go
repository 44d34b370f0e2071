package ast

import (
	"testing"

	"github.com/lupine-lang/lupine/internal/token"
	"github.com/lupine-lang/lupine/symbol"
	"github.com/stretchr/testify/require"
)

func TestStringRenderings(t *testing.T) {
	table := symbol.NewTable()
	printIdent := &Ident{Name: "print", Symbol: table.Intern("print"), IsGlobal: true}
	call := &Call{
		Fun:  &NameRef{Target: printIdent},
		Args: &String{Literal: "hi", Symbol: table.Intern("hi")},
	}
	require.Equal(t, `print("hi")`, call.String())

	list := &ExprList{Exprs: []Expr{
		&Number{Value: 1, Literal: "1"},
		&Number{Value: 2, Literal: "2"},
	}}
	require.Equal(t, "1, 2", list.String())

	params := &ParamList{Names: []*Ident{{Name: "a"}, {Name: "b"}}, Vararg: true}
	require.Equal(t, "a, b, ...", params.String())

	fn := &FunctionBody{Params: params, Body: &Block{Stmt: &ExprStmt{X: list}}}
	require.Equal(t, "function (a, b, ...) 1, 2 end", fn.String())
}

func TestPositions(t *testing.T) {
	pos := token.Position{Line: 2, Column: 4}
	ident := &Ident{NamePos: pos, Name: "value"}
	require.Equal(t, pos, ident.Pos())
	require.Equal(t, pos.Advance(5), ident.End())

	str := &String{ValuePos: pos, Literal: "hi"}
	// The literal's extent includes its two quote characters.
	require.Equal(t, pos.Advance(4), str.End())

	empty := &Block{StartPos: pos}
	require.Equal(t, pos, empty.Pos())
	require.Equal(t, pos, empty.End())
}

func TestBlockString(t *testing.T) {
	block := &Block{
		Init: &ExprStmt{X: &Number{Literal: "1"}},
		Stmt: &ExprStmt{X: &Number{Literal: "2"}},
	}
	require.Equal(t, "1; 2", block.String())
}
