// Package symbol provides the symbol table shared between the parser and
// the IR builder. Names are interned once and identified everywhere else
// by a stable integer id, so string constants in the IR reference symbols
// rather than raw text.
package symbol

import (
	"fmt"
	"io"
)

// Symbol is one interned name with its stable integer identifier.
type Symbol struct {
	id   int
	name string
}

// ID returns the symbol's stable integer identifier.
func (s *Symbol) ID() int {
	return s.id
}

// Name returns the interned name.
func (s *Symbol) Name() string {
	return s.name
}

func (s *Symbol) String() string {
	return fmt.Sprintf("symbol(%d, %q)", s.id, s.name)
}

// Table interns names and assigns identifiers in insertion order. The IR
// builder consumes a Table read-only; only the parser adds entries.
type Table struct {
	symbols []*Symbol
	byName  map[string]*Symbol
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{byName: map[string]*Symbol{}}
}

// Intern returns the symbol for the given name, creating it on first use.
// Identifiers are assigned in insertion order and never change.
func (t *Table) Intern(name string) *Symbol {
	if s, ok := t.byName[name]; ok {
		return s
	}
	s := &Symbol{id: len(t.symbols), name: name}
	t.symbols = append(t.symbols, s)
	t.byName[name] = s
	return s
}

// Lookup returns the symbol for the given name, if it has been interned.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// Symbol returns the symbol with the given identifier, if it exists.
func (t *Table) Symbol(id int) (*Symbol, bool) {
	if id < 0 || id >= len(t.symbols) {
		return nil, false
	}
	return t.symbols[id], true
}

// Count returns the number of interned symbols.
func (t *Table) Count() int {
	return len(t.symbols)
}

// Print writes the table contents to w, one symbol per line.
func (t *Table) Print(w io.Writer) {
	fmt.Fprintln(w, "symbols:")
	for _, s := range t.symbols {
		fmt.Fprintf(w, "   [%d] %s\n", s.id, s.name)
	}
}
