package compiler

import "math"

// Constant is one entry in a prototype's constant pool: a string
// identified by symbol id, or a number identified by exact value.
type Constant interface {
	constant()
}

// StringConstant references an interned name by its symbol identifier.
type StringConstant struct {
	SymbolID int
}

// NumberConstant holds an exact floating point value.
type NumberConstant struct {
	Value float64
}

func (StringConstant) constant() {}
func (NumberConstant) constant() {}

// constantKey identifies a pool entry for deduplication. Numbers are
// keyed on the exact bit pattern, so 0.0 and -0.0 are distinct entries.
type constantKey struct {
	isString bool
	symbolID int
	bits     uint64
}

func stringKey(symbolID int) constantKey {
	return constantKey{isString: true, symbolID: symbolID}
}

func numberKey(value float64) constantKey {
	return constantKey{bits: math.Float64bits(value)}
}

// internString returns the pool index for the given symbol identifier,
// appending a new entry on first use. Indices are 0-based insertion
// positions and stable thereafter.
func (p *Prototype) internString(symbolID int) int {
	return p.intern(stringKey(symbolID), StringConstant{SymbolID: symbolID})
}

// internNumber returns the pool index for the given value, appending a
// new entry on first use.
func (p *Prototype) internNumber(value float64) int {
	return p.intern(numberKey(value), NumberConstant{Value: value})
}

func (p *Prototype) intern(key constantKey, c Constant) int {
	if index, ok := p.constIndex[key]; ok {
		return index
	}
	index := len(p.constants)
	p.constants = append(p.constants, c)
	p.constIndex[key] = index
	return index
}
