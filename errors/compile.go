package errors

import (
	"fmt"
	"strings"
)

// CompileError represents a compilation error with build context.
type CompileError struct {
	Code    ErrorCode
	Message string
	Proto   string // id of the prototype being built when the error occurred
	Line    int
	Column  int
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("compile error: ")
	b.WriteString(e.Message)
	if e.Proto != "" {
		fmt.Fprintf(&b, "\n\nproto: %s", e.Proto)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "\n\nlocation: %d:%d (line %d, column %d)", e.Line, e.Column, e.Line, e.Column)
	}
	return b.String()
}

// IsCode reports whether err is a *CompileError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	ce, ok := err.(*CompileError)
	return ok && ce.Code == code
}
