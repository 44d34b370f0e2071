// Package errors defines the error types reported by the IR builder.
package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E2xxx: Compile errors
type ErrorCode string

const (
	// Compile errors (E2xxx)
	E2101 ErrorCode = "E2101" // Register exhausted
	E2102 ErrorCode = "E2102" // Register underflow
	E2103 ErrorCode = "E2103" // Unsupported reference
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E2101: "register exhausted",
	E2102: "register underflow",
	E2103: "unsupported reference",
}

// Description returns the short description for the error code.
func (c ErrorCode) Description() string {
	return codeDescriptions[c]
}
