// Package invariant defines the single panic type csfront's components
// use for programmer-error conditions that spec.md §7 says are "not
// recoverable": calling next-char before loading a source, pushing more
// than four option scopes, an overlapping scanner-state save, and
// similar misuse that indicates a bug in the caller rather than bad
// input. Domain errors (malformed source) never use this type — they
// go into a diag.OutputMessageCollection instead and the component
// recovers locally.
package invariant

import "fmt"

// Error is the panic value raised for an invariant violation.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "invariant violation: " + e.Msg
}

// Raise panics with a formatted Error. Conventionally called instead of
// panic(fmt.Sprintf(...)) so every internal-error panic in csfront is
// typed and catchable by compiler.Shell's top-level recover.
func Raise(format string, args ...interface{}) {
	panic(&Error{Msg: fmt.Sprintf(format, args...)})
}
