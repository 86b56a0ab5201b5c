package diag

// Severity classifies a Diagnostic per spec.md §7: Info is never fatal,
// Warning is gated by warning level and the current option scope (and
// may be promoted to Error), Error always shows and always sets
// Compiler.HasErrors.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
