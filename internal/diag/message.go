package diag

import (
	"fmt"

	"github.com/gmofishsauce/csfront/internal/position"
)

// OutputMessage is a single formatted diagnostic as it will be shown to
// the user (spec.md §3): severity, the source buffer and position it
// was raised at, the formatted message text, and (rarely) the Go error
// that triggered it, for diagnostics that wrap an I/O failure.
type OutputMessage struct {
	Severity   Severity
	SourceName string
	Position   position.Position
	Code       int
	Message    string
	Err        error
}

// String renders the message in the form spec.md §6 specifies:
// "<source>(<line>,<column>): <severity> CS<NNNN>: <formatted-message>".
func (m OutputMessage) String() string {
	return fmt.Sprintf("%s(%s): %s CS%04d: %s", m.SourceName, m.Position, m.Severity, m.Code, m.Message)
}

// OutputMessageCollection accumulates OutputMessages in emission order
// (spec.md §5, §7: "append-only and must preserve insertion order").
// Appending nil is rejected, matching spec.md §3's "rejects null
// entries".
type OutputMessageCollection struct {
	messages []OutputMessage
}

// Add appends msg to the collection. Since OutputMessage is a value
// type in this Go port (the source language's "null entry" rejection
// maps to "never append a zero-value placeholder"), Add instead rejects
// a message with an empty SourceName, which can never happen for a
// genuinely emitted diagnostic and signals a construction bug upstream.
func (c *OutputMessageCollection) Add(msg OutputMessage) {
	if msg.SourceName == "" {
		panic("diag: refusing to add an OutputMessage with no source name")
	}
	c.messages = append(c.messages, msg)
}

// Messages returns the accumulated messages in emission order. The
// returned slice must not be mutated by the caller.
func (c *OutputMessageCollection) Messages() []OutputMessage {
	return c.messages
}

// HasErrors reports whether any accumulated message has Error severity.
func (c *OutputMessageCollection) HasErrors() bool {
	for _, m := range c.messages {
		if m.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated messages.
func (c *OutputMessageCollection) Len() int {
	return len(c.messages)
}
