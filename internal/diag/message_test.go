package diag

import (
	"testing"

	"github.com/gmofishsauce/csfront/internal/position"
)

func TestOutputMessageString(t *testing.T) {
	m := OutputMessage{
		Severity:   Error,
		SourceName: "a.cs",
		Position:   position.Position{Line: 3, Column: 7},
		Code:       CodeExpectedSemicolon,
		Message:    "; expected",
	}
	want := "a.cs(3,7): error CS1002: ; expected"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOutputMessageCollectionOrderAndHasErrors(t *testing.T) {
	var c OutputMessageCollection
	c.Add(OutputMessage{Severity: Warning, SourceName: "a.cs", Code: CodeUseUppercaseL})
	if c.HasErrors() {
		t.Errorf("HasErrors() = true after only a warning")
	}
	c.Add(OutputMessage{Severity: Error, SourceName: "a.cs", Code: CodeExpectedSemicolon})
	if !c.HasErrors() {
		t.Errorf("HasErrors() = false after an error was added")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	msgs := c.Messages()
	if msgs[0].Code != CodeUseUppercaseL || msgs[1].Code != CodeExpectedSemicolon {
		t.Errorf("messages out of emission order: %+v", msgs)
	}
}

func TestOutputMessageCollectionRejectsEmptySourceName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on empty source name")
		}
	}()
	var c OutputMessageCollection
	c.Add(OutputMessage{Severity: Error, SourceName: ""})
}
