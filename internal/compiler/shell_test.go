package compiler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gmofishsauce/csfront/internal/ast"
	"github.com/gmofishsauce/csfront/internal/source"
	"github.com/gmofishsauce/csfront/internal/token"
)

func TestParseProgramSingleBuffer(t *testing.T) {
	s := New(Config{WarningLevel: 4})
	files, err := s.ParseProgram([]source.Input{
		{Name: "a.cs", Reader: strings.NewReader("namespace N { class C { } }")},
	})
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("len(files) = %d, want 1", len(files))
	}
	if s.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", s.Sink().Messages())
	}
	ns := files[0].Data.(*ast.SourceFile).Root.Data.(*ast.Namespace)
	if ns.NestedNamespaces.Len() != 1 {
		t.Fatalf("NestedNamespaces.Len() = %d, want 1", ns.NestedNamespaces.Len())
	}
}

func TestParseProgramMultipleBuffers(t *testing.T) {
	s := New(Config{WarningLevel: 4})
	files, err := s.ParseProgram([]source.Input{
		{Name: "a.cs", Reader: strings.NewReader("class A { }")},
		{Name: "b.cs", Reader: strings.NewReader("class B { }")},
	})
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2", len(files))
	}
}

func TestParseProgramReportsDiagnosticsIntoSharedSink(t *testing.T) {
	s := New(Config{WarningLevel: 4})
	_, err := s.ParseProgram([]source.Input{
		{Name: "bad.cs", Reader: strings.NewReader("interface I { int x; }")},
	})
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	if !s.HasErrors() {
		t.Errorf("expected at least one error diagnostic from NoFieldsInInterfaces")
	}
}

func TestTreatWarnAsErrorPromotesSeverity(t *testing.T) {
	s := New(Config{WarningLevel: 4, TreatWarnAsError: true})
	_, err := s.ParseProgram([]source.Input{
		{Name: "a.cs", Reader: strings.NewReader("[bogus: Obsolete] class C { }")},
	})
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	if !s.HasErrors() {
		t.Errorf("expected the UnknownAttributeTarget warning to be promoted to an error")
	}
}

func TestScanOnlyReturnsFullTokenStream(t *testing.T) {
	s := New(Config{WarningLevel: 4})
	toks := s.ScanOnly([]source.Input{
		{Name: "a.cs", Reader: strings.NewReader("class C { }")},
	})
	if len(toks) == 0 {
		t.Fatal("ScanOnly returned no tokens")
	}
	if toks[len(toks)-1].Kind != token.EOD {
		t.Errorf("last token kind = %v, want EOD", toks[len(toks)-1].Kind)
	}
}

func TestPushPopOptionsRoundTrips(t *testing.T) {
	s := New(Config{WarningLevel: 2})
	before := s.optStack.Depth()
	s.PushOptions()
	if s.optStack.Depth() != before+1 {
		t.Fatalf("depth after push = %d, want %d", s.optStack.Depth(), before+1)
	}
	s.PopOptions()
	if s.optStack.Depth() != before {
		t.Fatalf("depth after pop = %d, want %d", s.optStack.Depth(), before)
	}
}

func TestDebugLowersMinLevel(t *testing.T) {
	var buf bytes.Buffer
	s := New(Config{WarningLevel: 4, Debug: true, LogWriter: &buf})
	if s.filter.MinLevel != "DEBUG" {
		t.Errorf("MinLevel = %v, want DEBUG", s.filter.MinLevel)
	}
	s.Logger().Print("[DEBUG] hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q, want it to contain %q", buf.String(), "hello")
	}
}
