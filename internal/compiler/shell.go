// Package compiler implements the Compiler Shell of spec.md §4.7: a
// thin container holding the diagnostic sink and option scope stack
// that every scanner/parser instance in one compilation shares, plus
// the internal leveled trace log described in SPEC_FULL.md's Ambient
// Stack § Logging.
//
// The shell's "open file, drive parse, report N errors" shape follows
// the teacher's asm.go main(), generalized from a single hard-coded
// file argument into a reusable, non-CLI type a driver (cmd/csfrontc)
// wires flags into.
package compiler

import (
	"io"
	"log"
	"os"

	"github.com/hashicorp/logutils"

	"github.com/gmofishsauce/csfront/internal/ast"
	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/invariant"
	"github.com/gmofishsauce/csfront/internal/options"
	"github.com/gmofishsauce/csfront/internal/parser"
	"github.com/gmofishsauce/csfront/internal/scanner"
	"github.com/gmofishsauce/csfront/internal/source"
	"github.com/gmofishsauce/csfront/internal/token"
)

// Config seeds the root OptionScope a Shell starts with (SPEC_FULL.md
// Ambient Stack § Configuration): the CLI driver's flags map directly
// onto these fields.
type Config struct {
	WarningLevel     int
	TreatWarnAsError bool
	Defines          []string
	DisabledWarnings []int
	Debug            bool      // lowers the trace logger's MinLevel to DEBUG
	LogWriter        io.Writer // defaults to os.Stderr when nil
}

// Shell is the thin container spec.md §4.7 describes: every
// scanner/parser instance built through it shares one
// diag.OutputMessageCollection and one options.Stack.
type Shell struct {
	sink     *diag.OutputMessageCollection
	optStack *options.Stack
	logger   *log.Logger
	filter   *logutils.LevelFilter
}

// New returns a Shell with its root OptionScope seeded from cfg and its
// internal trace logger wired the way qjcg-driving wires logutils (see
// DESIGN.md).
func New(cfg Config) *Shell {
	root := options.NewRootScope(cfg.WarningLevel, cfg.TreatWarnAsError)
	for _, name := range cfg.Defines {
		root.Define(name)
	}
	for _, code := range cfg.DisabledWarnings {
		root.DisableWarning(code)
	}

	stack := options.NewStack()
	stack.Push(root)

	w := cfg.LogWriter
	if w == nil {
		w = os.Stderr
	}
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN"},
		MinLevel: logutils.LogLevel("INFO"),
		Writer:   w,
	}
	if cfg.Debug {
		filter.MinLevel = logutils.LogLevel("DEBUG")
	}

	return &Shell{
		sink:     &diag.OutputMessageCollection{},
		optStack: stack,
		logger:   log.New(filter, "", log.Lshortfile),
		filter:   filter,
	}
}

// Sink returns the shell's diagnostic collection, shared by every
// scanner/parser it builds.
func (s *Shell) Sink() *diag.OutputMessageCollection { return s.sink }

// HasErrors reports whether any Error-severity diagnostic has been
// emitted so far (spec.md §7: "has-errors true iff any Error-severity
// entry exists").
func (s *Shell) HasErrors() bool { return s.sink.HasErrors() }

// Logger returns the shell's internal leveled trace logger, distinct
// from the user-visible diagnostic sink (SPEC_FULL.md Ambient Stack §
// Logging).
func (s *Shell) Logger() *log.Logger { return s.logger }

// PushOptions enters a nested OptionScope inheriting the current top
// scope's values, per spec.md §4.7's "push-options (enter nested scope
// with inherited values)". Pushing beyond options.MaxDepth panics with
// an *invariant.Error (spec.md §7).
func (s *Shell) PushOptions() *options.Scope {
	return s.optStack.Push(s.optStack.Top())
}

// PopOptions leaves the current top OptionScope, restoring its parent
// (spec.md §4.7's "pop-options (leave)"). Popping with nothing pushed
// panics with an *invariant.Error.
func (s *Shell) PopOptions() {
	s.optStack.Pop()
}

// fileLoader opens named sources from the filesystem, the default
// behavior spec.md §6 describes for "names alone" inputs ("the loader
// defaults to opening a file of that name").
type fileLoader struct{}

func (fileLoader) Open(name string) (io.Reader, error) {
	return os.Open(name)
}

// newReaderAndScanner wires a source.Reader and scanner.Scanner against
// this shell's shared sink and option stack. Every source buffer pushes
// its own child OptionScope as it loads (scanner.New registers the
// hook), and the scanner pops that scope again when it reaches the end
// of the buffer, so the shell's root scope is back on top once every
// buffer has been scanned to its end.
func (s *Shell) newReaderAndScanner(inputs []source.Input, loader source.Loader) *scanner.Scanner {
	if loader == nil {
		loader = fileLoader{}
	}
	r := source.New(inputs, loader)
	return scanner.New(r, s.optStack, s.sink)
}

// ScanOnly tokenizes every input buffer and returns the full token
// stream, for the CLI's "scan" subcommand (SPEC_FULL.md MODULE LAYOUT:
// cmd/csfrontc, "tokenize and dump"). Panicking invariant violations
// are not recovered here; ParseProgram is the entry point that
// guarantees a clean return.
func (s *Shell) ScanOnly(inputs []source.Input) []token.Token {
	sc := s.newReaderAndScanner(inputs, nil)
	var toks []token.Token
	for {
		t, more := sc.NextToken()
		toks = append(toks, t)
		if !more {
			break
		}
	}
	return toks
}

// ParseProgram parses every input buffer into one *ast.Node (a
// *ast.SourceFile) per buffer, recovering a panicking *invariant.Error
// into a single fatal diagnostic so a CLI run always exits cleanly
// (SPEC_FULL.md Ambient Stack § Error handling). Any other panic is not
// an invariant violation — it is a bug in csfront, not bad input — and
// is left to propagate.
func (s *Shell) ParseProgram(inputs []source.Input) (files []*ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*invariant.Error)
			if !ok {
				panic(r)
			}
			s.sink.Add(diag.OutputMessage{
				Severity:   diag.Error,
				SourceName: "<internal>",
				Code:       diag.CodeInternalError,
				Message:    ie.Error(),
			})
			err = ie
		}
	}()
	sc := s.newReaderAndScanner(inputs, nil)
	p := parser.New(sc, s.optStack, s.sink)
	return p.ParseProgram(), nil
}
