// Package options implements the Option Scope Stack of spec.md §4.3: a
// linked stack of per-source-file compiler-option records (preprocessor
// symbol table, warning gates) consulted and mutated by both the
// scanner (pragmas, #define/#undef) and the parser (diagnostic gating).
package options

import (
	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/invariant"
)

// MaxDepth is the maximum nesting depth of the option scope stack
// (spec.md §4.3). Pushing beyond it is a programmer-error invariant
// violation, not a recoverable diagnostic.
const MaxDepth = 4

// defineState records whether a preprocessor symbol is explicitly
// defined or explicitly undefined in this scope (spec.md §3: "map
// <string, {defined|undefined}>"). A symbol with no entry in a scope
// falls through to the parent.
type defineState bool

const (
	stateUndefined defineState = false
	stateDefined   defineState = true
)

// Scope is one frame of the Option Scope Stack (spec.md §3 OptionScope).
type Scope struct {
	parent             *Scope
	defines            map[string]defineState
	warningLevel       int
	treatWarnAsError   bool
	allWarningsDisabled bool
	warningList        map[int]bool // ordered set semantics: insertion tracked via warningOrder
	warningOrder       []int
}

// Stack is the linked stack of Scopes, one pushed per source file
// (spec.md §4.3: "push on source load, pop on end-of-buffer").
type Stack struct {
	top   *Scope
	depth int
}

// NewStack returns an empty Stack with no scope pushed yet.
func NewStack() *Stack {
	return &Stack{}
}

// NewRootScope returns a fresh, parentless Scope with the given initial
// warning level, ready to be pushed as the first frame of a Stack. The
// CLI driver uses this to seed compiler-wide defaults (warning level,
// treat-warnings-as-errors, pre-defined symbols) before the first
// source file is loaded.
func NewRootScope(warningLevel int, treatWarnAsError bool) *Scope {
	return &Scope{
		warningLevel:     warningLevel,
		treatWarnAsError: treatWarnAsError,
		warningList:      make(map[int]bool),
	}
}

// Push enters a new nested scope inheriting parent's values, becoming
// the new top of the stack. Pushing a fifth level panics: this is the
// invariant violation spec.md §4.3 calls out ("Maximum nesting depth 4;
// pushing beyond is an invariant error"), not a diagnostic.
func (s *Stack) Push(parent *Scope) *Scope {
	if s.depth >= MaxDepth {
		invariant.Raise("options: push beyond max depth %d", MaxDepth)
	}
	child := &Scope{
		parent:              parent,
		defines:             nil,
		warningLevel:        0,
		treatWarnAsError:    false,
		allWarningsDisabled: false,
		warningList:         make(map[int]bool),
	}
	if parent != nil {
		child.warningLevel = parent.warningLevel
		child.treatWarnAsError = parent.treatWarnAsError
	}
	s.top = child
	s.depth++
	return child
}

// Pop leaves the current top scope, restoring its parent as the new
// top. Popping an empty stack panics.
func (s *Stack) Pop() {
	if s.top == nil {
		invariant.Raise("options: pop on empty stack")
	}
	s.top = s.top.parent
	s.depth--
}

// Top returns the current scope, or nil if nothing has been pushed.
func (s *Stack) Top() *Scope {
	return s.top
}

// Depth returns the current nesting depth.
func (s *Stack) Depth() int {
	return s.depth
}

// Define marks name as defined in this scope.
func (sc *Scope) Define(name string) {
	if sc.defines == nil {
		sc.defines = make(map[string]defineState)
	}
	sc.defines[name] = stateDefined
}

// Undefine records an explicit-undefine entry for name in this scope.
// This masks any parent definition, per spec.md §4.3: "undefine records
// an explicit-undefine entry that masks parental definitions."
func (sc *Scope) Undefine(name string) {
	if sc.defines == nil {
		sc.defines = make(map[string]defineState)
	}
	sc.defines[name] = stateUndefined
}

// IsDefined reports whether name is defined, walking to the parent
// scope only when this scope has no local entry for name at all.
func (sc *Scope) IsDefined(name string) bool {
	for s := sc; s != nil; s = s.parent {
		if st, ok := s.defines[name]; ok {
			return bool(st)
		}
	}
	return false
}

// DisableWarning disables code in this scope: when AllWarningsDisabled
// is false, WarningList names the disabled codes directly; when true,
// disabling a code removes any explicit re-enable entry for it.
func (sc *Scope) DisableWarning(code int) {
	if sc.allWarningsDisabled {
		sc.removeFromList(code)
		return
	}
	sc.addToList(code)
}

// RestoreWarning re-enables code in this scope: when AllWarningsDisabled
// is true, WarningList names the explicitly re-enabled codes; when
// false, restoring a code removes any explicit disable entry for it.
func (sc *Scope) RestoreWarning(code int) {
	if sc.allWarningsDisabled {
		sc.addToList(code)
		return
	}
	sc.removeFromList(code)
}

// DisableAllWarnings switches this scope to "all disabled except
// explicitly re-enabled" mode, clearing any prior disable list.
func (sc *Scope) DisableAllWarnings() {
	sc.allWarningsDisabled = true
	sc.warningList = make(map[int]bool)
	sc.warningOrder = nil
}

// RestoreAllWarnings switches this scope back to "all enabled except
// explicitly disabled" mode, clearing any prior re-enable list.
func (sc *Scope) RestoreAllWarnings() {
	sc.allWarningsDisabled = false
	sc.warningList = make(map[int]bool)
	sc.warningOrder = nil
}

func (sc *Scope) addToList(code int) {
	if sc.warningList == nil {
		sc.warningList = make(map[int]bool)
	}
	if !sc.warningList[code] {
		sc.warningList[code] = true
		sc.warningOrder = append(sc.warningOrder, code)
	}
}

func (sc *Scope) removeFromList(code int) {
	if !sc.warningList[code] {
		return
	}
	delete(sc.warningList, code)
	for i, c := range sc.warningOrder {
		if c == code {
			sc.warningOrder = append(sc.warningOrder[:i], sc.warningOrder[i+1:]...)
			break
		}
	}
}

// IsWarningDisabled reports whether code is currently disabled in this
// scope, honoring AllWarningsDisabled semantics and delegating to the
// parent when this scope says nothing about code (spec.md §4.3).
func (sc *Scope) IsWarningDisabled(code int) bool {
	if sc.allWarningsDisabled {
		return !sc.warningList[code]
	}
	if sc.warningList[code] {
		return true
	}
	if sc.parent != nil {
		return sc.parent.IsWarningDisabled(code)
	}
	return false
}

// WarningLevel returns this scope's warning level. It reads only the
// local field and does not consult the parent: a freshly-pushed scope
// copies its parent's value at Push time.
func (sc *Scope) WarningLevel() int {
	return sc.warningLevel
}

// SetWarningLevel sets the warning level for this scope.
func (sc *Scope) SetWarningLevel(level int) {
	sc.warningLevel = level
}

// TreatWarningsAsErrors reports the effective treat-warnings-as-errors
// setting for this scope.
func (sc *Scope) TreatWarningsAsErrors() bool {
	return sc.treatWarnAsError
}

// SetTreatWarningsAsErrors sets the treat-warnings-as-errors flag for
// this scope.
func (sc *Scope) SetTreatWarningsAsErrors(v bool) {
	sc.treatWarnAsError = v
}

// ShouldShow reports false for a warning whose level exceeds this
// scope's WarningLevel or whose code is currently disabled (spec.md
// §4.3). Errors (and Info, which the catalog never emits) are always
// shown.
func (sc *Scope) ShouldShow(d diag.Diagnostic) bool {
	if d.Severity != diag.Warning {
		return true
	}
	if d.Level > sc.WarningLevel() {
		return false
	}
	if sc.IsWarningDisabled(d.Code) {
		return false
	}
	return true
}

// EffectiveSeverity returns the severity a Diagnostic should be
// reported at given this scope: a Warning is promoted to Error when
// TreatWarningsAsErrors is set (spec.md §4.2, §7).
func (sc *Scope) EffectiveSeverity(d diag.Diagnostic) diag.Severity {
	if d.Severity == diag.Warning && sc.TreatWarningsAsErrors() {
		return diag.Error
	}
	return d.Severity
}
