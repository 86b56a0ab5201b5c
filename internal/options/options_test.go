package options

import (
	"testing"

	"github.com/gmofishsauce/csfront/internal/diag"
)

func TestDefineUndefineMasksParent(t *testing.T) {
	root := NewRootScope(4, false)
	root.Define("YES")

	stack := NewStack()
	child := stack.Push(root)

	if !child.IsDefined("YES") {
		t.Errorf("expected child to see parent's definition of YES")
	}
	child.Define("X")
	child.Undefine("X")
	if child.IsDefined("X") {
		t.Errorf("define(x); undefine(x) should leave IsDefined false")
	}

	// Masking a parent-defined symbol locally.
	child.Undefine("YES")
	if child.IsDefined("YES") {
		t.Errorf("explicit undefine should mask parent definition")
	}
	if !root.IsDefined("YES") {
		t.Errorf("masking in child must not affect parent")
	}
}

func TestPushPopMaxDepth(t *testing.T) {
	stack := NewStack()
	var s *Scope
	for i := 0; i < MaxDepth; i++ {
		s = stack.Push(s)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic pushing beyond MaxDepth")
		}
	}()
	stack.Push(s)
}

func TestWarningGateDisableRestore(t *testing.T) {
	sc := NewRootScope(4, false)
	if sc.IsWarningDisabled(78) {
		t.Errorf("warning 78 should not start disabled")
	}
	sc.DisableWarning(78)
	if !sc.IsWarningDisabled(78) {
		t.Errorf("warning 78 should be disabled after DisableWarning")
	}
	sc.RestoreWarning(78)
	if sc.IsWarningDisabled(78) {
		t.Errorf("warning 78 should be restored")
	}
}

func TestWarningGateAllDisabledMode(t *testing.T) {
	sc := NewRootScope(4, false)
	sc.DisableAllWarnings()
	if !sc.IsWarningDisabled(78) {
		t.Errorf("all warnings should be disabled")
	}
	sc.RestoreWarning(78)
	if sc.IsWarningDisabled(78) {
		t.Errorf("78 should be explicitly re-enabled")
	}
	if !sc.IsWarningDisabled(657) {
		t.Errorf("657 should still be disabled under all-disabled mode")
	}
}

func TestWarningGateDelegatesToParent(t *testing.T) {
	root := NewRootScope(4, false)
	root.DisableWarning(78)

	stack := NewStack()
	child := stack.Push(root)
	if !child.IsWarningDisabled(78) {
		t.Errorf("child should inherit parent's disabled warning")
	}
}

func TestShouldShow(t *testing.T) {
	sc := NewRootScope(1, false)
	d := diag.Diagnostic{Code: 78, Severity: diag.Warning, Level: 1}
	if !sc.ShouldShow(d) {
		t.Errorf("expected level-1 warning to show at warning level 1")
	}
	sc.SetWarningLevel(0)
	if sc.ShouldShow(d) {
		t.Errorf("expected level-1 warning to be hidden at warning level 0")
	}
	sc.SetWarningLevel(4)
	sc.DisableWarning(78)
	if sc.ShouldShow(d) {
		t.Errorf("expected disabled warning to be hidden regardless of level")
	}
}

func TestEffectiveSeverityPromotion(t *testing.T) {
	sc := NewRootScope(4, true)
	d := diag.Diagnostic{Code: 78, Severity: diag.Warning, Level: 1}
	if sc.EffectiveSeverity(d) != diag.Error {
		t.Errorf("expected warning promoted to error under TreatWarningsAsErrors")
	}
	errD := diag.Diagnostic{Code: 1002, Severity: diag.Error}
	if sc.EffectiveSeverity(errD) != diag.Error {
		t.Errorf("errors should remain errors")
	}
}
