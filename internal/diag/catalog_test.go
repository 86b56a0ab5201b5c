package diag

import "testing"

func TestCatalogCodesUniqueAndInRange(t *testing.T) {
	seen := make(map[int]bool)
	for _, d := range entries {
		if d.Code < 0 || d.Code > 9999 {
			t.Errorf("code %d out of range [0,9999]", d.Code)
		}
		if seen[d.Code] {
			t.Errorf("duplicate code %d", d.Code)
		}
		seen[d.Code] = true
	}
}

func TestIsValidWarning(t *testing.T) {
	if !Catalog.IsValidWarning(CodeUseUppercaseL) {
		t.Errorf("expected %d to be a valid warning code", CodeUseUppercaseL)
	}
	if Catalog.IsValidWarning(CodeExpectedIdentifier) {
		t.Errorf("expected %d (an error, not a warning) to not be a valid warning code", CodeExpectedIdentifier)
	}
	if Catalog.IsValidWarning(99999) {
		t.Errorf("expected unknown code to not be a valid warning code")
	}
}

func TestFormatSubstitutesPlaceholders(t *testing.T) {
	d, ok := Catalog.Lookup(CodeDuplicateModifier)
	if !ok {
		t.Fatalf("CodeDuplicateModifier missing from catalog")
	}
	got := d.Format("public")
	want := "duplicate modifier 'public'"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestCharLiteral(t *testing.T) {
	cases := []struct {
		r    rune
		want string
	}{
		{'\'', `\'`},
		{'\\', `\\`},
		{0, `\0`},
		{'\n', `\n`},
		{'a', "a"},
		{1, "0x01"},
		{0x80, "0x80"},
	}
	for _, c := range cases {
		if got := CharLiteral(c.r); got != c.want {
			t.Errorf("CharLiteral(%q) = %q, want %q", c.r, got, c.want)
		}
	}
}
