package scanner

import (
	"strings"
	"testing"

	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/options"
	"github.com/gmofishsauce/csfront/internal/source"
	"github.com/gmofishsauce/csfront/internal/token"
)

func newTestScanner(t *testing.T, src string) (*Scanner, *diag.OutputMessageCollection) {
	t.Helper()
	r := source.New([]source.Input{{Name: "test.cs", Reader: strings.NewReader(src)}}, nil)
	sink := &diag.OutputMessageCollection{}
	stack := options.NewStack()
	root := options.NewRootScope(4, false)
	stack.Push(root)
	sc := New(r, stack, sink)
	return sc, sink
}

func allTokens(t *testing.T, sc *Scanner) []token.Token {
	t.Helper()
	var toks []token.Token
	for {
		tok, more := sc.NextToken()
		toks = append(toks, tok)
		if !more {
			break
		}
		if len(toks) > 10000 {
			t.Fatalf("runaway token stream")
		}
	}
	return toks
}

func kindsOf(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tk := range toks {
		ks[i] = tk.Kind
	}
	return ks
}

func TestIdentifiersAndKeywords(t *testing.T) {
	sc, sink := newTestScanner(t, "class Foo { int x; }")
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	got := kindsOf(toks)
	want := []token.Kind{
		token.KwClass, token.Identifier, token.LBrace, token.KwInt,
		token.Identifier, token.Semi, token.RBrace, token.EOF, token.EOD,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[1].Value.Str != "Foo" {
		t.Errorf("identifier text = %q, want Foo", toks[1].Value.Str)
	}
}

func TestVerbatimIdentifierSuppressesKeyword(t *testing.T) {
	sc, sink := newTestScanner(t, "@class")
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	if toks[0].Kind != token.Identifier || toks[0].Value.Str != "class" {
		t.Errorf("got %v, want Identifier(class)", toks[0])
	}
}

func TestTrueFalseNullAreLiterals(t *testing.T) {
	sc, _ := newTestScanner(t, "true false null")
	toks := allTokens(t, sc)
	if toks[0].Kind != token.Literal || toks[0].Value.Bool != true {
		t.Errorf("true: got %v", toks[0])
	}
	if toks[1].Kind != token.Literal || toks[1].Value.Bool != false {
		t.Errorf("false: got %v", toks[1])
	}
	if toks[2].Kind != token.Literal || toks[2].Value.Kind != token.VNone {
		t.Errorf("null: got %v", toks[2])
	}
}

func TestIntegerLiteralWidthSelection(t *testing.T) {
	sc, _ := newTestScanner(t, "1 4294967296 18446744073709551615")
	toks := allTokens(t, sc)
	if toks[0].Value.Kind != token.VInt32 || toks[0].Value.I32 != 1 {
		t.Errorf("1: got %v", toks[0].Value)
	}
	if toks[1].Value.Kind != token.VInt64 {
		t.Errorf("4294967296: got %v, want VInt64", toks[1].Value.Kind)
	}
	if toks[2].Value.Kind != token.VUint64 {
		t.Errorf("max uint64: got %v, want VUint64", toks[2].Value.Kind)
	}
}

func TestIntegerSuffixes(t *testing.T) {
	sc, sink := newTestScanner(t, "10u 10L 10UL")
	toks := allTokens(t, sc)
	if toks[0].Value.Kind != token.VUint32 {
		t.Errorf("10u: got %v", toks[0].Value.Kind)
	}
	if toks[1].Value.Kind != token.VInt64 {
		t.Errorf("10L: got %v", toks[1].Value.Kind)
	}
	if toks[2].Value.Kind != token.VUint64 {
		t.Errorf("10UL: got %v", toks[2].Value.Kind)
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
}

func TestLowercaseLSuffixWarns(t *testing.T) {
	sc, sink := newTestScanner(t, "10l")
	allTokens(t, sc)
	found := false
	for _, m := range sink.Messages() {
		if m.Code == diag.CodeUseUppercaseL {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CodeUseUppercaseL warning, got %v", sink.Messages())
	}
}

func TestRealLiterals(t *testing.T) {
	sc, _ := newTestScanner(t, "1.5 1.5f 1.5m 1e10")
	toks := allTokens(t, sc)
	if toks[0].Value.Kind != token.VFloat64 {
		t.Errorf("1.5: got %v", toks[0].Value.Kind)
	}
	if toks[1].Value.Kind != token.VFloat32 {
		t.Errorf("1.5f: got %v", toks[1].Value.Kind)
	}
	if toks[2].Value.Kind != token.VDecimal {
		t.Errorf("1.5m: got %v", toks[2].Value.Kind)
	}
	if toks[3].Value.Kind != token.VFloat64 {
		t.Errorf("1e10: got %v", toks[3].Value.Kind)
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	sc, sink := newTestScanner(t, `"a\tb\"c"`)
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	want := "a\tb\"c"
	if toks[0].Value.Str != want {
		t.Errorf("got %q, want %q", toks[0].Value.Str, want)
	}
}

func TestStringLiteralVariableWidthUnicodeEscapes(t *testing.T) {
	sc, sink := newTestScanner(t, `"\u41g\x9z"`)
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	want := "Ag\tz"
	if toks[0].Value.Str != want {
		t.Errorf("got %q, want %q", toks[0].Value.Str, want)
	}
}

func TestEmptyUnicodeEscapeReportsUnrecognizedEscape(t *testing.T) {
	sc, sink := newTestScanner(t, `"\u"`)
	allTokens(t, sc)
	found := false
	for _, m := range sink.Messages() {
		if m.Code == diag.CodeUnrecognizedEscape {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CodeUnrecognizedEscape for a zero-digit \\u escape, got %v", sink.Messages())
	}
}

func TestIdentifierVariableWidthUnicodeEscape(t *testing.T) {
	sc, sink := newTestScanner(t, `\u41z`)
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	want := "Az"
	if toks[0].Kind != token.Identifier || toks[0].Value.Str != want {
		t.Errorf("got %v, want identifier %q", toks[0], want)
	}
}

func TestVerbatimString(t *testing.T) {
	sc, sink := newTestScanner(t, `@"a\b""c"`)
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	want := `a\b"c`
	if toks[0].Value.Str != want {
		t.Errorf("got %q, want %q", toks[0].Value.Str, want)
	}
}

func TestCharLiteralAndDiagnostics(t *testing.T) {
	sc, sink := newTestScanner(t, `'x' '' 'ab'`)
	toks := allTokens(t, sc)
	if toks[0].Value.Char != 'x' {
		t.Errorf("got %v", toks[0].Value)
	}
	var codes []int
	for _, m := range sink.Messages() {
		codes = append(codes, m.Code)
	}
	wantCodes := map[int]bool{diag.CodeEmptyCharacterLiteral: true, diag.CodeCharacterLiteralTooLong: true}
	for _, c := range codes {
		delete(wantCodes, c)
	}
	if len(wantCodes) != 0 {
		t.Errorf("missing diagnostics %v, got codes %v", wantCodes, codes)
	}
}

func TestLineAndBlockComments(t *testing.T) {
	sc, sink := newTestScanner(t, "int x; // trailing\n/* block\nspanning */ int y;")
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	got := kindsOf(toks)
	want := []token.Kind{
		token.KwInt, token.Identifier, token.Semi,
		token.KwInt, token.Identifier, token.Semi,
		token.EOF, token.EOD,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(want), got)
	}
}

func TestXmlDocComment(t *testing.T) {
	sc, sink := newTestScanner(t, "/// a summary\nclass C {}")
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	if toks[0].Kind != token.XmlCommentLine || toks[0].Value.Str != "a summary" {
		t.Errorf("got %v", toks[0])
	}
}

func TestCompoundOperatorsAndAssignment(t *testing.T) {
	sc, _ := newTestScanner(t, "a && b || c += 1 <<= 2")
	toks := allTokens(t, sc)
	got := kindsOf(toks)
	want := []token.Kind{
		token.Identifier, token.AmpAmp, token.Identifier, token.PipePipe,
		token.Identifier, token.OpAssign, token.Literal,
		token.OpAssign, token.Literal, token.EOF, token.EOD,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if got[1] != token.AmpAmp || got[3] != token.PipePipe {
		t.Errorf("got %v", got)
	}
	if toks[5].Kind != token.OpAssign || toks[5].Value.OpBase != token.Plus {
		t.Errorf("+= got %v", toks[5])
	}
}

func TestGreaterGreaterMergesIntoShr(t *testing.T) {
	sc, _ := newTestScanner(t, "List<List<int>>")
	toks := allTokens(t, sc)
	var shrs int
	for _, tk := range toks {
		if tk.Kind == token.Shr {
			shrs++
		}
	}
	if shrs != 1 {
		t.Errorf("expected a single merged Shr token for '>>', got %d", shrs)
	}
}

func TestShrAssignRecognized(t *testing.T) {
	sc, _ := newTestScanner(t, "a >>= b")
	toks := allTokens(t, sc)
	var found bool
	for _, tk := range toks {
		if tk.Kind == token.OpAssign && tk.Value.OpBase == token.Shr {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an OpAssign token with OpBase Shr for '>>=', got %v", toks)
	}
}

func TestUnterminatedIfReportsAtEndOfBuffer(t *testing.T) {
	sc, sink := newTestScanner(t, "#if FOO\nint x;\n")
	allTokens(t, sc)
	found := false
	for _, m := range sink.Messages() {
		if m.Code == diag.CodePPEndIfExpected {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CodePPEndIfExpected for an unterminated #if, got %v", sink.Messages())
	}
}

func TestUnterminatedRegionReportsAtEndOfBuffer(t *testing.T) {
	sc, sink := newTestScanner(t, "#region Foo\nint x;\n")
	allTokens(t, sc)
	found := false
	for _, m := range sink.Messages() {
		if m.Code == diag.CodeEndRegionExpected {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CodeEndRegionExpected for an unterminated #region, got %v", sink.Messages())
	}
}

func TestDefineAndIfActive(t *testing.T) {
	sc, sink := newTestScanner(t, "#define FOO\n#if FOO\nint x;\n#endif\n")
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	got := kindsOf(toks)
	want := []token.Kind{token.KwInt, token.Identifier, token.Semi, token.EOF, token.EOD}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
}

func TestIfFalseSkipsToElse(t *testing.T) {
	sc, sink := newTestScanner(t, "#if UNDEFINED\nthis is garbage !!! @@@\n#else\nint y;\n#endif\n")
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	got := kindsOf(toks)
	want := []token.Kind{token.KwInt, token.Identifier, token.Semi, token.EOF, token.EOD}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
}

func TestElifChainTakesFirstTrueBranch(t *testing.T) {
	src := "#define B\n#if A\nint a;\n#elif B\nint b;\n#elif C\nint c;\n#endif\n"
	sc, sink := newTestScanner(t, src)
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	if toks[1].Value.Str != "b" {
		t.Errorf("expected identifier 'b' to survive, got stream %v", kindsOf(toks))
	}
}

func TestPragmaWarningDisableRestore(t *testing.T) {
	sc, sink := newTestScanner(t, "#pragma warning disable CS0078\n10l\n#pragma warning restore CS0078\n10l\n")
	allTokens(t, sc)
	var count int
	for _, m := range sink.Messages() {
		if m.Code == diag.CodeUseUppercaseL {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 CodeUseUppercaseL warning (disabled then restored), got %d", count)
	}
}

func TestLineDirectiveRemapsSourceAndLine(t *testing.T) {
	sc, sink := newTestScanner(t, "#line 100 \"gen.cs\"\nint x;\n")
	toks := allTokens(t, sc)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	if toks[0].LineOverride != 100 || !toks[0].HasSourceOverride() || toks[0].SourceOverride != "gen.cs" {
		t.Errorf("got LineOverride=%d SourceOverride=%q", toks[0].LineOverride, toks[0].SourceOverride)
	}
}

func TestPushBackIsFIFO(t *testing.T) {
	sc, _ := newTestScanner(t, "a b c")
	first, _ := sc.NextToken()
	second, _ := sc.NextToken()
	sc.PushBack(first)
	sc.PushBack(second)
	got1, _ := sc.NextToken()
	got2, _ := sc.NextToken()
	if got1.Value.Str != first.Value.Str || got2.Value.Str != second.Value.Str {
		t.Errorf("push-back order broken: got %q, %q", got1.Value.Str, got2.Value.Str)
	}
}

func TestMultipleBuffersEmitEOFThenEOD(t *testing.T) {
	r := source.New([]source.Input{
		{Name: "a.cs", Reader: strings.NewReader("int x;")},
		{Name: "b.cs", Reader: strings.NewReader("int y;")},
	}, nil)
	sink := &diag.OutputMessageCollection{}
	stack := options.NewStack()
	stack.Push(options.NewRootScope(4, false))
	sc := New(r, stack, sink)
	toks := allTokens(t, sc)

	var eofs, eods int
	for _, tk := range toks {
		switch tk.Kind {
		case token.EOF:
			eofs++
		case token.EOD:
			eods++
		}
	}
	if eofs != 2 || eods != 1 {
		t.Errorf("expected 2 EOF and 1 EOD, got %d EOF and %d EOD", eofs, eods)
	}
}

func TestUnterminatedStringReportsDiagnostic(t *testing.T) {
	sc, sink := newTestScanner(t, `"abc`)
	allTokens(t, sc)
	found := false
	for _, m := range sink.Messages() {
		if m.Code == diag.CodeUnterminatedStringLiteral {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CodeUnterminatedStringLiteral, got %v", sink.Messages())
	}
}
