package token

// keywords maps every reserved word's spelling to its Kind. true, false,
// and null are intentionally absent: spec.md §4.4 has the scanner map
// those three to Literal tokens directly rather than keyword tokens.
var keywords = buildKeywordTable()

func buildKeywordTable() map[string]Kind {
	m := make(map[string]Kind, int(KeywordsEnd-KeywordsBegin))
	for k := KeywordsBegin + 1; k < KeywordsEnd; k++ {
		switch k {
		case DeclKeywordsBegin, DeclKeywordsEnd,
			TypeKeywordsBegin, TypeKeywordsEnd,
			ModifierKeywordsBegin, ModifierKeywordsEnd:
			continue // range markers, not real keywords
		}
		m[k.String()] = k
	}
	return m
}

// LookupKeyword returns the Kind for text if it names a reserved word,
// and ok=true. Keywords are case-sensitive, matching the source
// language's own rules.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
