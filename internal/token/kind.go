// Package token defines the TokenKind enumeration and Token value type
// of spec.md §3: a tagged lexical unit carrying kind, source name, span,
// an optional typed value, and #line remap state.
package token

// Kind enumerates every lexical token the scanner can produce. Keyword
// kinds are laid out as one contiguous range (KeywordsBegin..KeywordsEnd)
// with three contiguous sub-ranges inside it — type keywords, modifier
// keywords, and declaration keywords — so membership in any of the four
// sets is a single integer-range comparison (spec.md §3: "Contiguity
// enables integer-range membership tests").
type Kind int

const (
	Invalid Kind = iota
	Literal
	Identifier
	OpAssign
	XmlCommentLine
	EOF // end of current buffer
	EOD // end of all buffers

	// Punctuation singletons.
	Tilde    // ~
	Bang     // !
	Percent  // %
	Caret    // ^
	Amp      // &
	Pipe     // |
	Star     // *
	LParen   // (
	RParen   // )
	Minus    // -
	Plus     // +
	LBrace   // {
	RBrace   // }
	LBrack   // [
	RBrack   // ]
	Colon    // :
	Semi     // ;
	Comma    // ,
	Period   // .
	Less     // <
	Greater  // >
	Slash    // /
	Question // ?

	// Compound operators.
	AmpAmp           // &&
	PipePipe         // ||
	Shl              // <<
	Shr              // >>
	LessEq           // <=
	GreaterEq        // >=
	EqEq             // ==
	NotEq            // !=
	ColonColon       // ::
	QuestionQuestion // ??
	PlusPlus         // ++
	MinusMinus       // --
	Arrow            // ->

	// Keywords: one contiguous range, with three contiguous sub-ranges.
	KeywordsBegin

	DeclKeywordsBegin
	KwClass
	KwStruct
	KwInterface
	KwEnum
	KwDelegate
	KwNamespace
	KwUsing
	KwEvent
	DeclKeywordsEnd // exclusive

	TypeKeywordsBegin
	KwBool
	KwByte
	KwChar
	KwDecimal
	KwDouble
	KwFloat
	KwInt
	KwLong
	KwObject
	KwSbyte
	KwShort
	KwString
	KwUint
	KwUlong
	KwUshort
	KwVoid
	TypeKeywordsEnd // exclusive

	ModifierKeywordsBegin
	KwPublic
	KwPrivate
	KwProtected
	KwInternal
	KwStatic
	KwReadonly
	KwConst
	KwSealed
	KwAbstract
	KwVirtual
	KwOverride
	KwExtern
	KwUnsafe
	KwVolatile
	KwNew
	KwPartial
	ModifierKeywordsEnd // exclusive

	// Remaining general-purpose keywords (statement/expression grammar
	// is out of scope per spec.md §1, but a faithful lexer still
	// recognizes these as reserved words rather than identifiers).
	KwAs
	KwBase
	KwBreak
	KwCase
	KwCatch
	KwChecked
	KwContinue
	KwDefault
	KwDo
	KwElse
	KwFinally
	KwFixed
	KwFor
	KwForeach
	KwGoto
	KwIf
	KwImplicit
	KwExplicit
	KwIn
	KwIs
	KwLock
	KwOperator
	KwOut
	KwParams
	KwRef
	KwReturn
	KwSizeof
	KwStackalloc
	KwSwitch
	KwThis
	KwThrow
	KwTry
	KwTypeof
	KwUnchecked
	KwWhile

	KeywordsEnd // exclusive
)

// IsKeyword reports whether k falls in the overall keyword range.
func (k Kind) IsKeyword() bool {
	return k > KeywordsBegin && k < KeywordsEnd
}

// IsTypeKeyword reports whether k is one of the built-in primitive type
// keywords (bool, byte, char, ..., void).
func (k Kind) IsTypeKeyword() bool {
	return k > TypeKeywordsBegin && k < TypeKeywordsEnd
}

// IsModifierKeyword reports whether k is one of the declaration modifier
// keywords (public, static, readonly, ...).
func (k Kind) IsModifierKeyword() bool {
	return k > ModifierKeywordsBegin && k < ModifierKeywordsEnd
}

// IsDeclarationKeyword reports whether k is one of the keywords that
// introduces a declaration this parser recognizes (class, struct,
// interface, enum, delegate, namespace, using, event).
func (k Kind) IsDeclarationKeyword() bool {
	return k > DeclKeywordsBegin && k < DeclKeywordsEnd
}
