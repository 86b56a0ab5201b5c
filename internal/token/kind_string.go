package token

var kindNames = map[Kind]string{
	Invalid:        "Invalid",
	Literal:        "Literal",
	Identifier:     "Identifier",
	OpAssign:       "OpAssign",
	XmlCommentLine: "XmlCommentLine",
	EOF:            "EOF",
	EOD:            "EOD",

	Tilde: "~", Bang: "!", Percent: "%", Caret: "^", Amp: "&", Pipe: "|",
	Star: "*", LParen: "(", RParen: ")", Minus: "-", Plus: "+",
	LBrace: "{", RBrace: "}", LBrack: "[", RBrack: "]", Colon: ":",
	Semi: ";", Comma: ",", Period: ".", Less: "<", Greater: ">",
	Slash: "/", Question: "?",

	AmpAmp: "&&", PipePipe: "||", Shl: "<<", Shr: ">>", LessEq: "<=",
	GreaterEq: ">=", EqEq: "==", NotEq: "!=", ColonColon: "::",
	QuestionQuestion: "??", PlusPlus: "++", MinusMinus: "--", Arrow: "->",

	KwClass: "class", KwStruct: "struct", KwInterface: "interface",
	KwEnum: "enum", KwDelegate: "delegate", KwNamespace: "namespace",
	KwUsing: "using", KwEvent: "event",

	KwBool: "bool", KwByte: "byte", KwChar: "char", KwDecimal: "decimal",
	KwDouble: "double", KwFloat: "float", KwInt: "int", KwLong: "long",
	KwObject: "object", KwSbyte: "sbyte", KwShort: "short", KwString: "string",
	KwUint: "uint", KwUlong: "ulong", KwUshort: "ushort", KwVoid: "void",

	KwPublic: "public", KwPrivate: "private", KwProtected: "protected",
	KwInternal: "internal", KwStatic: "static", KwReadonly: "readonly",
	KwConst: "const", KwSealed: "sealed", KwAbstract: "abstract",
	KwVirtual: "virtual", KwOverride: "override", KwExtern: "extern",
	KwUnsafe: "unsafe", KwVolatile: "volatile", KwNew: "new", KwPartial: "partial",

	KwAs: "as", KwBase: "base", KwBreak: "break", KwCase: "case",
	KwCatch: "catch", KwChecked: "checked", KwContinue: "continue",
	KwDefault: "default", KwDo: "do", KwElse: "else", KwFinally: "finally",
	KwFixed: "fixed", KwFor: "for", KwForeach: "foreach", KwGoto: "goto",
	KwIf: "if", KwImplicit: "implicit", KwExplicit: "explicit", KwIn: "in",
	KwIs: "is", KwLock: "lock", KwOperator: "operator", KwOut: "out",
	KwParams: "params", KwRef: "ref", KwReturn: "return", KwSizeof: "sizeof",
	KwStackalloc: "stackalloc", KwSwitch: "switch", KwThis: "this",
	KwThrow: "throw", KwTry: "try", KwTypeof: "typeof",
	KwUnchecked: "unchecked", KwWhile: "while",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
