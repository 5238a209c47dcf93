package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident covers identifiers and keywords.
	Ident
	// PrivateName is `#name`.
	PrivateName
	NumberLit
	BigIntLit
	StringLit
	RegExpLit
	// TemplateNoSubst is a whole template literal without substitutions.
	TemplateNoSubst
	// TemplateHead is "`...${".
	TemplateHead
	// TemplateMiddle is "}...${".
	TemplateMiddle
	// TemplateTail is "}...`".
	TemplateTail
	// JSXText is raw text between JSX tags.
	JSXText

	LBrace   // {
	RBrace   // }
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]

	Dot         // .
	DotDotDot   // ...
	Semicolon   // ;
	Comma       // ,
	Question    // ?
	QuestionDot // ?.
	Colon       // :
	FatArrow    // =>
	At          // @

	Lt         // <
	Gt         // >
	LtEq       // <=
	GtEq       // >=
	EqEq       // ==
	BangEq     // !=
	EqEqEq     // ===
	BangEqEq   // !==
	Plus       // +
	Minus      // -
	Star       // *
	StarStar   // **
	Slash      // /
	Percent    // %
	PlusPlus   // ++
	MinusMinus // --
	Shl        // <<
	Shr        // >>
	UShr       // >>>
	Amp        // &
	Pipe       // |
	Caret      // ^
	Bang       // !
	Tilde      // ~
	AndAnd     // &&
	OrOr       // ||
	QuestionQuestion

	Assign              // =
	PlusAssign          // +=
	MinusAssign         // -=
	StarAssign          // *=
	StarStarAssign      // **=
	SlashAssign         // /=
	PercentAssign       // %=
	ShlAssign           // <<=
	ShrAssign           // >>=
	UShrAssign          // >>>=
	AmpAssign           // &=
	PipeAssign          // |=
	CaretAssign         // ^=
	AndAndAssign        // &&=
	OrOrAssign          // ||=
	QuestionQuestionAssign // ??=
)

var kindText = [...]string{
	Invalid:                "invalid",
	EOF:                    "end of file",
	Ident:                  "identifier",
	PrivateName:            "private name",
	NumberLit:              "number",
	BigIntLit:              "bigint",
	StringLit:              "string",
	RegExpLit:              "regular expression",
	TemplateNoSubst:        "template",
	TemplateHead:           "template head",
	TemplateMiddle:         "template middle",
	TemplateTail:           "template tail",
	JSXText:                "JSX text",
	LBrace:                 "{",
	RBrace:                 "}",
	LParen:                 "(",
	RParen:                 ")",
	LBracket:               "[",
	RBracket:               "]",
	Dot:                    ".",
	DotDotDot:              "...",
	Semicolon:              ";",
	Comma:                  ",",
	Question:               "?",
	QuestionDot:            "?.",
	Colon:                  ":",
	FatArrow:               "=>",
	At:                     "@",
	Lt:                     "<",
	Gt:                     ">",
	LtEq:                   "<=",
	GtEq:                   ">=",
	EqEq:                   "==",
	BangEq:                 "!=",
	EqEqEq:                 "===",
	BangEqEq:               "!==",
	Plus:                   "+",
	Minus:                  "-",
	Star:                   "*",
	StarStar:               "**",
	Slash:                  "/",
	Percent:                "%",
	PlusPlus:               "++",
	MinusMinus:             "--",
	Shl:                    "<<",
	Shr:                    ">>",
	UShr:                   ">>>",
	Amp:                    "&",
	Pipe:                   "|",
	Caret:                  "^",
	Bang:                   "!",
	Tilde:                  "~",
	AndAnd:                 "&&",
	OrOr:                   "||",
	QuestionQuestion:       "??",
	Assign:                 "=",
	PlusAssign:             "+=",
	MinusAssign:            "-=",
	StarAssign:             "*=",
	StarStarAssign:         "**=",
	SlashAssign:            "/=",
	PercentAssign:          "%=",
	ShlAssign:              "<<=",
	ShrAssign:              ">>=",
	UShrAssign:             ">>>=",
	AmpAssign:              "&=",
	PipeAssign:             "|=",
	CaretAssign:            "^=",
	AndAndAssign:           "&&=",
	OrOrAssign:             "||=",
	QuestionQuestionAssign: "??=",
}

func (k Kind) String() string {
	if int(k) < len(kindText) {
		return kindText[k]
	}
	return "invalid"
}

// IsAssign reports whether k is `=` or a compound assignment operator.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= QuestionQuestionAssign
}

// IsPunctOrOp reports whether k is a punctuator or operator.
func (k Kind) IsPunctOrOp() bool {
	return k >= LBrace && k <= QuestionQuestionAssign
}

// binaryPrec: приоритеты бинарных операторов (без `in`/`instanceof`, они Ident).
var binaryPrec = map[Kind]int{
	QuestionQuestion: 1,
	OrOr:             2,
	AndAnd:           3,
	Pipe:             4,
	Caret:            5,
	Amp:              6,
	EqEq:             7, BangEq: 7, EqEqEq: 7, BangEqEq: 7,
	Lt: 8, Gt: 8, LtEq: 8, GtEq: 8,
	Shl: 9, Shr: 9, UShr: 9,
	Plus: 10, Minus: 10,
	Star: 11, Slash: 11, Percent: 11,
	StarStar: 12,
}

// BinaryPrec returns the precedence of a binary operator token, or 0.
func BinaryPrec(k Kind) int {
	return binaryPrec[k]
}

// RelationalPrec is the precedence shared by `<`, `in` and `instanceof`.
const RelationalPrec = 8
