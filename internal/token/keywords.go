package token

// reserved — слова, которые не могут быть именами привязок.
var reserved = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {}, "export": {},
	"extends": {}, "finally": {}, "for": {}, "function": {}, "if": {}, "import": {},
	"in": {}, "instanceof": {}, "new": {}, "return": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "null": {}, "true": {}, "false": {}, "enum": {},
}

// IsReserved reports whether word is a reserved word in module code.
// Keywords are case-sensitive: only lowercase forms are recognized.
func IsReserved(word string) bool {
	_, ok := reserved[word]
	return ok
}

// operandKeywords — ключевые слова, после которых `/` начинает регулярку.
var operandKeywords = map[string]struct{}{
	"return": {}, "typeof": {}, "instanceof": {}, "in": {}, "of": {}, "new": {},
	"delete": {}, "void": {}, "throw": {}, "case": {}, "do": {}, "else": {},
	"yield": {}, "await": {},
}

// PrecedesOperand reports whether an expression operand is expected after the
// keyword word, so that a following `/` starts a regular expression.
func PrecedesOperand(word string) bool {
	_, ok := operandKeywords[word]
	return ok
}
