package lexer

import "unicode"

func (lx *Lexer) peekRune() (rune, int) { return lx.cursor.PeekRune() }
func (lx *Lexer) bumpRune()             { lx.cursor.BumpRune() }

// tryStr consumes s if it is next; operators are matched longest first.
func (lx *Lexer) tryStr(s string) bool { return lx.cursor.EatString(s) }

// isNumberAfterDot отличает ".5" от оператора точки.
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// Идентификаторы: ASCII проверяется байтом, остальное по категориям Unicode
// (ID_Start, ID_Continue плюс $, _ и ZWNJ/ZWJ).

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isIdentContinueByte(b byte) bool { return isIdentStartByte(b) || isDec(b) }

func isIdentStartRune(r rune) bool {
	return r == '_' || r == '$' || unicode.In(r, unicode.L, unicode.Nl)
}

func isIdentContinueRune(r rune) bool {
	switch r {
	case '\u200c', '\u200d':
		return true
	}
	return isIdentStartRune(r) || unicode.In(r, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc)
}

func isDec(b byte) bool { return '0' <= b && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}
