// Package token defines lexical token kinds for JavaScript with JSX.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Keywords are lexed as Ident; the parser interprets them by context,
//     so contextual words (async, of, get, set, static) need no special kinds.
//   - Comments and whitespace never reach the token stream; a line break
//     before a token is recorded in Token.NewlineBefore for ASI.
//   - Template literals are split into TemplateHead/Middle/Tail pieces; the
//     parser asks the lexer to rescan after '}' inside a substitution.
package token
