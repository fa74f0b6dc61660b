// Package token defines the lexical token kinds of the Beleg language.
// Invariants:
//   - Token.Span is a half-open byte range local to the lexed buffer and
//     matches the source text of the token exactly.
//   - Sof and Eof are synthetic: the lexer appends one Eof at the end of
//     every token stream, Sof only ever comes from the parser when reading
//     before the first consumed token.
//   - Keywords are case-sensitive; identifiers are scanned to their full
//     length before the keyword table is consulted (maximal munch).
//   - Comment tokens stay in the stream produced by the lexer; parse
//     pipelines strip them before handing tokens to the parser.
package token
