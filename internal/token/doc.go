// Package token defines the typed spans produced by the template scanner.
// Invariants:
//   - Token.Raw is a slice of the original buffer (no copies) covering the
//     span including any delimiter bytes.
//   - Token.Body is a slice of the original buffer strictly between a tag's
//     opening and closing tokens, trimmed of ASCII whitespace; nil for Plain.
//   - Token.Span matches Raw exactly (Start..End).
//   - Token.Line is 1 plus the number of '\n' bytes before Raw's first byte.
//   - A Plain token is never empty and never starts with a delimiter token.
package token
