// Package cssescape escapes identifiers and string values for embedding in
// CSS selectors, following the CSSOM serialize-an-identifier rules
// (the algorithm behind CSS.escape in browsers).
package cssescape

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const replacementChar = '�'

// Ident escapes s so it can be used as an identifier: an id after '#',
// a class after '.', or an attribute name.
func Ident(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	first, _ := utf8.DecodeRuneInString(s)
	runeCount := utf8.RuneCountInString(s)

	i := 0
	for _, r := range s {
		switch {
		case r == 0:
			b.WriteRune(replacementChar)
		case (r >= 0x01 && r <= 0x1f) || r == 0x7f:
			writeCodePoint(&b, r)
		case i == 0 && isDigit(r):
			writeCodePoint(&b, r)
		case i == 1 && isDigit(r) && first == '-':
			writeCodePoint(&b, r)
		case i == 0 && r == '-' && runeCount == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' || isDigit(r) || isLetter(r):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
		i++
	}

	return b.String()
}

// String escapes s for use inside a double-quoted CSS string, as in an
// attribute selector value.
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	for _, r := range s {
		switch {
		case r == 0:
			b.WriteRune(replacementChar)
		case (r >= 0x01 && r <= 0x1f) || r == 0x7f:
			writeCodePoint(&b, r)
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// writeCodePoint writes r as a hex escape followed by the terminating space.
func writeCodePoint(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(' ')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
