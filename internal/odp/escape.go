// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package odp

import "strings"

// xmlEntities are the only entity forms EscapeText emits, and the only ones
// it recognizes as already escaped.
var xmlEntities = []string{"amp;", "lt;", "gt;", "quot;", "apos;"}

// EscapeText escapes the five XML-reserved characters as named entities.
// It is idempotent: an ampersand that already introduces one of the five
// entities is left alone, so escaping escaped text is a no-op. Every piece
// of user-supplied text destined for XML content must pass through this
// function exactly once; double-escaping corrupts literal entities and
// produces packages Impress refuses to open.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			if startsEntity(s[i+1:]) {
				b.WriteByte(c)
			} else {
				b.WriteString("&amp;")
			}
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func startsEntity(rest string) bool {
	for _, e := range xmlEntities {
		if strings.HasPrefix(rest, e) {
			return true
		}
	}
	return false
}
