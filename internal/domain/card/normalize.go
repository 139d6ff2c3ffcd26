package card

import (
	"fmt"
	"strings"
)

// Normalize strips every character that is not an ASCII digit.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizeValue normalizes the text form of any value.
func NormalizeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return Normalize(val)
	case []byte:
		return Normalize(string(val))
	case fmt.Stringer:
		return Normalize(val.String())
	default:
		return Normalize(fmt.Sprint(val))
	}
}
