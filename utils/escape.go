package utils

const upperhex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s following the RFC 3986 unreserved-character
// rule: ASCII letters, digits, and '-', '_', '.', '~' pass through, every other
// byte becomes %XX with uppercase hex. Encoding is byte-wise, so multi-byte
// runes are escaped one byte at a time. A space encodes as %20, never '+'.
func EscapeComponent(s string) string {
	return escape(s, false)
}

// EscapeObjectKey is EscapeComponent with '/' additionally preserved, since
// object keys are hierarchical paths whose separators must survive escaping.
func EscapeObjectKey(s string) string {
	return escape(s, true)
}

func escape(s string, keepSlash bool) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i], keepSlash) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*hexCount)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c, keepSlash) {
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&0xf])
		} else {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

func shouldEscape(c byte, keepSlash bool) bool {
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '~':
		return false
	case '/':
		return !keepSlash
	}
	return true
}
