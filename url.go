package sitescan

import (
	"net/url"
	"strings"
)

// ResolveURL resolves ref against base following RFC 3986.
//
// Leading and trailing C0 control and space characters are trimmed from ref,
// and tab, CR and LF are removed anywhere in it, as browsers do with
// attribute values. Stray '%' signs and remaining control characters are
// percent-encoded. If base cannot be parsed, or ref still cannot be parsed,
// the cleaned ref is returned as-is.
func ResolveURL(base, ref string) string {
	ref = cleanReference(ref)
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		if r, err = url.Parse(escapeInvalid(ref)); err != nil {
			return ref
		}
	}
	return b.ResolveReference(r).String()
}

// IsExternal reports whether candidate lies outside the site at base.
// The test is plain substring containment, so a foreign URL that embeds
// base (e.g., in its query) counts as internal.
func IsExternal(base, candidate string) bool {
	return !strings.Contains(candidate, base)
}

func cleanReference(ref string) string {
	ref = strings.TrimFunc(ref, func(r rune) bool { return r <= ' ' })
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\n':
			return -1
		}
		return r
	}, ref)
}

// escapeInvalid percent-encodes '%' signs that do not start an escape
// sequence and ASCII control characters.
func escapeInvalid(ref string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case c == '%' && !(i+2 < len(ref) && isHex(ref[i+1]) && isHex(ref[i+2])):
			sb.WriteString("%25")
		case c < ' ' || c == 0x7f:
			sb.WriteByte('%')
			sb.WriteByte(hex[c>>4])
			sb.WriteByte(hex[c&0xf])
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
