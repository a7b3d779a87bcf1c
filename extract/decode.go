package extract

import "strings"

// Decode reverses JSON string escaping in a single left-to-right pass,
// consuming each two-character escape as one token: \n becomes a newline,
// \" a quote, \\ a single backslash, \t two spaces. Unknown escapes and a
// dangling backslash at the end of a partial value pass through literally.
func Decode(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(raw) {
			b.WriteByte(c)
			break
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 't':
			b.WriteString("  ")
		default:
			b.WriteByte('\\')
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// DecodeCompat applies the ordered global replacements the dashboard
// originally shipped with. Escaped backslashes are not consumed atomically:
// given a literal backslash followed by n (the four characters \\n), the
// \n replacement fires on the second backslash, leaving a stray \ and an
// injected newline. Kept selectable because existing sessions were tuned
// against this behavior and model-written code rarely trips it.
func DecodeCompat(raw string) string {
	s := strings.ReplaceAll(raw, `\n`, "\n")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\t`, "  ")
	return s
}

// Decoder picks the escape-reversal strategy from config.
func Decoder(compat bool) func(string) string {
	if compat {
		return DecodeCompat
	}
	return Decode
}
