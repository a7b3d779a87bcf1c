// Package extract pulls named string fields out of a JSON object that is
// still being generated. The buffer handed to Extract is whatever has
// arrived from the model so far: it may be empty, cut off mid-string or
// mid-escape, or a complete valid document. Extraction never fails; a field
// that cannot be found yet is simply the empty string.
package extract

import (
	"regexp"
	"sync"

	"github.com/tidwall/gjson"
)

// Fields is the ordered set of top-level string properties expected in the
// eventual JSON object. Fixed per generation session.
type Fields []string

// Result maps each requested field to its best-known value, still
// JSON-escaped. Run values through Decode before display.
type Result map[string]string

var (
	patternMu sync.Mutex
	closedRes = map[string]*regexp.Regexp{}
	openRes   = map[string]*regexp.Regexp{}
)

// patterns returns the closed- and open-string matchers for one field.
// Compiled once per field name; sessions reuse the same small fixed set.
func patterns(name string) (closed, open *regexp.Regexp) {
	patternMu.Lock()
	defer patternMu.Unlock()
	if c, ok := closedRes[name]; ok {
		return c, openRes[name]
	}
	// The character class accepts anything that is not a quote or
	// backslash, or a backslash followed by any single character, so an
	// escape sequence is never split in half.
	key := `"` + regexp.QuoteMeta(name) + `"\s*:\s*"`
	closedRes[name] = regexp.MustCompile(key + `((?:[^"\\]|\\.)*)"`)
	// The open matcher is deliberately unanchored: a buffer ending in a
	// lone backslash still matches everything before it, the dangling
	// escape is picked up once its second character arrives.
	openRes[name] = regexp.MustCompile(key + `((?:[^"\\]|\\.)*)`)
	return closedRes[name], openRes[name]
}

// Extract returns the best-available raw value of each field in buffer.
//
// A buffer that already parses as valid JSON is read exactly. Otherwise two
// pattern passes run per field: first a terminated string (closing unescaped
// quote found), then an unterminated run to the end of the buffer so the
// caller can render a value character-by-character while it streams in.
// Pure function of its inputs; never panics, never returns an error.
func Extract(buffer string, fields Fields) Result {
	res := make(Result, len(fields))
	if gjson.Valid(buffer) {
		for _, name := range fields {
			res[name] = rawString(gjson.Get(buffer, name))
		}
		return res
	}
	for _, name := range fields {
		closed, open := patterns(name)
		if m := closed.FindStringSubmatch(buffer); m != nil {
			res[name] = m[1]
			continue
		}
		if m := open.FindStringSubmatch(buffer); m != nil {
			res[name] = m[1]
			continue
		}
		res[name] = ""
	}
	return res
}

// rawString strips the surrounding quotes off a gjson string result so the
// settled path yields the same still-escaped form as the pattern passes.
func rawString(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	raw := r.Raw
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	return raw
}
