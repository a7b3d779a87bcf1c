package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

func TestExtractOpenString(t *testing.T) {
	// Streaming: the title string has no closing quote yet.
	res := Extract(`{"title":"Hi`, Fields{"title"})
	assert.Equal(t, "Hi", res["title"])
}

func TestExtractClosedStrings(t *testing.T) {
	res := Extract(`{"title":"Hi","body":"ok"}`, Fields{"title", "body"})
	assert.Equal(t, "Hi", res["title"])
	assert.Equal(t, "ok", res["body"])

	// Same document cut before the final brace: title closed, body closed,
	// buffer not yet valid JSON, so the pattern passes must carry it.
	res = Extract(`{"title":"Hi","body":"ok"`, Fields{"title", "body"})
	assert.Equal(t, "Hi", res["title"])
	assert.Equal(t, "ok", res["body"])
}

func TestExtractEscapedNewline(t *testing.T) {
	res := Extract(`{"code":"line1\nline2"}`, Fields{"code"})
	require.Equal(t, `line1\nline2`, res["code"])
	assert.Equal(t, "line1\nline2", Decode(res["code"]))
}

func TestExtractWhitespaceAroundColon(t *testing.T) {
	res := Extract(`{"title" :  "Spaced out"`, Fields{"title"})
	assert.Equal(t, "Spaced out", res["title"])
}

func TestExtractEmptyBuffer(t *testing.T) {
	res := Extract("", Fields{"title", "body"})
	assert.Equal(t, "", res["title"])
	assert.Equal(t, "", res["body"])
}

func TestExtractBufferEndsAtOpeningQuote(t *testing.T) {
	res := Extract(`{"title":"`, Fields{"title"})
	assert.Equal(t, "", res["title"])
}

func TestExtractDanglingBackslash(t *testing.T) {
	// Buffer ends mid-escape. The open pattern is unanchored, so the value
	// simply stops before the dangling backslash; no crash, no empty flash.
	res := Extract(`{"title":"abc\`, Fields{"title"})
	assert.Equal(t, "abc", res["title"])
}

func TestExtractEscapedQuoteInsideValue(t *testing.T) {
	res := Extract(`{"title":"say \"hi\" now"}`, Fields{"title"})
	assert.Equal(t, `say \"hi\" now`, res["title"])
	assert.Equal(t, `say "hi" now`, Decode(res["title"]))
}

func TestExtractMissingField(t *testing.T) {
	res := Extract(`{"title":"Hi"}`, Fields{"title", "body"})
	assert.Equal(t, "Hi", res["title"])
	assert.Equal(t, "", res["body"])
}

func TestExtractNonStringField(t *testing.T) {
	// A numeric value for a requested field yields empty on the settled
	// path; the field spec only covers string properties.
	res := Extract(`{"title":42}`, Fields{"title"})
	assert.Equal(t, "", res["title"])
}

// Known limitation: on malformed mid-stream text with unescaped quotes, a
// field key pattern inside another field's value is indistinguishable from
// the real key. This pins the current behavior rather than an ideal one;
// once the buffer settles into valid JSON the exact parse takes over.
func TestExtractKeyPatternInsideValueMidStream(t *testing.T) {
	buffer := `{"body":"note "title": "fake" end`
	res := Extract(buffer, Fields{"title", "body"})
	assert.Equal(t, "fake", res["title"])
	assert.Equal(t, "note ", res["body"])
}

func TestExtractKeyPatternInsideValueSettled(t *testing.T) {
	// Properly escaped, the same text cannot be confused with a key.
	buffer := `{"body":"note \"title\": \"fake\" end","title":"Real"}`
	res := Extract(buffer, Fields{"title", "body"})
	assert.Equal(t, "Real", res["title"])
	assert.Equal(t, `note \"title\": \"fake\" end`, res["body"])
}

func TestExtractIdempotent(t *testing.T) {
	buffer := `{"title":"Hi","body":"partial `
	fields := Fields{"title", "body"}
	require.Equal(t, Extract(buffer, fields), Extract(buffer, fields))
}

func TestExtractRoundTrip(t *testing.T) {
	name := `Cash "Flow" Monthly`
	code := "plot()\nrender(\"all\")\n\\raw\\"
	doc, err := sjson.Set("{}", "name", name)
	require.NoError(t, err)
	doc, err = sjson.Set(doc, "code", code)
	require.NoError(t, err)

	res := Extract(doc, Fields{"name", "code"})
	assert.Equal(t, name, Decode(res["name"]))
	assert.Equal(t, code, Decode(res["code"]))
}

func TestExtractPrefixConsistency(t *testing.T) {
	final := `{"name":"Cash Flow","explanation":"Inflow vs outflow","code":"plot()\nrender()"}`
	fields := Fields{"name", "explanation", "code"}

	want := make(map[string]string)
	for f, raw := range Extract(final, fields) {
		want[f] = Decode(raw)
	}

	prev := make(map[string]string)
	for i := 0; i <= len(final); i++ {
		res := Extract(final[:i], fields)
		for _, f := range fields {
			got := Decode(res[f])
			if got == "" {
				continue
			}
			// Once non-empty, every value is a prefix of the final value
			// and never shorter than what the previous buffer produced.
			assert.True(t, strings.HasPrefix(want[f], got),
				"field %s at prefix %d: %q is not a prefix of %q", f, i, got, want[f])
			assert.GreaterOrEqual(t, len(got), len(prev[f]),
				"field %s shrank at prefix %d", f, i)
			prev[f] = got
		}
	}
	assert.Equal(t, want["name"], prev["name"])
	assert.Equal(t, want["explanation"], prev["explanation"])
	assert.Equal(t, want["code"], prev["code"])
}

func TestExtractNeverPanics(t *testing.T) {
	fields := Fields{"title", "code"}
	inputs := []string{
		`{`, `{"`, `{"t`, `{"title`, `{"title"`, `{"title":`, `{"title":"`,
		`{"title":"a\`, `{"title":"a\"`, `not json at all`, `\\\\\\`,
		"{\"title\":\"\x00\x01\"", `{"title":"ok"}{"title":"dup"}`,
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Extract(in, fields) }, "input %q", in)
	}
}
