package dashboard

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// RenderHTML converts the insight explanation markdown to HTML for the
// dashboard panel.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
