package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("A **clear** look at spending.")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>clear</strong>")

	html, err = RenderHTML("")
	require.NoError(t, err)
	assert.Empty(t, html)
}
