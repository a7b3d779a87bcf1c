package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInsightPrompt(t *testing.T) {
	spec := Spec{
		Prompt:  "chart my spending by category",
		Context: "Accounts:\n- Everyday Checking (checking): 2843.17\n",
	}
	p := BuildInsightPrompt(spec)

	for _, key := range []string{FieldName, FieldExplanation, FieldCode} {
		assert.Contains(t, p.System, `"`+key+`"`)
	}
	assert.Contains(t, p.System, "markdown fences")
	assert.Contains(t, p.User, spec.Context)
	assert.Contains(t, p.User, spec.Prompt)
	assert.Empty(t, p.History)
}

func TestBuildRevisionPrompt(t *testing.T) {
	spec := Spec{Prompt: "spending", Context: "Accounts: ..."}
	prev := Insight{Name: "Spending Mix", Explanation: "old", Code: "pie()"}
	history := []Turn{
		{Comment: "initial request"},
		{Comment: ""},
		{Comment: "make it a bar chart"},
	}

	p := BuildRevisionPrompt(spec, prev, "use monthly buckets", history)

	assert.Contains(t, p.User, "use monthly buckets")
	assert.Contains(t, p.User, prev.Code)
	assert.Contains(t, p.User, prev.Name)
	// Empty comments are dropped from the history thread.
	assert.Len(t, p.History, 2)
	assert.Equal(t, "make it a bar chart", p.History[1].Content)
}
