package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProposeAndRevise(t *testing.T) {
	agent, err := NewAgent(MockLLM{}, false)
	require.NoError(t, err)
	sess := NewSession("s-1", Spec{Prompt: "spending by category"}, agent)

	insight, err := sess.Propose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Spending Overview", insight.Name)
	assert.Equal(t, insight, sess.Insight)
	require.Len(t, sess.History, 1)
	assert.Equal(t, "first draft", sess.History[0].Summary)

	_, err = sess.Revise(context.Background(), "use a line chart")
	require.NoError(t, err)
	require.Len(t, sess.History, 2)
	assert.Equal(t, "use a line chart", sess.History[1].Comment)
}

func TestSessionProposeStream(t *testing.T) {
	agent, err := NewAgent(MockLLM{}, false)
	require.NoError(t, err)
	sess := NewSession("s-2", Spec{Prompt: "spending"}, agent)

	var updates int
	insight, err := sess.ProposeStream(context.Background(), func(Snapshot) { updates++ })
	require.NoError(t, err)

	assert.Greater(t, updates, 1, "streaming must report intermediate snapshots")
	assert.Equal(t, "Spending Overview", insight.Name)
	assert.Contains(t, insight.Code, "barChart")
	// The mock sketch uses tabs; decoding collapses each to two spaces.
	assert.NotContains(t, insight.Code, "\t")
	require.Len(t, sess.History, 1)
}
