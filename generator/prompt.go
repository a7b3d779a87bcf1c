package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message set sent to the model.
type Prompt struct {
	System  string
	User    string
	History []Message
}

// Message carries a small amount of optional history.
type Message struct {
	Role    string
	Content string
}

const insightSystem = "You are a data-visualization assistant for a banking dashboard. " +
	"Reply with a single JSON object and nothing else. The object has exactly three string keys: " +
	"\"" + FieldName + "\" (a short chart title), " +
	"\"" + FieldExplanation + "\" (one or two sentences on what the chart shows and why it is useful), and " +
	"\"" + FieldCode + "\" (a complete JavaScript sketch that draws the chart). " +
	"Do not wrap the code in markdown fences. Do not add commentary outside the JSON."

// BuildInsightPrompt builds the first-draft prompt for a session.
func BuildInsightPrompt(spec Spec) Prompt {
	var sb strings.Builder
	sb.WriteString("Account data:\n")
	sb.WriteString(spec.Context)
	sb.WriteString("\n\nRequest: ")
	sb.WriteString(spec.Prompt)

	return Prompt{
		System:  insightSystem,
		User:    sb.String(),
		History: nil,
	}
}

// BuildRevisionPrompt asks for the minimum change to the previous insight
// that satisfies the user's comment, keeping the same JSON shape.
func BuildRevisionPrompt(spec Spec, prev Insight, comment string, history []Turn) Prompt {
	var sb strings.Builder
	sb.WriteString(insightSystem)
	sb.WriteString(" Revise the previous insight with the smallest change that addresses the feedback; ")
	sb.WriteString("keep the same keys and keep the code self-contained.")

	user := fmt.Sprintf("Account data:\n%s\n\nPrevious name: %s\nPrevious explanation: %s\nPrevious code:\n%s\n\nFeedback: %s",
		spec.Context, prev.Name, prev.Explanation, prev.Code, comment)

	// Recent feedback turns, oldest first, so the model sees the thread.
	var msgs []Message
	for _, t := range history {
		if t.Comment == "" {
			continue
		}
		msgs = append(msgs, Message{Role: "user", Content: t.Comment})
	}

	return Prompt{
		System:  sb.String(),
		User:    user,
		History: msgs,
	}
}
