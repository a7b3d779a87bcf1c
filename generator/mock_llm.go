package generator

import (
	"context"
	"strings"

	"github.com/tidwall/sjson"
)

// MockLLM is a deterministic stand-in that never calls out, for local
// demos and handler tests.
type MockLLM struct{}

const mockSketch = "const spend = [420.50, 180.25, 96.00, 310.75];\n" +
	"const labels = [\"Rent\", \"Groceries\", \"Transport\", \"Dining\"];\n" +
	"function draw() {\n\tbarChart(labels, spend);\n}"

func (m MockLLM) payload(prompt Prompt) string {
	topic := prompt.User
	if i := strings.IndexByte(topic, '\n'); i >= 0 {
		topic = topic[:i]
	}
	doc, _ := sjson.Set("{}", FieldName, "Spending Overview")
	doc, _ = sjson.Set(doc, FieldExplanation,
		"A bar chart of this month's spending by category, built from the mock ledger. Requested: "+topic)
	doc, _ = sjson.Set(doc, FieldCode, mockSketch)
	return doc
}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	return m.payload(prompt), nil
}

// CompleteStream replays the canned document in small slices so the
// streaming path gets exercised end to end, escape splits included.
func (m MockLLM) CompleteStream(ctx context.Context, prompt Prompt) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)
	doc := m.payload(prompt)

	go func() {
		defer close(chunks)
		const step = 7
		for i := 0; i < len(doc); i += step {
			end := i + step
			if end > len(doc) {
				end = len(doc)
			}
			select {
			case chunks <- doc[i:end]:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return chunks, errs
}
