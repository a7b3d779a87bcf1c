package generator

import (
	"time"

	"ai_finance_dashboard/extract"
)

// Top-level string properties the model is instructed to emit in its JSON
// reply. The set is configuration, not data: it never changes mid-session.
const (
	FieldName        = "name"
	FieldExplanation = "explanation"
	FieldCode        = "code"
)

// InsightFields is the extraction spec for insight documents.
var InsightFields = extract.Fields{FieldName, FieldExplanation, FieldCode}

// Spec describes the requested insight before generation.
type Spec struct {
	Prompt  string // what the user asked to visualize
	Context string // compact text summary of the ledger, fed into the prompt
}

// Insight is the model's structured reply after decoding and fence
// stripping: a short name, a prose explanation, and runnable sketch code.
type Insight struct {
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
	Code        string `json:"code"`
}

// Turn records one generation or revision of an insight.
type Turn struct {
	Comment   string    `json:"comment"`
	Insight   Insight   `json:"insight"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is the live view of a streaming generation, pushed to the UI on
// every buffer update. Values only ever grow or stay put within a run; the
// run's value cache keeps a transient parse miss from blanking a field.
type Snapshot struct {
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
	Code        string `json:"code"`
	Settled     bool   `json:"settled"`
}
