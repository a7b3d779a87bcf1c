package generator

import (
	"context"
	"errors"

	"ai_finance_dashboard/extract"
)

// Agent turns a Spec plus optional history/feedback into an Insight.
type Agent struct {
	llm    LLMClient
	decode func(string) string
}

// NewAgent wires the model client. compatDecode selects the historical
// ordered-replacement escape decoding instead of the single-pass decoder.
func NewAgent(llm LLMClient, compatDecode bool) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm, decode: extract.Decoder(compatDecode)}, nil
}

// Generate produces a first draft or a revision in one blocking call.
func (a *Agent) Generate(ctx context.Context, spec Spec, prev *Insight, history []Turn, comment string) (Insight, error) {
	raw, err := a.llm.Complete(ctx, a.prompt(spec, prev, history, comment))
	if err != nil {
		return Insight{}, err
	}
	r := newRun(a.decode)
	r.buf.WriteString(raw)
	return PostProcess(r.settle())
}

// GenerateStream produces the same result incrementally. onUpdate is called
// with a refreshed Snapshot after every chunk, and once more when the
// stream settles; it may be nil.
func (a *Agent) GenerateStream(ctx context.Context, spec Spec, prev *Insight, history []Turn, comment string, onUpdate func(Snapshot)) (Insight, error) {
	chunks, errs := a.llm.CompleteStream(ctx, a.prompt(spec, prev, history, comment))

	r := newRun(a.decode)
	for chunk := range chunks {
		snap := r.append(chunk)
		if onUpdate != nil {
			onUpdate(snap)
		}
	}
	select {
	case err := <-errs:
		if err != nil {
			return Insight{}, err
		}
	default:
	}

	snap := r.settle()
	if onUpdate != nil {
		onUpdate(snap)
	}
	return PostProcess(snap)
}

func (a *Agent) prompt(spec Spec, prev *Insight, history []Turn, comment string) Prompt {
	if prev == nil {
		return BuildInsightPrompt(spec)
	}
	return BuildRevisionPrompt(spec, *prev, comment, history)
}
