package generator

import (
	"strings"

	"ai_finance_dashboard/extract"
)

// run holds the state of one generation: the cumulative model output and
// the last good decoded value of each field. A run is created fresh for
// every generation so nothing leaks across sessions, and its buffer only
// ever grows (the model appends, never rewrites).
type run struct {
	buf     strings.Builder
	last    map[string]string
	decode  func(string) string
	settled bool
}

func newRun(decode func(string) string) *run {
	return &run{
		last:   make(map[string]string, len(InsightFields)),
		decode: decode,
	}
}

// append adds a chunk of model output and returns the refreshed view.
func (r *run) append(chunk string) Snapshot {
	r.buf.WriteString(chunk)
	return r.update()
}

// update extracts against the current buffer and folds non-empty values
// into the cache. An empty result never clobbers a cached value, so a
// transient parse miss on a malformed chunk cannot blank the display.
func (r *run) update() Snapshot {
	res := extract.Extract(r.buf.String(), InsightFields)
	for name, raw := range res {
		if raw != "" {
			r.last[name] = r.decode(raw)
		}
	}
	return r.snapshot()
}

// settle runs the final extraction over the complete buffer. A field the
// closed pass still cannot match (malformed model output) keeps the value
// it streamed up to, rather than reverting to empty.
func (r *run) settle() Snapshot {
	snap := r.update()
	r.settled = true
	snap.Settled = true
	return snap
}

func (r *run) snapshot() Snapshot {
	return Snapshot{
		Name:        r.last[FieldName],
		Explanation: r.last[FieldExplanation],
		Code:        r.last[FieldCode],
		Settled:     r.settled,
	}
}
