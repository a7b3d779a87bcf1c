package generator

import (
	"context"
	"time"
)

// Session holds one insight topic across generate/revise turns.
type Session struct {
	ID      string
	Spec    Spec
	Insight Insight
	History []Turn
	agent   *Agent
}

// NewSession creates a session; no insight has been generated yet.
func NewSession(id string, spec Spec, agent *Agent) *Session {
	return &Session{
		ID:    id,
		Spec:  spec,
		agent: agent,
	}
}

// Propose generates the first draft in one blocking call.
func (s *Session) Propose(ctx context.Context) (Insight, error) {
	insight, err := s.agent.Generate(ctx, s.Spec, nil, s.History, "")
	if err != nil {
		return Insight{}, err
	}
	s.Insight = insight
	s.appendTurn("initial request", insight, "first draft")
	return insight, nil
}

// ProposeStream generates the first draft incrementally, reporting a
// Snapshot to onUpdate after every chunk.
func (s *Session) ProposeStream(ctx context.Context, onUpdate func(Snapshot)) (Insight, error) {
	insight, err := s.agent.GenerateStream(ctx, s.Spec, nil, s.History, "", onUpdate)
	if err != nil {
		return Insight{}, err
	}
	s.Insight = insight
	s.appendTurn("initial request", insight, "first draft")
	return insight, nil
}

// Revise regenerates the insight against the user's comment.
func (s *Session) Revise(ctx context.Context, comment string) (Insight, error) {
	insight, err := s.agent.Generate(ctx, s.Spec, &s.Insight, s.History, comment)
	if err != nil {
		return Insight{}, err
	}
	s.Insight = insight
	s.appendTurn(comment, insight, "revision")
	return insight, nil
}

func (s *Session) appendTurn(comment string, insight Insight, summary string) {
	s.History = append(s.History, Turn{
		Comment:   comment,
		Insight:   insight,
		Summary:   summary,
		CreatedAt: time.Now(),
	})
}
