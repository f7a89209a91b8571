package llm

import "context"

// Provider is one round trip to an external language model: prompt in,
// plain-text answer out.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
