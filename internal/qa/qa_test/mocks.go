package qa_test

import "context"

// MockProvider implements llm.Provider
type MockProvider struct {
	OnGenerate func(ctx context.Context, prompt string) (string, error)
}

func (m *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt)
	}
	return "mocked llm response", nil
}

func (m *MockProvider) Name() string {
	return "mock"
}
