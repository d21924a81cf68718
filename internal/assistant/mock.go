package assistant

import "context"

// MockProvider is a test double for chat providers. It records the models
// tried and the last message payload.
type MockProvider struct {
	Response     string
	Err          error            // returned for every model unless Errs overrides
	Errs         map[string]error // per-model errors
	Calls        []string
	LastMessages []Message
}

// NewMockProvider creates a MockProvider that answers every model with the
// given response.
func NewMockProvider(response string) *MockProvider {
	return &MockProvider{Response: response}
}

func (m *MockProvider) Complete(_ context.Context, model string, messages []Message) (string, error) {
	m.Calls = append(m.Calls, model)
	m.LastMessages = messages
	if err, ok := m.Errs[model]; ok {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
