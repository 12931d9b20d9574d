package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Captura los prompts
// recibidos para poder asertarlos.
type MockClient struct {
	Response string
	Err      error

	LastSystemPrompt string
	LastUserPrompt   string
	Calls            int
}

func (m *MockClient) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.Calls++
	m.LastSystemPrompt = systemPrompt
	m.LastUserPrompt = userPrompt
	return m.Response, m.Err
}
