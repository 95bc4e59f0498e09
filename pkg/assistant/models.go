// Package assistant implements the AI tools: a chat session with history
// and the prompt builders for the code explainer, document summarizer,
// image-prompt generator, and code generator. Provider transport lives in
// pkg/llm; this package owns conversation state and prompt construction.
package assistant

// Model pairs a display name with an OpenRouter model identifier. The
// lineup is free-tier models so the tools work without a paid key.
type Model struct {
	Name string
	ID   string
}

// FreeModels is the model picker lineup, in display order.
var FreeModels = []Model{
	{Name: "Gemma 3 (Free)", ID: "google/gemma-3-27b-it:free"},
	{Name: "DeepSeek R1 (Free)", ID: "deepseek/deepseek-r1:free"},
	{Name: "Llama 3.3 70B (Free)", ID: "meta-llama/llama-3.3-70b-instruct:free"},
	{Name: "Llama 4 Maverick (Free) - Image", ID: "meta-llama/llama-4-maverick:free"},
}

// Token limits for the max-tokens selector.
const (
	MinTokens     = 100
	MaxTokens     = 4000
	DefaultTokens = 1000
)
