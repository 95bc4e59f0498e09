// Package openai provides an OpenAI-compatible LLM provider implementation.
//
// The default base URL points at OpenRouter, which fronts the free-tier
// models the assistant offers, but any chat-completions endpoint works:
//
//	// OpenRouter (default)
//	provider, _ := openai.NewProvider("sk-or-...")
//
//	// Standard OpenAI
//	provider, _ := openai.NewProvider("sk-...",
//	    openai.WithBaseURL("https://api.openai.com/v1"),
//	    openai.WithModel("gpt-4o"))
//
//	// Local OpenAI-compatible API
//	provider, _ := openai.NewProvider("local",
//	    openai.WithBaseURL("http://localhost:8080/v1"))
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	openaigo "github.com/openai/openai-go"

	"github.com/jaiholabs/devlink/pkg/llm"
)

const (
	// DefaultBaseURL is the OpenRouter chat-completions endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is a free-tier model so a fresh install works without a
	// paid key.
	DefaultModel = "meta-llama/llama-3.3-70b-instruct:free"

	defaultTimeout     = 30 * time.Second
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7
)

// Provider implements the LLM provider interface for OpenAI-compatible APIs.
type Provider struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
}

// ProviderOption is a function that configures a Provider.
type ProviderOption func(*Provider)

// WithModel sets the model to use for completions.
func WithModel(model string) ProviderOption {
	return func(p *Provider) {
		p.model = model
	}
}

// WithBaseURL sets a custom base URL for OpenAI-compatible APIs.
func WithBaseURL(baseURL string) ProviderOption {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithMaxTokens caps the response length.
func WithMaxTokens(n int) ProviderOption {
	return func(p *Provider) {
		p.maxTokens = n
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) ProviderOption {
	return func(p *Provider) {
		p.temperature = t
	}
}

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) ProviderOption {
	return func(p *Provider) {
		p.httpClient = c
	}
}

// NewProvider creates a new OpenAI-compatible provider with the given API key.
//
// If apiKey is empty, it will attempt to read from the OPENROUTER_API_KEY
// environment variable. If baseURL is not provided via WithBaseURL, the
// OPENROUTER_BASE_URL environment variable is checked before falling back to
// the default.
func NewProvider(apiKey string, opts ...ProviderOption) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required (provide via parameter or OPENROUTER_API_KEY environment variable)")
	}

	p := &Provider{
		apiKey:      apiKey,
		model:       DefaultModel,
		baseURL:     DefaultBaseURL,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.baseURL == DefaultBaseURL {
		if envBaseURL := os.Getenv("OPENROUTER_BASE_URL"); envBaseURL != "" {
			p.baseURL = envBaseURL
		}
	}

	return p, nil
}

// Complete sends messages to the chat-completions endpoint and returns the
// assistant's reply.
func (p *Provider) Complete(ctx context.Context, messages []*llm.Message) (*llm.Message, error) {
	reqBody := map[string]interface{}{
		"model":       p.model,
		"messages":    convertMessages(messages),
		"max_tokens":  p.maxTokens,
		"temperature": p.temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := p.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &llm.RemoteServiceError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llm.RemoteServiceError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &llm.RemoteServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &llm.RemoteServiceError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}
	if len(parsed.Choices) == 0 {
		return nil, &llm.RemoteServiceError{StatusCode: resp.StatusCode, Body: string(body), Err: fmt.Errorf("response contains no choices")}
	}

	role := parsed.Choices[0].Message.Role
	if role == "" {
		role = string(llm.RoleAssistant)
	}
	return &llm.Message{
		Role:    llm.MessageRole(role),
		Content: parsed.Choices[0].Message.Content,
	}, nil
}

// GetModel returns the model name being used.
func (p *Provider) GetModel() string {
	return p.model
}

// GetBaseURL returns the base URL being used.
func (p *Provider) GetBaseURL() string {
	return p.baseURL
}

// convertMessages converts our Message format to OpenAI's
// ChatCompletionMessageParamUnion format.
func convertMessages(messages []*llm.Message) []openaigo.ChatCompletionMessageParamUnion {
	out := make([]openaigo.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			out = append(out, openaigo.SystemMessage(msg.Content))
		case llm.RoleAssistant:
			out = append(out, openaigo.AssistantMessage(msg.Content))
		default:
			out = append(out, openaigo.UserMessage(msg.Content))
		}
	}
	return out
}
