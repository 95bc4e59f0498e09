// Package llm provides abstractions for LLM provider integration.
//
// Example usage:
//
//	provider, err := openai.NewProvider(
//	    os.Getenv("OPENROUTER_API_KEY"),
//	    openai.WithModel("meta-llama/llama-3.3-70b-instruct:free"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reply, err := provider.Complete(ctx, []*llm.Message{
//	    llm.NewSystemMessage("You are a helpful assistant."),
//	    llm.NewUserMessage("Hello!"),
//	})
package llm

import (
	"context"
	"fmt"
)

// MessageRole identifies who produced a message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) *Message {
	return &Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) *Message {
	return &Message{Role: RoleAssistant, Content: content}
}

// Provider defines the interface for LLM integrations.
//
// Providers handle API communication and nothing else; conversation state,
// prompt templates, and retry policy live with the caller. This keeps
// providers reusable outside the assistant and testable with a stub.
type Provider interface {
	// Complete sends the conversation to the LLM and returns the assistant's
	// reply. Transport and API failures come back as *RemoteServiceError.
	Complete(ctx context.Context, messages []*Message) (*Message, error)

	// GetModel returns the model name being used.
	GetModel() string

	// GetBaseURL returns the base URL being used for API requests.
	GetBaseURL() string
}

// RemoteServiceError reports a failed call to the LLM service: a transport
// error, a non-2xx status, or an unusable response body.
type RemoteServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm request failed with status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("llm request failed: %v", e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}
