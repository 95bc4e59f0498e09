package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaiholabs/devlink/pkg/llm"
)

// Chat is one conversation with the assistant. History accumulates across
// Ask calls until Clear; the system prompt is prepended on every request
// but never stored in history.
type Chat struct {
	provider llm.Provider
	system   string
	history  []*llm.Message
}

// NewChat creates an empty conversation. A nil provider is allowed; Ask
// then fails with a configuration message so the UI can prompt for a key.
func NewChat() *Chat {
	return &Chat{system: ChatSystemPrompt}
}

// SetProvider wires the LLM backend. Safe to call again when the user
// changes models.
func (c *Chat) SetProvider(p llm.Provider) {
	c.provider = p
}

// History returns the conversation turns so far, oldest first.
func (c *Chat) History() []*llm.Message {
	return c.history
}

// Outgoing builds the request for a prompt without touching the history:
// the system prompt, the conversation so far, and the new user turn. The
// returned slice is the caller's; concurrent requests never share it.
//
// Callers that run Complete off their state-owning goroutine use Outgoing
// and Record around it so all Chat mutation stays on that goroutine.
func (c *Chat) Outgoing(prompt string) ([]*llm.Message, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("empty prompt")
	}

	messages := make([]*llm.Message, 0, len(c.history)+2)
	messages = append(messages, llm.NewSystemMessage(c.system))
	messages = append(messages, c.history...)
	messages = append(messages, llm.NewUserMessage(prompt))
	return messages, nil
}

// Record appends a completed exchange to the history.
func (c *Chat) Record(prompt string, reply *llm.Message) {
	c.history = append(c.history, llm.NewUserMessage(prompt), reply)
}

// Ask sends the conversation plus the user's prompt to the provider and
// records the exchange. The history only changes on success, so a failed
// request can simply be retried.
func (c *Chat) Ask(ctx context.Context, prompt string) (*llm.Message, error) {
	if c.provider == nil {
		return nil, fmt.Errorf("no AI provider configured (set an OpenRouter API key)")
	}

	messages, err := c.Outgoing(prompt)
	if err != nil {
		return nil, err
	}

	reply, err := c.provider.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	c.Record(prompt, reply)
	return reply, nil
}

// OneShot sends a single standalone prompt without touching the chat
// history. The explainer, summarizer, and generator tools use this.
func (c *Chat) OneShot(ctx context.Context, prompt string) (string, error) {
	if c.provider == nil {
		return "", fmt.Errorf("no AI provider configured (set an OpenRouter API key)")
	}
	reply, err := c.provider.Complete(ctx, []*llm.Message{llm.NewUserMessage(prompt)})
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}

// Clear drops the conversation history.
func (c *Chat) Clear() {
	c.history = nil
}
