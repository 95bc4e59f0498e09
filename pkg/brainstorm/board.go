// Package brainstorm implements the brainstorming board: a manual idea
// list plus AI-generated ideas for a topic.
package brainstorm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaiholabs/devlink/pkg/llm"
)

// Kind steers what the generator asks for.
type Kind string

const (
	KindIdeas        Kind = "Ideas"
	KindSolutions    Kind = "Solutions"
	KindFeatures     Kind = "Features"
	KindImprovements Kind = "Improvements"
)

// Kinds lists the generator kinds in display order.
var Kinds = []Kind{KindIdeas, KindSolutions, KindFeatures, KindImprovements}

// Idea count limits for the generator.
const (
	MinIdeas     = 5
	MaxIdeas     = 20
	DefaultIdeas = 10
)

// Board is the idea list. Manual and generated ideas share it.
type Board struct {
	provider llm.Provider
	ideas    []string
}

// NewBoard creates an empty board. A provider is only needed for
// GenerateIdeas; the manual board works without one.
func NewBoard() *Board {
	return &Board{}
}

// SetProvider wires the LLM backend for idea generation.
func (b *Board) SetProvider(p llm.Provider) {
	b.provider = p
}

// Ideas returns the board contents, oldest first.
func (b *Board) Ideas() []string {
	return b.ideas
}

// Add appends a manual idea. Blank ideas are rejected.
func (b *Board) Add(idea string) error {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return fmt.Errorf("empty idea")
	}
	b.ideas = append(b.ideas, idea)
	return nil
}

// Remove deletes one idea by position.
func (b *Board) Remove(i int) error {
	if i < 0 || i >= len(b.ideas) {
		return fmt.Errorf("idea %d out of range", i)
	}
	b.ideas = append(b.ideas[:i], b.ideas[i+1:]...)
	return nil
}

// Clear empties the board.
func (b *Board) Clear() {
	b.ideas = nil
}

// GeneratePrompt builds the request prompt for generating ideas, returning
// it together with the count clamped to the supported range. Pure; callers
// that run the provider call off their state-owning goroutine pair it with
// ParseIdeas and Extend so all board mutation stays on that goroutine.
func GeneratePrompt(topic string, kind Kind, count int) (string, int, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", 0, fmt.Errorf("empty topic")
	}
	if count < MinIdeas {
		count = MinIdeas
	}
	if count > MaxIdeas {
		count = MaxIdeas
	}

	prompt := fmt.Sprintf(
		"Brainstorm exactly %d %s for the following topic or challenge:\n%q\n\n"+
			"Respond with one %s per line, numbered. Keep each to a single concise sentence.",
		count, strings.ToLower(string(kind)), topic,
		strings.ToLower(strings.TrimSuffix(string(kind), "s")))
	return prompt, count, nil
}

// Extend appends already-parsed ideas to the board.
func (b *Board) Extend(ideas []string) {
	b.ideas = append(b.ideas, ideas...)
}

// GenerateIdeas asks the provider for ideas on a topic and appends them to
// the board. Count is clamped to the supported range. Returns the new ideas.
func (b *Board) GenerateIdeas(ctx context.Context, topic string, kind Kind, count int) ([]string, error) {
	if b.provider == nil {
		return nil, fmt.Errorf("no AI provider configured (set an OpenRouter API key)")
	}

	prompt, count, err := GeneratePrompt(topic, kind, count)
	if err != nil {
		return nil, err
	}

	reply, err := b.provider.Complete(ctx, []*llm.Message{llm.NewUserMessage(prompt)})
	if err != nil {
		return nil, err
	}

	generated := ParseIdeas(reply.Content, count)
	if len(generated) == 0 {
		return nil, fmt.Errorf("the model returned no usable ideas")
	}
	b.Extend(generated)
	return generated, nil
}

// ParseIdeas extracts at most limit list items from a model reply, stripping
// numbering and bullet markers.
func ParseIdeas(reply string, limit int) []string {
	var out []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "0123456789")
		line = strings.TrimLeft(line, ".)- *\t")
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out
}
