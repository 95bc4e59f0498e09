package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jaiholabs/devlink/pkg/llm"
)

// stubProvider records the messages it receives and replies with a canned
// response or error.
type stubProvider struct {
	reply string
	err   error
	calls [][]*llm.Message
}

func (s *stubProvider) Complete(ctx context.Context, messages []*llm.Message) (*llm.Message, error) {
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return nil, s.err
	}
	return llm.NewAssistantMessage(s.reply), nil
}

func (s *stubProvider) GetModel() string   { return "stub" }
func (s *stubProvider) GetBaseURL() string { return "" }

func TestChatAsk(t *testing.T) {
	stub := &stubProvider{reply: "hi there"}
	chat := NewChat()
	chat.SetProvider(stub)

	reply, err := chat.Ask(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Content != "hi there" {
		t.Errorf("unexpected reply %q", reply.Content)
	}

	if len(chat.History()) != 2 {
		t.Fatalf("expected 2 history turns, got %d", len(chat.History()))
	}

	sent := stub.calls[0]
	if sent[0].Role != llm.RoleSystem || sent[0].Content != ChatSystemPrompt {
		t.Error("system prompt not prepended")
	}
	if sent[1].Role != llm.RoleUser || sent[1].Content != "hello" {
		t.Errorf("unexpected user turn %+v", sent[1])
	}
}

func TestChatHistoryAccumulates(t *testing.T) {
	stub := &stubProvider{reply: "ok"}
	chat := NewChat()
	chat.SetProvider(stub)

	if _, err := chat.Ask(context.Background(), "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := chat.Ask(context.Background(), "second"); err != nil {
		t.Fatal(err)
	}

	// Second request carries system + full history.
	second := stub.calls[1]
	if len(second) != 4 {
		t.Fatalf("expected 4 messages on second call, got %d", len(second))
	}

	chat.Clear()
	if len(chat.History()) != 0 {
		t.Error("Clear left history behind")
	}
}

func TestChatAskFailureRollsBack(t *testing.T) {
	stub := &stubProvider{err: &llm.RemoteServiceError{StatusCode: 500, Body: "boom"}}
	chat := NewChat()
	chat.SetProvider(stub)

	_, err := chat.Ask(context.Background(), "hello")
	var remoteErr *llm.RemoteServiceError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected *RemoteServiceError, got %v", err)
	}
	if len(chat.History()) != 0 {
		t.Error("failed ask left a dangling user turn in history")
	}
}

func TestOutgoingLeavesHistoryAlone(t *testing.T) {
	chat := NewChat()
	chat.Record("earlier", llm.NewAssistantMessage("noted"))

	messages, err := chat.Outgoing("next question")
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 4 {
		t.Fatalf("expected system + history + prompt, got %d messages", len(messages))
	}
	if messages[3].Content != "next question" {
		t.Errorf("prompt turn = %q", messages[3].Content)
	}
	if len(chat.History()) != 2 {
		t.Errorf("Outgoing mutated history: %d turns", len(chat.History()))
	}

	if _, err := chat.Outgoing("   "); err == nil {
		t.Error("expected error for blank prompt")
	}
}

func TestRecordAppendsExchange(t *testing.T) {
	chat := NewChat()
	chat.Record("q", llm.NewAssistantMessage("a"))

	history := chat.History()
	if len(history) != 2 {
		t.Fatalf("history = %d turns", len(history))
	}
	if history[0].Role != llm.RoleUser || history[1].Role != llm.RoleAssistant {
		t.Errorf("roles = %s, %s", history[0].Role, history[1].Role)
	}
}

func TestChatWithoutProvider(t *testing.T) {
	chat := NewChat()
	if _, err := chat.Ask(context.Background(), "hello"); err == nil {
		t.Error("expected error without provider")
	}
	if _, err := chat.OneShot(context.Background(), "hello"); err == nil {
		t.Error("expected error without provider")
	}
}

func TestOneShotSkipsHistory(t *testing.T) {
	stub := &stubProvider{reply: "answer"}
	chat := NewChat()
	chat.SetProvider(stub)

	out, err := chat.OneShot(context.Background(), ExplainCodePrompt("print(1)", "Python", "Simple"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "answer" {
		t.Errorf("unexpected output %q", out)
	}
	if len(chat.History()) != 0 {
		t.Error("OneShot polluted chat history")
	}
	if len(stub.calls[0]) != 1 {
		t.Errorf("expected a single message, got %d", len(stub.calls[0]))
	}
}

func TestPromptBuilders(t *testing.T) {
	t.Run("explainer", func(t *testing.T) {
		p := ExplainCodePrompt("def f(): pass", "Python", "Line by Line")
		for _, want := range []string{"```python", "def f(): pass", "Line-by-line breakdown"} {
			if !strings.Contains(p, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
		if strings.Contains(ExplainCodePrompt("x", "Go", "Simple"), "Line-by-line") {
			t.Error("simple explanation should not request a line-by-line breakdown")
		}
	})

	t.Run("summarizer", func(t *testing.T) {
		p := SummarizePrompt("some text", "Brief (1-2 paragraphs)", "Bullet Points")
		if !strings.Contains(p, "a brief summary") {
			t.Errorf("length not reduced to its leading word:\n%s", p)
		}
		if !strings.Contains(p, "Present as bullet points") {
			t.Error("bullet style not requested")
		}
	})

	t.Run("image", func(t *testing.T) {
		p := ImagePrompt("a city at night", "Digital Art", "Dark & Moody")
		for _, want := range []string{`"a city at night"`, "Style: Digital Art", "Negative prompts"} {
			if !strings.Contains(p, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})

	t.Run("generator", func(t *testing.T) {
		p := GenerateCodePrompt("a factorial function", "Go", "Clean & Simple", true)
		if !strings.Contains(p, "Test cases to verify functionality") {
			t.Error("tests requested but not in prompt")
		}
		p = GenerateCodePrompt("a factorial function", "Go", "Clean & Simple", false)
		if strings.Contains(p, "test cases") {
			t.Error("tests not requested but present in prompt")
		}
	})
}

func TestFileExtensionFor(t *testing.T) {
	if got := FileExtensionFor("Go"); got != ".go" {
		t.Errorf("expected .go, got %q", got)
	}
	if got := FileExtensionFor("COBOL"); got != ".txt" {
		t.Errorf("expected .txt fallback, got %q", got)
	}
}

func TestCountTokens(t *testing.T) {
	n := CountTokens("meta-llama/llama-3.3-70b-instruct:free", "hello world, this is a prompt")
	if n <= 0 {
		t.Errorf("expected a positive token count, got %d", n)
	}
	long := strings.Repeat("word ", 100)
	if CountTokens("gpt-4o", long) <= CountTokens("gpt-4o", "word") {
		t.Error("longer text should cost more tokens")
	}
}
