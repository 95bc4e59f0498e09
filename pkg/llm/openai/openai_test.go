package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jaiholabs/devlink/pkg/llm"
)

func TestComplete(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello back"}}]}`))
	}))
	defer server.Close()

	provider, err := NewProvider("test-key", WithBaseURL(server.URL), WithModel("test-model"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply, err := provider.Complete(context.Background(), []*llm.Message{
		llm.NewSystemMessage("You are terse."),
		llm.NewUserMessage("Hello"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply.Role != llm.RoleAssistant {
		t.Errorf("expected assistant role, got %q", reply.Role)
	}
	if reply.Content != "Hello back" {
		t.Errorf("unexpected content %q", reply.Content)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("unexpected model %v", gotBody["model"])
	}
	if msgs, ok := gotBody["messages"].([]interface{}); !ok || len(msgs) != 2 {
		t.Errorf("expected 2 messages in request, got %v", gotBody["messages"])
	}
}

func TestCompleteErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		provider, _ := NewProvider("test-key", WithBaseURL(server.URL))
		_, err := provider.Complete(context.Background(), []*llm.Message{llm.NewUserMessage("hi")})

		var remoteErr *llm.RemoteServiceError
		if !errors.As(err, &remoteErr) {
			t.Fatalf("expected *RemoteServiceError, got %v", err)
		}
		if remoteErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("expected status 429, got %d", remoteErr.StatusCode)
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		provider, _ := NewProvider("test-key", WithBaseURL(server.URL))
		_, err := provider.Complete(context.Background(), []*llm.Message{llm.NewUserMessage("hi")})

		var remoteErr *llm.RemoteServiceError
		if !errors.As(err, &remoteErr) {
			t.Fatalf("expected *RemoteServiceError, got %v", err)
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		provider, _ := NewProvider("test-key", WithBaseURL("http://127.0.0.1:1"))
		_, err := provider.Complete(context.Background(), []*llm.Message{llm.NewUserMessage("hi")})

		var remoteErr *llm.RemoteServiceError
		if !errors.As(err, &remoteErr) {
			t.Fatalf("expected *RemoteServiceError, got %v", err)
		}
	})
}

func TestNewProviderRequiresKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	if _, err := NewProvider(""); err == nil {
		t.Error("expected error without an API key")
	}

	t.Setenv("OPENROUTER_API_KEY", "env-key")
	if _, err := NewProvider(""); err != nil {
		t.Errorf("expected env key to satisfy constructor, got %v", err)
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_BASE_URL", "")
	provider, err := NewProvider("k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.GetBaseURL() != DefaultBaseURL {
		t.Errorf("unexpected base URL %q", provider.GetBaseURL())
	}
	if provider.GetModel() != DefaultModel {
		t.Errorf("unexpected model %q", provider.GetModel())
	}
}
