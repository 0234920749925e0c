package respell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/gallifreyan/internal/testutil"
)

func TestIdentity(t *testing.T) {
	got, err := Identity{}.Respell(context.Background(), "physics")
	if err != nil || got != "physics" {
		t.Errorf("Identity.Respell = %q, %v; want physics, nil", got, err)
	}
}

func TestNewOpenAI(t *testing.T) {
	r := NewOpenAI("test-api-key", "")

	if r.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", r.apiKey)
	}
	if r.model != DefaultModel {
		t.Errorf("Expected default model %s, got %s", DefaultModel, r.model)
	}
	if r.client == nil {
		t.Error("OpenAI client not initialized")
	}
	if r.Name() != "openai/"+DefaultModel {
		t.Errorf("Name() = %s", r.Name())
	}
}

func TestOpenAI_NoAPIKey(t *testing.T) {
	client := &testutil.MockChatClient{}
	r := NewOpenAIWithClient("", "", client)

	_, err := r.Respell(context.Background(), "physics")
	if err == nil || err.Error() != "OpenAI API key not configured" {
		t.Errorf("Expected 'OpenAI API key not configured' error, got: %v", err)
	}
	if len(client.Calls) != 0 {
		t.Error("client called without an API key")
	}
}

func TestOpenAI_Respell(t *testing.T) {
	client := &testutil.MockChatClient{Replies: map[string]string{
		"physics": "  Fiziks\n",
		"knight":  "nite",
	}}
	r := NewOpenAIWithClient("key", "gpt-test", client)

	tests := []struct {
		word string
		want string
	}{
		{"physics", "fiziks"},
		{"knight", "nite"},
	}

	for _, tt := range tests {
		got, err := r.Respell(context.Background(), tt.word)
		if err != nil {
			t.Fatalf("Respell(%q) failed: %v", tt.word, err)
		}
		if got != tt.want {
			t.Errorf("Respell(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}

	if client.Calls[0] != "gpt-test: physics" {
		t.Errorf("first call = %q", client.Calls[0])
	}
}

func TestOpenAI_BadReplies(t *testing.T) {
	client := &testutil.MockChatClient{Replies: map[string]string{
		"hello": "heh low",
	}}
	r := NewOpenAIWithClient("key", "", client)

	if _, err := r.Respell(context.Background(), "hello"); err == nil {
		t.Error("Expected error for a reply with spaces")
	}
	if _, err := r.Respell(context.Background(), "missing"); err == nil {
		t.Error("Expected error for an empty reply")
	}
}

func TestOpenAI_CircuitBreaker(t *testing.T) {
	client := &testutil.MockChatClient{Err: errors.New("service unavailable")}
	r := NewOpenAIWithClient("key", "", client)

	for i := 0; i < 3; i++ {
		if _, err := r.Respell(context.Background(), "word"); err == nil {
			t.Fatalf("call %d succeeded against a failing client", i)
		}
	}

	if r.State() != gobreaker.StateOpen {
		t.Fatalf("breaker state = %v, want open", r.State())
	}

	_, err := r.Respell(context.Background(), "word")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want ErrOpenState", err)
	}
	if len(client.Calls) != 3 {
		t.Errorf("client called %d times, want 3", len(client.Calls))
	}
}

func TestWithFallback(t *testing.T) {
	primary := &testutil.MockRespeller{
		Spellings: map[string]string{"physics": "fiziks"},
		Errors:    map[string]error{"broken": errors.New("boom")},
	}
	var warn bytes.Buffer
	f := WithFallback(primary, Identity{})
	f.warn = &warn

	got, err := f.Respell(context.Background(), "physics")
	if err != nil || got != "fiziks" {
		t.Errorf("Respell(physics) = %q, %v", got, err)
	}

	got, err = f.Respell(context.Background(), "broken")
	if err != nil || got != "broken" {
		t.Errorf("Respell(broken) = %q, %v; want fallback result", got, err)
	}
	if !strings.Contains(warn.String(), "Falling back to identity") {
		t.Errorf("warning = %q", warn.String())
	}

	if f.Name() != "mock (fallback: identity)" {
		t.Errorf("Name() = %q", f.Name())
	}
}

func TestOpenAI_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	got, err := NewOpenAI(apiKey, "").Respell(context.Background(), "physics")
	if err != nil {
		t.Fatalf("Respell failed: %v", err)
	}
	t.Logf("Respelling of 'physics': %s", got)
}
