package models

import (
	"bytes"
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

type fakeClient struct {
	ids []string
	err error
}

func (f *fakeClient) ListModels(ctx context.Context) (openai.ModelsList, error) {
	if f.err != nil {
		return openai.ModelsList{}, f.err
	}
	list := openai.ModelsList{}
	for _, id := range f.ids {
		list.Models = append(list.Models, openai.Model{ID: id})
	}
	return list, nil
}

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	err := lister.ListAvailableModels()
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .gallifreyan.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestChatModels(t *testing.T) {
	client := &fakeClient{ids: []string{
		"tts-1", "gpt-4o-mini", "dall-e-3", "gpt-4o", "gpt-4o-mini-tts",
		"whisper-1", "gpt-4o-audio-preview", "chatgpt-4o-latest",
	}}
	lister := NewListerWithClient("key", client, &bytes.Buffer{})

	got, err := lister.ChatModels(context.Background())
	if err != nil {
		t.Fatalf("ChatModels() error = %v", err)
	}

	want := []string{"chatgpt-4o-latest", "gpt-4o", "gpt-4o-mini"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChatModels() = %v, want %v", got, want)
	}
}

func TestChatModels_ClientError(t *testing.T) {
	lister := NewListerWithClient("key", &fakeClient{err: errors.New("boom")}, &bytes.Buffer{})

	_, err := lister.ChatModels(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to list models") {
		t.Errorf("Expected wrapped list error, got %v", err)
	}
}

func TestListAvailableModels_Output(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		contains []string
	}{
		{
			name:     "no chat models",
			ids:      []string{"tts-1", "dall-e-2"},
			contains: []string{"No chat models found"},
		},
		{
			name:     "few models printed in full",
			ids:      []string{"gpt-4o", "gpt-4o-mini"},
			contains: []string{"  gpt-4o\n", "  gpt-4o-mini\n"},
		},
		{
			name: "many models trimmed",
			ids: []string{
				"gpt-4o", "gpt-4o-mini", "gpt-5", "gpt-5-mini", "gpt-5-nano", "gpt-4.1",
				"gpt-4.1-mini", "gpt-3.5-turbo", "chatgpt-4o-latest", "gpt-5-chat", "gpt-o1",
			},
			contains: []string{"gpt-3.5-turbo", "... and 5 more models"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			lister := NewListerWithClient("key", &fakeClient{ids: tt.ids}, &out)

			if err := lister.ListAvailableModels(); err != nil {
				t.Fatalf("ListAvailableModels() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output %q does not contain %q", out.String(), want)
				}
			}
		})
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	lister := NewLister(apiKey)
	if err := lister.ListAvailableModels(); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
