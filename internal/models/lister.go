package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ModelClient is the part of the OpenAI client the lister needs
type ModelClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client ModelClient
	out    io.Writer
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		out:    os.Stdout,
	}
}

// NewListerWithClient creates a lister around an existing client, printing to out
func NewListerWithClient(apiKey string, client ModelClient, out io.Writer) *Lister {
	return &Lister{apiKey: apiKey, client: client, out: out}
}

// ChatModels returns the sorted IDs of models usable for respelling
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .gallifreyan.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	return chatModels, nil
}

// ListAvailableModels prints the chat models available for respelling
func (l *Lister) ListAvailableModels() error {
	chatModels, err := l.ChatModels(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintln(l.out, "Chat Models (for --respell):")
	if len(chatModels) == 0 {
		fmt.Fprintln(l.out, "  No chat models found")
		return nil
	}

	if len(chatModels) > 10 {
		// Show only relevant models
		shown := 0
		for _, model := range chatModels {
			if strings.Contains(model, "gpt-4") || strings.Contains(model, "gpt-3.5") {
				fmt.Fprintf(l.out, "  %s\n", model)
				shown++
			}
		}
		fmt.Fprintf(l.out, "  ... and %d more models\n", len(chatModels)-shown)
		return nil
	}

	for _, model := range chatModels {
		fmt.Fprintf(l.out, "  %s\n", model)
	}
	return nil
}

// isChatModel filters out audio, image and embedding models
func isChatModel(id string) bool {
	if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
		strings.Contains(id, "dall-e") || strings.Contains(id, "image") ||
		strings.Contains(id, "transcribe") || strings.Contains(id, "realtime") {
		return false
	}
	return strings.Contains(id, "gpt") || strings.Contains(id, "chat")
}
