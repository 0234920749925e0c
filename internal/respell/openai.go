package respell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// ChatClient is the part of the OpenAI client the respeller needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4oMini

const requestTimeout = 30 * time.Second

// OpenAI asks a chat model for a phonetic respelling.
type OpenAI struct {
	apiKey  string
	model   string
	client  ChatClient
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAI creates a respeller backed by the OpenAI API.
func NewOpenAI(apiKey, model string) *OpenAI {
	return NewOpenAIWithClient(apiKey, model, openai.NewClient(apiKey))
}

// NewOpenAIWithClient creates a respeller using client for requests.
func NewOpenAIWithClient(apiKey, model string, client ChatClient) *OpenAI {
	if model == "" {
		model = DefaultModel
	}

	return &OpenAI{
		apiKey: apiKey,
		model:  model,
		client: client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-respell",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Name implements Respeller.
func (o *OpenAI) Name() string {
	return "openai/" + o.model
}

// Respell implements Respeller.
func (o *OpenAI) Respell(ctx context.Context, word string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You rewrite words as they sound, using plain English spelling. Answer with a single lowercase word made only of the letters a to z, without spaces, accents or punctuation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Respell the word '%s' phonetically.", word),
			},
		},
		MaxTokens:   20,
		Temperature: 0,
	}

	result, err := o.breaker.Execute(func() (interface{}, error) {
		resp, err := o.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			return nil, fmt.Errorf("no respelling returned")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("OpenAI respelling paused: %w", err)
		}
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	spelling, err := transliterate.Normalize(result.(string))
	if err != nil {
		return "", fmt.Errorf("unusable respelling %q: %w", result, err)
	}
	return spelling, nil
}

// State returns the circuit breaker state, for diagnostics.
func (o *OpenAI) State() gobreaker.State {
	return o.breaker.State()
}
