package testutil

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// MockChatClient mocks the OpenAI chat completion API
type MockChatClient struct {
	Replies map[string]string // keyed by the word being respelled
	Err     error
	Calls   []string
}

// CreateChatCompletion mocks a chat completion request. The word is taken
// from the last message, which must quote it in single quotes.
func (m *MockChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	word := quotedWord(req.Messages[len(req.Messages)-1].Content)
	m.Calls = append(m.Calls, fmt.Sprintf("%s: %s", req.Model, word))

	if m.Err != nil {
		return openai.ChatCompletionResponse{}, m.Err
	}

	reply, ok := m.Replies[word]
	if !ok {
		return openai.ChatCompletionResponse{}, nil
	}

	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply}},
		},
	}, nil
}

func quotedWord(s string) string {
	start := -1
	for i, r := range s {
		if r != '\'' {
			continue
		}
		if start < 0 {
			start = i + 1
		} else {
			return s[start:i]
		}
	}
	return ""
}

// MockRespeller mocks a respeller
type MockRespeller struct {
	Spellings map[string]string
	Errors    map[string]error
	Calls     []string
}

// Respell returns the configured spelling, or the word itself
func (m *MockRespeller) Respell(ctx context.Context, word string) (string, error) {
	m.Calls = append(m.Calls, word)

	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	if spelling, ok := m.Spellings[word]; ok {
		return spelling, nil
	}
	return word, nil
}

// Name returns the mock name
func (m *MockRespeller) Name() string {
	return "mock"
}

// SampleWords are words that transliterate and lay out with the default table
var SampleWords = []string{"doctor", "tardis", "gallifrey", "companion", "regeneration", "sonic"}
