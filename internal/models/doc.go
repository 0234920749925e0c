// Package models lists the OpenAI chat models that can drive word
// respelling, so users can pick a value for --openai-model.
package models
