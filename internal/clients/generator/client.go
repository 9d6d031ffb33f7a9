// Package generator asks an OpenAI-compatible chat completion endpoint to
// describe a character and returns the JSON it produced.
package generator

//go:generate mockgen -destination=mock/mock_client.go -package=generatormock github.com/KirkDiggler/toon-tailor/internal/clients/generator Client

import (
	"context"
	"encoding/json"
)

// Reasons attached to generation failures
const (
	ReasonRequest     = "GENERATION_REQUEST_FAILED"
	ReasonNoContent   = "GENERATION_NO_CONTENT"
	ReasonInvalidData = "GENERATION_INVALID_DATA"
)

// User-facing generation messages
const (
	MessageRequest     = "Failed to generate character"
	MessageNoContent   = "No response received from the AI service."
	MessageInvalidData = "Invalid character data received"
)

// Defaults for the hosted endpoint
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "deepseek/deepseek-r1:free"
	DefaultReferer = "https://peeyush-04.github.io/toon-tailor"
)

// SystemInstruction is sent ahead of every prompt
const SystemInstruction = "You are a helpful assistant that generates RPG character data based on user descriptions. " +
	"You should only output valid JSON that matches the requested format."

// Client generates character data from a description
type Client interface {
	// Generate sends one completion request. No retries are made.
	// Returns an error with ReasonRequest when the request fails; the
	// provider's message is used when it sent one.
	// Returns an error with ReasonNoContent when the completion is empty.
	// Returns an error with ReasonInvalidData when the completion is not JSON.
	// Returns errors.Canceled or errors.DeadlineExceeded when ctx ends first.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput defines the input for a generation request
type GenerateInput struct {
	Prompt string
	// Context guides the model, typically the valid races and classes. It
	// is sent as JSON and not checked against the catalog.
	Context any
}

// GenerateOutput defines the output for a generation request
type GenerateOutput struct {
	// Data is the completion with code fences removed. It parses as JSON
	// but is not guaranteed to be an object.
	Data json.RawMessage
	// Model is the model that answered
	Model string
}
