package llm

import (
	"context"
	"errors"
)

// Client abstracts structured-output LLM providers.
type Client interface {
	GenerateStructured(ctx context.Context, req Request) (string, error)
}

// Request captures one structured-output generation call. APIKey travels with
// the request because credential selection happens per attempt, not per client.
type Request struct {
	Prompt      string
	Schema      *Schema
	Temperature float32
	APIKey      string
}

// Schema is a provider response-schema node. It serializes to the JSON-schema
// subset accepted by the Gemini generateContent API.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Gemini schema type identifiers.
const (
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
	TypeString = "STRING"
	TypeNumber = "NUMBER"
)

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// GenerateStructured returns ErrNotImplemented.
func (PlaceholderClient) GenerateStructured(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotImplemented
}
