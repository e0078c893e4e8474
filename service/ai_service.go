package service

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// ToolDefinition describes the single callable tool a completion is
// bound to, forcing a machine-parseable response instead of free text.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  jsonschema.Definition
}

// ToolCall is one structured call emitted by the model. Arguments is the
// raw JSON payload.
type ToolCall struct {
	Name      string
	Arguments []byte
}

// ToolCaller invokes the language model with deterministic sampling
// bound to exactly one tool and returns the tool calls it emitted.
type ToolCaller interface {
	CallTool(ctx context.Context, systemPrompt, userPrompt string, tool ToolDefinition) ([]ToolCall, error)
}

// Embedder computes vector embeddings for a batch of texts.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ModelClient is the full surface the pipelines need from a hosted model
// provider.
type ModelClient interface {
	ToolCaller
	Embedder
}
