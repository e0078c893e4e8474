package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/api/option"
)

// GeminiService is the alternative model backend, selected with
// ai_provider: gemini. It serves the same tool-call contract as the
// OpenAI service through function declarations.
type GeminiService struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGeminiService(ctx context.Context, apiKey, model, embeddingModel string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:         client,
		model:          model,
		embeddingModel: embeddingModel,
	}, nil
}

func (s *GeminiService) CallTool(ctx context.Context, systemPrompt, userPrompt string, tool ToolDefinition) ([]ToolCall, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  toGeminiSchema(tool.Parameters),
				},
			},
		},
	}
	model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{
			Mode:                 genai.FunctionCallingAny,
			AllowedFunctionNames: []string{tool.Name},
		},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 {
		return nil, errors.New("no response generated")
	}

	var calls []ToolCall
	for _, fc := range resp.Candidates[0].FunctionCalls() {
		args, err := json.Marshal(fc.Args)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal function args: %v", err)
		}
		calls = append(calls, ToolCall{
			Name:      fc.Name,
			Arguments: args,
		})
	}
	return calls, nil
}

func (s *GeminiService) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	em := s.client.EmbeddingModel(s.embeddingModel)
	batch := em.NewBatch()
	for _, text := range texts {
		batch = batch.AddContent(genai.Text(text))
	}
	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))
	}

	embeddings := make([][]float32, len(resp.Embeddings))
	for i, embedding := range resp.Embeddings {
		embeddings[i] = embedding.Values
	}
	return embeddings, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

func toGeminiSchema(def jsonschema.Definition) *genai.Schema {
	schema := &genai.Schema{
		Description: def.Description,
	}
	switch def.Type {
	case jsonschema.Object:
		schema.Type = genai.TypeObject
		schema.Required = def.Required
		if len(def.Properties) > 0 {
			schema.Properties = make(map[string]*genai.Schema, len(def.Properties))
			for name, prop := range def.Properties {
				schema.Properties[name] = toGeminiSchema(prop)
			}
		}
	case jsonschema.Array:
		schema.Type = genai.TypeArray
		if def.Items != nil {
			schema.Items = toGeminiSchema(*def.Items)
		}
	case jsonschema.String:
		schema.Type = genai.TypeString
	case jsonschema.Integer:
		schema.Type = genai.TypeInteger
	case jsonschema.Number:
		schema.Type = genai.TypeNumber
	case jsonschema.Boolean:
		schema.Type = genai.TypeBoolean
	}
	return schema
}
