package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/tieubaoca/paper-notes-be/config"
	"github.com/tieubaoca/paper-notes-be/types"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

const BATCH_SIZE = 200

var (
	FRAGMENT_CLASS        = "PaperFragment"
	FRAGMENT_CLASS_OBJECT = &models.Class{
		Class: FRAGMENT_CLASS,
		Properties: []*models.Property{
			{Name: "text", DataType: []string{"text"}},
			{Name: "url", DataType: []string{"text"}},
			{Name: "pageNumber", DataType: []string{"int"}},
		},
		// Vectors are computed client-side, so no vectorizer module.
		Vectorizer:      "none",
		VectorIndexType: "hnsw",
	}
)

type WeaviateStore struct {
	client *weaviate.Client
}

func NewWeaviateStore(config config.WeaviateStoreConfig) (*WeaviateStore, error) {
	var scheme string
	if strings.Contains(config.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(config.Host, scheme+"://")
	cfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if config.APIKey != "" {
		cfg.AuthConfig = auth.ApiKey{
			Value: config.APIKey,
		}
		cfg.Headers = map[string]string{
			"X-Weaviate-Api-Key":     config.APIKey,
			"X-Weaviate-Cluster-Url": fmt.Sprintf("%s://%s", scheme, host),
		}
	}
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %v", err)
	}

	schema, err := client.Schema().Getter().Do(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get schema: %v", err)
	}

	hasFragmentClass := false
	for _, class := range schema.Classes {
		if class.Class == FRAGMENT_CLASS {
			hasFragmentClass = true
			break
		}
	}
	if !hasFragmentClass {
		err = client.Schema().ClassCreator().WithClass(FRAGMENT_CLASS_OBJECT).Do(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to create PaperFragment class: %v", err)
		}
	}
	return &WeaviateStore{
		client: client,
	}, nil
}

// Reset drops and recreates the fragment class, discarding all embeddings.
func (s *WeaviateStore) Reset(ctx context.Context) error {
	err := s.client.Schema().ClassDeleter().WithClassName(FRAGMENT_CLASS).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete PaperFragment class: %v", err)
	}

	err = s.client.Schema().ClassCreator().WithClass(FRAGMENT_CLASS_OBJECT).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create PaperFragment class: %v", err)
	}
	return nil
}

func (s *WeaviateStore) BatchInsertFragments(ctx context.Context, docs []types.Document, embeddings [][]float32) error {
	if len(docs) != len(embeddings) {
		return fmt.Errorf("%w: %d fragments but %d embeddings", types.ErrInsert, len(docs), len(embeddings))
	}
	total := len(docs)
	for i := 0; i < total; i += BATCH_SIZE {
		end := i + BATCH_SIZE
		if end > total {
			end = total
		}

		batcher := s.client.Batch().ObjectsBatcher()
		for j := i; j < end; j++ {
			batcher = batcher.WithObjects(&models.Object{
				Class: FRAGMENT_CLASS,
				Properties: map[string]interface{}{
					"text":       docs[j].PageContent,
					"url":        docs[j].Metadata.URL,
					"pageNumber": docs[j].Metadata.PageNumber,
				},
				Vector: embeddings[j],
			})
		}

		if _, err := batcher.Do(ctx); err != nil {
			return fmt.Errorf("%w: batch %d-%d: %v", types.ErrInsert, i, end, err)
		}
	}

	return nil
}

func (s *WeaviateStore) SearchSimilar(ctx context.Context, vector []float32, url string, limit int) ([]types.Document, error) {
	fields := []graphql.Field{
		{Name: "text"},
		{Name: "url"},
		{Name: "pageNumber"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}

	nearVector := s.client.GraphQL().NearVectorArgBuilder().
		WithVector(vector)

	getBuilder := s.client.GraphQL().Get().
		WithClassName(FRAGMENT_CLASS).
		WithFields(fields...).
		WithNearVector(nearVector)
	if limit > 0 {
		getBuilder = getBuilder.WithLimit(limit)
	}
	if url != "" {
		getBuilder = getBuilder.WithWhere(filters.Where().
			WithPath([]string{"url"}).
			WithOperator(filters.Equal).
			WithValueString(url))
	}

	result, err := getBuilder.Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrLookup, err)
	}
	if result.Errors != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrLookup, result.Errors[0].Message)
	}

	var docs []types.Document
	if data, ok := result.Data["Get"].(map[string]interface{})[FRAGMENT_CLASS].([]interface{}); ok {
		for _, item := range data {
			if frag, ok := item.(map[string]interface{}); ok {
				doc := types.Document{
					Metadata: types.DocumentMetadata{},
				}
				if text, ok := frag["text"].(string); ok {
					doc.PageContent = text
				}
				if u, ok := frag["url"].(string); ok {
					doc.Metadata.URL = u
				}
				if page, ok := frag["pageNumber"].(float64); ok {
					doc.Metadata.PageNumber = int(page)
				}
				docs = append(docs, doc)
			}
		}
	}

	return docs, nil
}
