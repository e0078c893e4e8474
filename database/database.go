package database

import (
	"context"

	"github.com/tieubaoca/paper-notes-be/types"
)

// FragmentStore is the vector side of the paper store: embedded paper
// fragments keyed by their source URL.
type FragmentStore interface {
	// BatchInsertFragments persists fragments with their precomputed
	// embeddings. docs[i] pairs with embeddings[i].
	BatchInsertFragments(ctx context.Context, docs []types.Document, embeddings [][]float32) error

	// SearchSimilar returns up to limit fragments ranked by similarity to
	// the query vector, restricted to fragments whose url metadata equals
	// url. Ranking is delegated to the backing vector engine.
	SearchSimilar(ctx context.Context, vector []float32, url string, limit int) ([]types.Document, error)

	// Reset drops and recreates the fragment collection.
	Reset(ctx context.Context) error
}
