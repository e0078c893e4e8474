package service

import (
	"context"
	"fmt"
	"log"

	"github.com/tieubaoca/paper-notes-be/database"
	"github.com/tieubaoca/paper-notes-be/repository"
	"github.com/tieubaoca/paper-notes-be/types"
)

// PaperStore is the persistence façade: paper rows and the QA audit log
// in the row store, fragment embeddings in the vector store.
type PaperStore struct {
	fragments database.FragmentStore
	papers    repository.PaperRepo
	qa        repository.QARepo
	embedder  Embedder
}

// NewPaperStoreFromExistingIndex binds a store handle without writing
// anything, for query-only access.
func NewPaperStoreFromExistingIndex(fragments database.FragmentStore, papers repository.PaperRepo, qa repository.QARepo, embedder Embedder) *PaperStore {
	return &PaperStore{
		fragments: fragments,
		papers:    papers,
		qa:        qa,
		embedder:  embedder,
	}
}

// NewPaperStoreFromDocuments embeds and persists the fragments, then
// returns the bound handle. Calling it twice for the same fragments
// duplicates the embeddings; there is no idempotency.
func NewPaperStoreFromDocuments(ctx context.Context, fragments database.FragmentStore, papers repository.PaperRepo, qa repository.QARepo, embedder Embedder, docs []types.Document) (*PaperStore, error) {
	store := NewPaperStoreFromExistingIndex(fragments, papers, qa, embedder)
	if err := store.AddDocuments(ctx, docs); err != nil {
		return nil, err
	}
	return store, nil
}

// AddDocuments embeds every fragment and writes them to the vector
// store, keyed by each fragment's own metadata.
func (s *PaperStore) AddDocuments(ctx context.Context, docs []types.Document) error {
	if len(docs) == 0 {
		return nil
	}
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.PageContent
	}
	embeddings, err := s.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding fragments: %w", err)
	}
	return s.fragments.BatchInsertFragments(ctx, docs, embeddings)
}

func (s *PaperStore) AddPaper(ctx context.Context, paper *types.Paper) error {
	return s.papers.AddPaper(ctx, paper)
}

// GetPaper returns nil when no paper exists for the URL.
func (s *PaperStore) GetPaper(ctx context.Context, url string) (*types.Paper, error) {
	return s.papers.GetPaper(ctx, url)
}

// SimilaritySearch returns up to k fragments ranked by similarity to the
// query, restricted to the given paper URL.
func (s *PaperStore) SimilaritySearch(ctx context.Context, query string, k int, url string) ([]types.Document, error) {
	vectors, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return s.fragments.SearchSimilar(ctx, vectors[0], url, k)
}

// SaveQA appends one audit row. Failures are logged before being
// surfaced to the caller.
func (s *PaperStore) SaveQA(ctx context.Context, record *types.QARecord) error {
	if err := s.qa.SaveQA(ctx, record); err != nil {
		log.Printf("Error saving QA record: %v", err)
		return err
	}
	return nil
}
