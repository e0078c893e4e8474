package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tieubaoca/paper-notes-be/types"
)

// stubToolCaller returns a fixed set of tool calls, or an error.
type stubToolCaller struct {
	calls []ToolCall
	err   error
}

func (s *stubToolCaller) CallTool(ctx context.Context, systemPrompt, userPrompt string, tool ToolDefinition) ([]ToolCall, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.calls, nil
}

// fakeEmbedder returns a small deterministic vector per text.
type fakeEmbedder struct {
	embedCalls int
}

func (f *fakeEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	f.embedCalls++
	embeddings := make([][]float32, len(texts))
	for i := range texts {
		embeddings[i] = []float32{float32(len(texts[i])), 1}
	}
	return embeddings, nil
}

// fakeFragmentStore records inserts and serves canned search results.
type fakeFragmentStore struct {
	mu            sync.Mutex
	inserted      []types.Document
	searchResults []types.Document
}

func (f *fakeFragmentStore) BatchInsertFragments(ctx context.Context, docs []types.Document, embeddings [][]float32) error {
	if len(docs) != len(embeddings) {
		return fmt.Errorf("%d docs but %d embeddings", len(docs), len(embeddings))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, docs...)
	return nil
}

func (f *fakeFragmentStore) SearchSimilar(ctx context.Context, vector []float32, url string, limit int) ([]types.Document, error) {
	var docs []types.Document
	for _, doc := range f.searchResults {
		if url == "" || doc.Metadata.URL == url {
			docs = append(docs, doc)
		}
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (f *fakeFragmentStore) Reset(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = nil
	return nil
}

// fakePaperRepo is an in-memory paper row store keyed by URL.
type fakePaperRepo struct {
	mu     sync.Mutex
	papers map[string]*types.Paper
}

func newFakePaperRepo() *fakePaperRepo {
	return &fakePaperRepo{papers: make(map[string]*types.Paper)}
}

func (f *fakePaperRepo) AddPaper(ctx context.Context, paper *types.Paper) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.papers[paper.ArxivURL]; ok {
		return fmt.Errorf("%w: %s", types.ErrPaperExists, paper.ArxivURL)
	}
	f.papers[paper.ArxivURL] = paper
	return nil
}

func (f *fakePaperRepo) GetPaper(ctx context.Context, url string) (*types.Paper, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.papers[url], nil
}

// fakeQARepo records saved QA rows.
type fakeQARepo struct {
	mu      sync.Mutex
	records []*types.QARecord
}

func (f *fakeQARepo) SaveQA(ctx context.Context, record *types.QARecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	return nil
}
