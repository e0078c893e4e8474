package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/tieubaoca/paper-notes-be/types"
)

func qaToolCall(t *testing.T, pair types.QAPair) ToolCall {
	t.Helper()
	args, err := json.Marshal(pair)
	if err != nil {
		t.Fatalf("marshal qa payload: %v", err)
	}
	return ToolCall{Name: "questionAnswer", Arguments: args}
}

func TestGenerateAnswers_MissingDocuments(t *testing.T) {
	s := NewQAService(&stubToolCaller{}, nil)

	_, err := s.GenerateAnswers(context.Background(), "why?", nil, []types.Note{{Note: "X"}})
	if !errors.Is(err, types.ErrMissingDocuments) {
		t.Errorf("expected ErrMissingDocuments, got %v", err)
	}
}

func TestGenerateAnswers_MissingNotes(t *testing.T) {
	s := NewQAService(&stubToolCaller{}, nil)

	_, err := s.GenerateAnswers(context.Background(), "why?", []types.Document{{PageContent: "text"}}, nil)
	if !errors.Is(err, types.ErrMissingNotes) {
		t.Errorf("expected ErrMissingNotes, got %v", err)
	}
}

func TestGenerateAnswers_MissingToolCall(t *testing.T) {
	s := NewQAService(&stubToolCaller{}, nil)

	_, err := s.GenerateAnswers(context.Background(), "why?",
		[]types.Document{{PageContent: "text"}}, []types.Note{{Note: "X"}})
	if !errors.Is(err, types.ErrMissingToolCall) {
		t.Errorf("expected ErrMissingToolCall, got %v", err)
	}
}

// A model may answer one question with several tool calls; each becomes
// an independent QA pair.
func TestGenerateAnswers_MultipleToolCalls(t *testing.T) {
	ai := &stubToolCaller{calls: []ToolCall{
		qaToolCall(t, types.QAPair{Answer: "first", FollowupQuestions: []string{"f1"}}),
		qaToolCall(t, types.QAPair{Answer: "second", FollowupQuestions: []string{"f2", "f3"}}),
	}}
	s := NewQAService(ai, nil)

	pairs, err := s.GenerateAnswers(context.Background(), "why?",
		[]types.Document{{PageContent: "text"}}, []types.Note{{Note: "X"}})
	if err != nil {
		t.Fatalf("GenerateAnswers failed: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Answer != "first" || pairs[1].Answer != "second" {
		t.Errorf("unexpected pairs: %+v", pairs)
	}
}

func TestAnswer_EndToEnd(t *testing.T) {
	const paperURL = "https://arxiv.org/pdf/2403.11905.pdf"

	fragments := &fakeFragmentStore{searchResults: []types.Document{
		{PageContent: "fragment one", Metadata: types.DocumentMetadata{URL: paperURL}},
		{PageContent: "fragment two", Metadata: types.DocumentMetadata{URL: paperURL}},
		{PageContent: "other paper", Metadata: types.DocumentMetadata{URL: "https://example.com/other.pdf"}},
	}}
	papers := newFakePaperRepo()
	if err := papers.AddPaper(context.Background(), &types.Paper{
		ArxivURL: paperURL,
		Notes:    []types.Note{{Note: "X"}},
	}); err != nil {
		t.Fatalf("seeding paper: %v", err)
	}
	qaRepo := &fakeQARepo{}

	ai := &stubToolCaller{calls: []ToolCall{
		qaToolCall(t, types.QAPair{Answer: "because", FollowupQuestions: []string{"what next?"}}),
	}}
	store := NewPaperStoreFromExistingIndex(fragments, papers, qaRepo, &fakeEmbedder{})
	s := NewQAService(ai, store)

	pairs, err := s.Answer(context.Background(), paperURL, "why?")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Answer != "because" {
		t.Errorf("unexpected answer: %q", pairs[0].Answer)
	}

	if len(qaRepo.records) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(qaRepo.records))
	}
	record := qaRepo.records[0]
	if record.Question != "why?" {
		t.Errorf("unexpected question in audit record: %q", record.Question)
	}
	if record.Context != "fragment one\n\nfragment two" {
		t.Errorf("unexpected context in audit record: %q", record.Context)
	}
}

func TestAnswer_UnknownPaper(t *testing.T) {
	fragments := &fakeFragmentStore{searchResults: []types.Document{
		{PageContent: "stale fragment", Metadata: types.DocumentMetadata{URL: "https://example.com/unknown.pdf"}},
	}}
	store := NewPaperStoreFromExistingIndex(fragments, newFakePaperRepo(), &fakeQARepo{}, &fakeEmbedder{})
	s := NewQAService(&stubToolCaller{}, store)

	_, err := s.Answer(context.Background(), "https://example.com/unknown.pdf", "why?")
	if !errors.Is(err, types.ErrPaperNotFound) {
		t.Errorf("expected ErrPaperNotFound, got %v", err)
	}
}
