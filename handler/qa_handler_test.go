package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tieubaoca/paper-notes-be/types"
)

type stubAnswerer struct {
	pairs []types.QAPair
	err   error
}

func (s *stubAnswerer) Answer(ctx context.Context, paperURL, question string) ([]types.QAPair, error) {
	return s.pairs, s.err
}

func TestHandleQA(t *testing.T) {
	stub := &stubAnswerer{pairs: []types.QAPair{
		{Answer: "first", FollowupQuestions: []string{"f1"}},
		{Answer: "second", FollowupQuestions: []string{"f2"}},
	}}
	h := NewQAHandler(stub)

	body := `{"paperUrl":"https://arxiv.org/pdf/2403.11905.pdf","question":"why?"}`
	req := httptest.NewRequest(http.MethodPost, "/qa", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleQA().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var pairs []types.QAPair
	if err := json.NewDecoder(rec.Body).Decode(&pairs); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// One entry per tool call the model emitted.
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Answer != "first" {
		t.Errorf("unexpected first answer: %q", pairs[0].Answer)
	}
}

func TestHandleQA_MissingFields(t *testing.T) {
	h := NewQAHandler(&stubAnswerer{})

	req := httptest.NewRequest(http.MethodPost, "/qa", strings.NewReader(`{"question":"why?"}`))
	rec := httptest.NewRecorder()
	h.HandleQA().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleQA_PaperNotFound(t *testing.T) {
	h := NewQAHandler(&stubAnswerer{err: types.ErrPaperNotFound})

	body := `{"paperUrl":"https://example.com/unknown.pdf","question":"why?"}`
	req := httptest.NewRequest(http.MethodPost, "/qa", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleQA().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQA_MissingNotes(t *testing.T) {
	h := NewQAHandler(&stubAnswerer{err: types.ErrMissingNotes})

	body := `{"paperUrl":"https://example.com/x.pdf","question":"why?"}`
	req := httptest.NewRequest(http.MethodPost, "/qa", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleQA().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	h := NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HandleHealth().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected body %q, got %q", "ok", rec.Body.String())
	}
}
