package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/tieubaoca/paper-notes-be/types"
	"golang.org/x/sync/errgroup"
)

const notesSystemPrompt = `You are a tenured professor of computer science taking notes on an academic paper so a student can answer any question about it later.
Be wordy and thorough. Record every finding, method, result and limitation worth knowing, and include the page numbers each note was taken from.
Take a deep breath, and work through the paper carefully, step by step.`

var notesTool = ToolDefinition{
	Name:        "notesTool",
	Description: "Stores the notes taken on a paper",
	Parameters: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"notes": {
				Type:        jsonschema.Array,
				Description: "Notes taken on the paper",
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"note": {
							Type:        jsonschema.String,
							Description: "The note content",
						},
						"pageNumbers": {
							Type:        jsonschema.Array,
							Description: "The page numbers the note was taken from",
							Items: &jsonschema.Definition{
								Type: jsonschema.Integer,
							},
						},
					},
					Required: []string{"note", "pageNumbers"},
				},
			},
		},
		Required: []string{"notes"},
	},
}

type notesPayload struct {
	Notes []types.Note `json:"notes"`
}

// NoteTaker is what the HTTP and CLI surfaces need from the note-taking
// pipeline.
type NoteTaker interface {
	TakeNotes(ctx context.Context, paperURL, name string, pagesToDelete []int) ([]types.Note, error)
}

type NotesService struct {
	pdf       *PDFService
	extractor *ExtractService
	ai        ToolCaller
	store     *PaperStore
}

func NewNotesService(pdf *PDFService, extractor *ExtractService, ai ToolCaller, store *PaperStore) *NotesService {
	return &NotesService{
		pdf:       pdf,
		extractor: extractor,
		ai:        ai,
		store:     store,
	}
}

// TakeNotes runs the ingestion pipeline: fetch the PDF, optionally drop
// pages, extract fragments, generate notes, then persist the paper row
// and the fragment embeddings concurrently.
func (s *NotesService) TakeNotes(ctx context.Context, paperURL, name string, pagesToDelete []int) ([]types.Note, error) {
	if !strings.HasSuffix(paperURL, ".pdf") {
		return nil, fmt.Errorf("%w: %s", types.ErrNotPDF, paperURL)
	}

	pdf, err := s.pdf.LoadFromURL(ctx, paperURL)
	if err != nil {
		return nil, err
	}

	if len(pagesToDelete) > 0 {
		pdf, err = s.pdf.DeletePages(pdf, pagesToDelete)
		if err != nil {
			return nil, err
		}
	}

	docs, err := s.extractor.Extract(ctx, pdf)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].Metadata.URL = paperURL
	}

	notes, err := s.GenerateNotes(ctx, docs)
	if err != nil {
		return nil, err
	}
	log.Printf("Generated %d notes for %s", len(notes), paperURL)

	paper := &types.Paper{
		Paper:     formatDocumentsAsString(docs),
		ArxivURL:  paperURL,
		Notes:     notes,
		Name:      name,
		CreatedAt: time.Now().Unix(),
	}

	// The embedding write and the row write are independent; if one
	// fails the other is not rolled back.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.store.AddDocuments(gctx, docs)
	})
	g.Go(func() error {
		return s.store.AddPaper(gctx, paper)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return notes, nil
}

// GenerateNotes submits the fragments to the model bound to the notes
// tool and parses the first tool call into the note list.
func (s *NotesService) GenerateNotes(ctx context.Context, docs []types.Document) ([]types.Note, error) {
	paper := formatDocumentsAsString(docs)
	calls, err := s.ai.CallTool(ctx, notesSystemPrompt, "Paper: "+paper, notesTool)
	if err != nil {
		return nil, err
	}
	if len(calls) == 0 {
		return nil, fmt.Errorf("%w: notesTool", types.ErrMissingToolCall)
	}

	var payload notesPayload
	decoder := json.NewDecoder(bytes.NewReader(calls[0].Arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrToolCallParse, err)
	}
	return payload.Notes, nil
}

// formatDocumentsAsString joins fragment text in input order.
func formatDocumentsAsString(docs []types.Document) string {
	parts := make([]string, len(docs))
	for i, doc := range docs {
		parts[i] = doc.PageContent
	}
	return strings.Join(parts, "\n\n")
}
