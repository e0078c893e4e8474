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

// qaSearchLimit is how many fragments are retrieved per question.
const qaSearchLimit = 7

const qaSystemPromptTemplate = `You are a tenured professor of computer science helping a student with their research.
The student has a question regarding a paper they are reading.
Here are their notes on the paper:
%s

And here are some relevant parts of the paper relating to their question:
%s

Answer the student's question in the context of the paper. You should also suggest followup questions.
Take a deep breath, and think through your reply carefully, step by step.`

var questionAnswerTool = ToolDefinition{
	Name:        "questionAnswer",
	Description: "The answer and followup questions for a given question on a paper",
	Parameters: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"answer": {
				Type:        jsonschema.String,
				Description: "Response to the question",
			},
			"followupQuestions": {
				Type:        jsonschema.Array,
				Description: "Followup questions to the given question on the paper",
				Items: &jsonschema.Definition{
					Type: jsonschema.String,
				},
			},
		},
		Required: []string{"answer", "followupQuestions"},
	},
}

// Answerer is what the HTTP surface needs from the QA pipeline.
type Answerer interface {
	Answer(ctx context.Context, paperURL, question string) ([]types.QAPair, error)
}

type QAService struct {
	ai    ToolCaller
	store *PaperStore
}

func NewQAService(ai ToolCaller, store *PaperStore) *QAService {
	return &QAService{
		ai:    ai,
		store: store,
	}
}

// Answer runs the QA pipeline: retrieve similar fragments, load the
// stored notes, generate answers and append each pair to the audit log.
func (s *QAService) Answer(ctx context.Context, paperURL, question string) ([]types.QAPair, error) {
	docs, err := s.store.SimilaritySearch(ctx, question, qaSearchLimit, paperURL)
	if err != nil {
		return nil, err
	}

	paper, err := s.store.GetPaper(ctx, paperURL)
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrPaperNotFound, paperURL)
	}

	pairs, err := s.GenerateAnswers(ctx, question, docs, paper.Notes)
	if err != nil {
		return nil, err
	}
	log.Printf("Generated %d answers for %s", len(pairs), paperURL)

	searchContext := formatDocumentsAsString(docs)
	g, gctx := errgroup.WithContext(ctx)
	for _, pair := range pairs {
		pair := pair
		g.Go(func() error {
			return s.store.SaveQA(gctx, &types.QARecord{
				Question:          question,
				Answer:            pair.Answer,
				Context:           searchContext,
				FollowupQuestions: pair.FollowupQuestions,
				CreatedAt:         time.Now().Unix(),
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// GenerateAnswers submits the question with the retrieved fragments and
// stored notes to the model bound to the questionAnswer tool. Every tool
// call in the response becomes one QA pair; a model may emit several for
// a single question.
func (s *QAService) GenerateAnswers(ctx context.Context, question string, docs []types.Document, notes []types.Note) ([]types.QAPair, error) {
	if len(docs) == 0 {
		return nil, types.ErrMissingDocuments
	}
	if len(notes) == 0 {
		return nil, types.ErrMissingNotes
	}

	noteLines := make([]string, len(notes))
	for i, note := range notes {
		noteLines[i] = note.Note
	}
	systemPrompt := fmt.Sprintf(qaSystemPromptTemplate, strings.Join(noteLines, "\n"), formatDocumentsAsString(docs))

	calls, err := s.ai.CallTool(ctx, systemPrompt, "Question: "+question, questionAnswerTool)
	if err != nil {
		return nil, err
	}
	if len(calls) == 0 {
		return nil, fmt.Errorf("%w: questionAnswer", types.ErrMissingToolCall)
	}

	pairs := make([]types.QAPair, 0, len(calls))
	for _, call := range calls {
		var pair types.QAPair
		decoder := json.NewDecoder(bytes.NewReader(call.Arguments))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&pair); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrToolCallParse, err)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
