package cmd

import (
	"context"
	"fmt"

	"github.com/tieubaoca/paper-notes-be/config"
	"github.com/tieubaoca/paper-notes-be/database"
	"github.com/tieubaoca/paper-notes-be/repository"
	"github.com/tieubaoca/paper-notes-be/service"
)

// app holds the wired-up services shared by the serve and ingest
// commands.
type app struct {
	notesService *service.NotesService
	qaService    *service.QAService
	vectorStore  *database.WeaviateStore
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	vectorStore, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Weaviate: %w", err)
	}

	mongoClient, err := database.NewMongoClient(cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.MongoDatabase)

	paperCollection := db.Collection("arxiv_papers")
	if err := repository.EnsureIndexes(ctx, paperCollection); err != nil {
		return nil, fmt.Errorf("failed to ensure paper indexes: %w", err)
	}
	paperRepo := repository.NewPaperRepo(paperCollection)
	qaRepo := repository.NewQARepo(db.Collection("arxiv_question_answering"))

	modelClient, err := newModelClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := service.NewPaperStoreFromExistingIndex(vectorStore, paperRepo, qaRepo, modelClient)
	pdfService := service.NewPDFService()
	extractService := service.NewExtractService(cfg)

	return &app{
		notesService: service.NewNotesService(pdfService, extractService, modelClient, store),
		qaService:    service.NewQAService(modelClient, store),
		vectorStore:  vectorStore,
	}, nil
}

func newModelClient(ctx context.Context, cfg *config.Config) (service.ModelClient, error) {
	switch cfg.AIProvider {
	case "gemini":
		return service.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.EmbeddingModel)
	default:
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model, cfg.EmbeddingModel), nil
	}
}
