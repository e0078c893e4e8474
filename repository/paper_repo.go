package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tieubaoca/paper-notes-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PaperRepo interface {
	AddPaper(ctx context.Context, paper *types.Paper) error
	// GetPaper returns nil (not an error) when no paper exists for the URL.
	GetPaper(ctx context.Context, url string) (*types.Paper, error)
}

type paperRepo struct {
	collection *mongo.Collection
}

func NewPaperRepo(collection *mongo.Collection) PaperRepo {
	return &paperRepo{
		collection: collection,
	}
}

// EnsureIndexes enforces arxiv_url uniqueness so a double ingestion is
// rejected instead of silently duplicating the paper.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "arxiv_url", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *paperRepo) AddPaper(ctx context.Context, paper *types.Paper) error {
	_, err := r.collection.InsertOne(ctx, paper)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", types.ErrPaperExists, paper.ArxivURL)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrInsert, err)
	}
	return nil
}

func (r *paperRepo) GetPaper(ctx context.Context, url string) (*types.Paper, error) {
	var paper types.Paper
	err := r.collection.FindOne(ctx, bson.M{"arxiv_url": url}).Decode(&paper)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrLookup, err)
	}
	return &paper, nil
}
