package repository

import (
	"context"
	"fmt"

	"github.com/tieubaoca/paper-notes-be/types"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// QARepo is the append-only audit log of answered questions. Nothing in
// this service reads it back.
type QARepo interface {
	SaveQA(ctx context.Context, record *types.QARecord) error
}

type qaRepo struct {
	collection *mongo.Collection
}

func NewQARepo(collection *mongo.Collection) QARepo {
	return &qaRepo{
		collection: collection,
	}
}

func (r *qaRepo) SaveQA(ctx context.Context, record *types.QARecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrInsert, err)
	}
	return nil
}
