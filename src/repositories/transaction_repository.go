package repositories

import (
	"context"
	"fmt"
	"whale/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionRepositoryI interface {
	InsertTransaction(ctx context.Context, transaction *models.Transaction) (string, error)
}

type TransactionRepository struct {
	collection *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database, collection string) *TransactionRepository {
	return &TransactionRepository{collection: db.Collection(collection)}
}

// InsertTransaction stores a processed transaction as a new document and
// returns the identifier assigned by the store. Inserts are one-shot, there
// is no idempotency key, so a retried request creates a second document.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, transaction *models.Transaction) (string, error) {
	result, err := r.collection.InsertOne(ctx, transaction)
	if err != nil {
		return "", err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}
