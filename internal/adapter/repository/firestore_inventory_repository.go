package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"xenopets/internal/domain/entity"
	"xenopets/internal/domain/repository"
	"xenopets/pkg/errors"
)

type firestoreInventoryRepository struct {
	client *firestore.Client
}

func NewFirestoreInventoryRepository(client *firestore.Client) repository.InventoryRepository {
	return &firestoreInventoryRepository{
		client: client,
	}
}

func (r *firestoreInventoryRepository) Add(ctx context.Context, item *entity.InventoryItem) error {
	if item.ID == "" {
		doc := r.client.Collection("inventory").NewDoc()
		item.ID = doc.ID
	}
	if item.AcquiredAt.IsZero() {
		item.AcquiredAt = time.Now()
	}

	_, err := r.client.Collection("inventory").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to add inventory item", err)
	}

	return nil
}

func (r *firestoreInventoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.InventoryItem, error) {
	query := r.client.Collection("inventory").Where("ownerId", "==", ownerID)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreInventoryRepository) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return r.collect(r.client.Collection("inventory").Documents(ctx))
}

func (r *firestoreInventoryRepository) collect(iter *firestore.DocumentIterator) ([]*entity.InventoryItem, error) {
	var items []*entity.InventoryItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list inventory", err)
		}

		var item entity.InventoryItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse inventory data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
