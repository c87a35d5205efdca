package repository

import (
	"context"

	"xenopets/internal/domain/entity"
)

type InventoryRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.InventoryItem, error)
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	Add(ctx context.Context, item *entity.InventoryItem) error
}
