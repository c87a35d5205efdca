package repository

import (
	"context"

	"xenopets/internal/domain/entity"
)

type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	GetByID(ctx context.Context, id string) (*entity.Pet, error)
	Update(ctx context.Context, pet *entity.Pet) error
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Pet, error)
	List(ctx context.Context) ([]*entity.Pet, error)
}
