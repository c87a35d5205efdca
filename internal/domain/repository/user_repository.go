package repository

import (
	"context"

	"xenopets/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Search(ctx context.Context, query string, limit int) ([]*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdateBalance(ctx context.Context, userID string, kind entity.CurrencyKind, delta int64) error
}
