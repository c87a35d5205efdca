package repository

import (
	"context"

	"xenopets/internal/domain/entity"
)

type AchievementRepository interface {
	GetByID(ctx context.Context, userID, achievementID string) (*entity.Achievement, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Achievement, error)
	Update(ctx context.Context, achievement *entity.Achievement) error
}

type QuestRepository interface {
	GetByID(ctx context.Context, userID, questID string) (*entity.Quest, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Quest, error)
	Update(ctx context.Context, quest *entity.Quest) error
}

type CollectibleRepository interface {
	GetByID(ctx context.Context, userID, collectibleID string) (*entity.Collectible, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Collectible, error)
	Update(ctx context.Context, collectible *entity.Collectible) error
}
