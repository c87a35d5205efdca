package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xenopets/internal/domain/entity"
	"xenopets/internal/domain/repository"
	"xenopets/pkg/errors"
)

// Progress collections are stored per user as subcollections:
// users/{uid}/achievements, users/{uid}/quests, users/{uid}/collectibles.

type firestoreAchievementRepository struct {
	client *firestore.Client
}

func NewFirestoreAchievementRepository(client *firestore.Client) repository.AchievementRepository {
	return &firestoreAchievementRepository{client: client}
}

func (r *firestoreAchievementRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("achievements")
}

func (r *firestoreAchievementRepository) GetByID(ctx context.Context, userID, achievementID string) (*entity.Achievement, error) {
	doc, err := r.collection(userID).Doc(achievementID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Achievement", err)
		}
		return nil, errors.Internal("Failed to get achievement", err)
	}

	var achievement entity.Achievement
	if err := doc.DataTo(&achievement); err != nil {
		return nil, errors.Internal("Failed to parse achievement data", err)
	}

	return &achievement, nil
}

func (r *firestoreAchievementRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Achievement, error) {
	var achievements []*entity.Achievement
	iter := r.collection(userID).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list achievements", err)
		}

		var achievement entity.Achievement
		if err := doc.DataTo(&achievement); err != nil {
			return nil, errors.Internal("Failed to parse achievement data", err)
		}
		achievements = append(achievements, &achievement)
	}

	return achievements, nil
}

func (r *firestoreAchievementRepository) Update(ctx context.Context, achievement *entity.Achievement) error {
	_, err := r.collection(achievement.UserID).Doc(achievement.ID).Set(ctx, achievement)
	if err != nil {
		return errors.Internal("Failed to update achievement", err)
	}

	return nil
}

type firestoreQuestRepository struct {
	client *firestore.Client
}

func NewFirestoreQuestRepository(client *firestore.Client) repository.QuestRepository {
	return &firestoreQuestRepository{client: client}
}

func (r *firestoreQuestRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("quests")
}

func (r *firestoreQuestRepository) GetByID(ctx context.Context, userID, questID string) (*entity.Quest, error) {
	doc, err := r.collection(userID).Doc(questID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Quest", err)
		}
		return nil, errors.Internal("Failed to get quest", err)
	}

	var quest entity.Quest
	if err := doc.DataTo(&quest); err != nil {
		return nil, errors.Internal("Failed to parse quest data", err)
	}

	return &quest, nil
}

func (r *firestoreQuestRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Quest, error) {
	var quests []*entity.Quest
	iter := r.collection(userID).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list quests", err)
		}

		var quest entity.Quest
		if err := doc.DataTo(&quest); err != nil {
			return nil, errors.Internal("Failed to parse quest data", err)
		}
		quests = append(quests, &quest)
	}

	return quests, nil
}

func (r *firestoreQuestRepository) Update(ctx context.Context, quest *entity.Quest) error {
	_, err := r.collection(quest.UserID).Doc(quest.ID).Set(ctx, quest)
	if err != nil {
		return errors.Internal("Failed to update quest", err)
	}

	return nil
}

type firestoreCollectibleRepository struct {
	client *firestore.Client
}

func NewFirestoreCollectibleRepository(client *firestore.Client) repository.CollectibleRepository {
	return &firestoreCollectibleRepository{client: client}
}

func (r *firestoreCollectibleRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("collectibles")
}

func (r *firestoreCollectibleRepository) GetByID(ctx context.Context, userID, collectibleID string) (*entity.Collectible, error) {
	doc, err := r.collection(userID).Doc(collectibleID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Collectible", err)
		}
		return nil, errors.Internal("Failed to get collectible", err)
	}

	var collectible entity.Collectible
	if err := doc.DataTo(&collectible); err != nil {
		return nil, errors.Internal("Failed to parse collectible data", err)
	}

	return &collectible, nil
}

func (r *firestoreCollectibleRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Collectible, error) {
	var collectibles []*entity.Collectible
	iter := r.collection(userID).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list collectibles", err)
		}

		var collectible entity.Collectible
		if err := doc.DataTo(&collectible); err != nil {
			return nil, errors.Internal("Failed to parse collectible data", err)
		}
		collectibles = append(collectibles, &collectible)
	}

	return collectibles, nil
}

func (r *firestoreCollectibleRepository) Update(ctx context.Context, collectible *entity.Collectible) error {
	_, err := r.collection(collectible.UserID).Doc(collectible.ID).Set(ctx, collectible)
	if err != nil {
		return errors.Internal("Failed to update collectible", err)
	}

	return nil
}
