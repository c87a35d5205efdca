package usecase

import (
	"context"
	"time"

	"xenopets/internal/domain/entity"
	"xenopets/internal/domain/repository"
	"xenopets/pkg/errors"
)

// ProgressUseCase advances achievements, quests and collectibles. All three
// are monotonic: unlocked, completed and collected states never revert.
type ProgressUseCase struct {
	achievementRepo repository.AchievementRepository
	questRepo       repository.QuestRepository
	collectibleRepo repository.CollectibleRepository
	notifications   *NotificationUseCase
}

func NewProgressUseCase(
	achievementRepo repository.AchievementRepository,
	questRepo repository.QuestRepository,
	collectibleRepo repository.CollectibleRepository,
	notifications *NotificationUseCase,
) *ProgressUseCase {
	return &ProgressUseCase{
		achievementRepo: achievementRepo,
		questRepo:       questRepo,
		collectibleRepo: collectibleRepo,
		notifications:   notifications,
	}
}

func (uc *ProgressUseCase) AdvanceAchievement(ctx context.Context, userID, achievementID string, delta int) (*entity.Achievement, error) {
	if delta <= 0 {
		return nil, errors.Validation("Progress delta must be positive", nil)
	}

	achievement, err := uc.achievementRepo.GetByID(ctx, userID, achievementID)
	if err != nil {
		return nil, err
	}

	unlocked := achievement.Advance(delta, time.Now())
	if err := uc.achievementRepo.Update(ctx, achievement); err != nil {
		return nil, err
	}

	if unlocked {
		uc.notifications.Notify(ctx, userID, entity.NotifyAchievement,
			"Achievement Unlocked", achievement.Name)
	}

	return achievement, nil
}

func (uc *ProgressUseCase) AdvanceQuest(ctx context.Context, userID, questID, requirement string, delta int) (*entity.Quest, error) {
	if delta <= 0 {
		return nil, errors.Validation("Progress delta must be positive", nil)
	}
	if requirement == "" {
		return nil, errors.Validation("Requirement key must not be empty", nil)
	}

	quest, err := uc.questRepo.GetByID(ctx, userID, questID)
	if err != nil {
		return nil, err
	}

	completed := quest.Advance(requirement, delta, time.Now())
	if err := uc.questRepo.Update(ctx, quest); err != nil {
		return nil, err
	}

	if completed {
		uc.notifications.Notify(ctx, userID, entity.NotifySuccess,
			"Quest Completed", quest.Name)
	}

	return quest, nil
}

func (uc *ProgressUseCase) CollectCollectible(ctx context.Context, userID, collectibleID string) (*entity.Collectible, error) {
	collectible, err := uc.collectibleRepo.GetByID(ctx, userID, collectibleID)
	if err != nil {
		return nil, err
	}

	if collectible.Collect(time.Now()) {
		if err := uc.collectibleRepo.Update(ctx, collectible); err != nil {
			return nil, err
		}
	}

	return collectible, nil
}
