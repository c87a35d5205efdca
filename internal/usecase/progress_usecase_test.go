package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"xenopets/internal/domain/entity"
	"xenopets/pkg/errors"
)

func newProgressFixture(achievementRepo *stubAchievementRepo, questRepo *stubQuestRepo, collectibleRepo *stubCollectibleRepo) (*ProgressUseCase, *stubNotificationRepo) {
	notifRepo := &stubNotificationRepo{}
	notifications := NewNotificationUseCase(notifRepo, newRecordingPusher())
	return NewProgressUseCase(achievementRepo, questRepo, collectibleRepo, notifications), notifRepo
}

func TestAdvanceAchievementUnlocksOnce(t *testing.T) {
	repo := newStubAchievementRepo(&entity.Achievement{
		ID: "a1", UserID: "u1", Name: "Dragon Tamer", MaxProgress: 10,
	})
	uc, notifRepo := newProgressFixture(repo, newStubQuestRepo(), newStubCollectibleRepo())
	ctx := context.Background()

	got, err := uc.AdvanceAchievement(ctx, "u1", "a1", 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, got.Progress)
	assert.False(t, got.IsUnlocked)

	got, err = uc.AdvanceAchievement(ctx, "u1", "a1", 20)
	assert.NoError(t, err)
	assert.Equal(t, 10, got.Progress, "progress clamps at max")
	assert.True(t, got.IsUnlocked)
	assert.NotNil(t, got.UnlockedAt)
	assert.Len(t, notifRepo.created, 1)
	assert.Equal(t, entity.NotifyAchievement, notifRepo.created[0].Type)

	// Further advances never revert or re-announce.
	unlockedAt := *got.UnlockedAt
	got, err = uc.AdvanceAchievement(ctx, "u1", "a1", 5)
	assert.NoError(t, err)
	assert.True(t, got.IsUnlocked)
	assert.Equal(t, unlockedAt, *got.UnlockedAt)
	assert.Len(t, notifRepo.created, 1)
}

func TestAdvanceAchievementValidation(t *testing.T) {
	uc, _ := newProgressFixture(newStubAchievementRepo(), newStubQuestRepo(), newStubCollectibleRepo())

	_, err := uc.AdvanceAchievement(context.Background(), "u1", "a1", 0)
	assert.True(t, errors.IsValidation(err))

	_, err = uc.AdvanceAchievement(context.Background(), "u1", "missing", 1)
	assert.True(t, errors.IsNotFound(err))
}

func TestAdvanceQuestCompletesWhenAllRequirementsMet(t *testing.T) {
	repo := newStubQuestRepo(&entity.Quest{
		ID: "q1", UserID: "u1", Name: "Market Run",
		Requirements: map[string]int{"deliver": 2, "talk": 1},
	})
	uc, notifRepo := newProgressFixture(newStubAchievementRepo(), repo, newStubCollectibleRepo())
	ctx := context.Background()

	got, err := uc.AdvanceQuest(ctx, "u1", "q1", "deliver", 2)
	assert.NoError(t, err)
	assert.False(t, got.IsCompleted)

	got, err = uc.AdvanceQuest(ctx, "u1", "q1", "talk", 1)
	assert.NoError(t, err)
	assert.True(t, got.IsCompleted)
	assert.NotNil(t, got.CompletedAt)
	assert.Len(t, notifRepo.created, 1)

	got, err = uc.AdvanceQuest(ctx, "u1", "q1", "deliver", 5)
	assert.NoError(t, err)
	assert.True(t, got.IsCompleted)
	assert.Len(t, notifRepo.created, 1, "completion never re-announces")
}

func TestCollectCollectibleIsOneWay(t *testing.T) {
	repo := newStubCollectibleRepo(&entity.Collectible{
		ID: "c1", UserID: "u1", Name: "Ruby Stone", Type: entity.CollectibleStone,
	})
	uc, _ := newProgressFixture(newStubAchievementRepo(), newStubQuestRepo(), repo)
	ctx := context.Background()

	got, err := uc.CollectCollectible(ctx, "u1", "c1")
	assert.NoError(t, err)
	assert.True(t, got.IsCollected)
	first := *got.CollectedAt

	got, err = uc.CollectCollectible(ctx, "u1", "c1")
	assert.NoError(t, err)
	assert.Equal(t, first, *got.CollectedAt)
}
