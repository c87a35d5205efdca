package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAchievementAdvanceUnlocksExactlyOnce(t *testing.T) {
	now := time.Now()
	a := &Achievement{MaxProgress: 10, Progress: 8}

	assert.False(t, a.Advance(1, now))
	assert.Equal(t, 9, a.Progress)

	assert.True(t, a.Advance(5, now), "crossing max unlocks")
	assert.Equal(t, 10, a.Progress, "progress clamps at max")
	assert.True(t, a.IsUnlocked)

	assert.False(t, a.Advance(1, now), "already unlocked, no second unlock")
	assert.Equal(t, 10, a.Progress)
}

func TestAchievementAdvanceRejectsNonPositiveDelta(t *testing.T) {
	a := &Achievement{MaxProgress: 10, Progress: 5}

	assert.False(t, a.Advance(0, time.Now()))
	assert.False(t, a.Advance(-3, time.Now()))
	assert.Equal(t, 5, a.Progress)
}

func TestQuestAdvanceCompletesWhenAllRequirementsMet(t *testing.T) {
	now := time.Now()
	q := &Quest{
		Requirements: map[string]int{"fish": 3, "stones": 2},
	}

	assert.False(t, q.Advance("fish", 3, now))
	assert.False(t, q.Advance("stones", 1, now))
	assert.True(t, q.Advance("stones", 5, now), "last requirement completes the quest")
	assert.Equal(t, 2, q.Progress["stones"], "per-requirement progress clamps at target")

	assert.False(t, q.Advance("fish", 1, now), "completed quests never advance again")
}

func TestCollectibleCollectIsOneWay(t *testing.T) {
	now := time.Now()
	c := &Collectible{Type: CollectibleFish}

	assert.True(t, c.Collect(now))
	assert.True(t, c.IsCollected)

	assert.False(t, c.Collect(now.Add(time.Hour)))
	assert.Equal(t, now, *c.CollectedAt)
}
