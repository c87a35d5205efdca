package entity

import (
	"time"
)

type AchievementCategory string

const (
	CategoryExploration AchievementCategory = "exploration"
	CategoryCombat      AchievementCategory = "combat"
	CategoryCollection  AchievementCategory = "collection"
	CategorySocial      AchievementCategory = "social"
	CategorySpecial     AchievementCategory = "special"
)

// Achievement progress is monotonic: once unlocked it never reverts.
type Achievement struct {
	ID           string                 `json:"id" firestore:"id"`
	UserID       string                 `json:"user_id" firestore:"userId"`
	Name         string                 `json:"name" firestore:"name"`
	Description  string                 `json:"description" firestore:"description"`
	Category     AchievementCategory    `json:"category" firestore:"category"`
	Requirements map[string]interface{} `json:"requirements" firestore:"requirements"`
	Rewards      map[string]int64       `json:"rewards" firestore:"rewards"`
	IsUnlocked   bool                   `json:"is_unlocked" firestore:"isUnlocked"`
	UnlockedAt   *time.Time             `json:"unlocked_at,omitempty" firestore:"unlockedAt,omitempty"`
	Progress     int                    `json:"progress" firestore:"progress"`
	MaxProgress  int                    `json:"max_progress" firestore:"maxProgress"`
}

// Advance moves progress forward by delta, clamping at MaxProgress. It
// returns true the single time the achievement crosses into unlocked.
func (a *Achievement) Advance(delta int, now time.Time) bool {
	if a.IsUnlocked || delta <= 0 {
		return false
	}
	a.Progress += delta
	if a.Progress > a.MaxProgress {
		a.Progress = a.MaxProgress
	}
	if a.Progress >= a.MaxProgress {
		a.IsUnlocked = true
		a.UnlockedAt = &now
		return true
	}
	return false
}

type QuestType string

const (
	QuestDelivery    QuestType = "delivery"
	QuestMinigame    QuestType = "minigame"
	QuestExploration QuestType = "exploration"
	QuestCombat      QuestType = "combat"
	QuestRiddle      QuestType = "riddle"
)

// Quest tracks a progress counter per requirement key. Completion is
// monotonic.
type Quest struct {
	ID           string           `json:"id" firestore:"id"`
	UserID       string           `json:"user_id" firestore:"userId"`
	Name         string           `json:"name" firestore:"name"`
	Description  string           `json:"description" firestore:"description"`
	Type         QuestType        `json:"type" firestore:"type"`
	Requirements map[string]int   `json:"requirements" firestore:"requirements"`
	Rewards      map[string]int64 `json:"rewards" firestore:"rewards"`
	IsActive     bool             `json:"is_active" firestore:"isActive"`
	IsCompleted  bool             `json:"is_completed" firestore:"isCompleted"`
	Progress     map[string]int   `json:"progress" firestore:"progress"`
	StartedAt    *time.Time       `json:"started_at,omitempty" firestore:"startedAt,omitempty"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty" firestore:"completedAt,omitempty"`
}

// Advance moves one requirement counter forward. It returns true the single
// time the quest becomes complete.
func (q *Quest) Advance(requirement string, delta int, now time.Time) bool {
	if q.IsCompleted || delta <= 0 {
		return false
	}
	if q.Progress == nil {
		q.Progress = make(map[string]int)
	}
	q.Progress[requirement] += delta
	if target, ok := q.Requirements[requirement]; ok && q.Progress[requirement] > target {
		q.Progress[requirement] = target
	}
	for key, target := range q.Requirements {
		if q.Progress[key] < target {
			return false
		}
	}
	q.IsCompleted = true
	q.CompletedAt = &now
	return true
}

type CollectibleType string

const (
	CollectibleStone   CollectibleType = "stone"
	CollectibleFish    CollectibleType = "fish"
	CollectibleEgg     CollectibleType = "egg"
	CollectibleStamp   CollectibleType = "stamp"
	CollectibleArtwork CollectibleType = "artwork"
)

type Collectible struct {
	ID          string          `json:"id" firestore:"id"`
	UserID      string          `json:"user_id" firestore:"userId"`
	Name        string          `json:"name" firestore:"name"`
	Type        CollectibleType `json:"type" firestore:"type"`
	Rarity      ItemRarity      `json:"rarity" firestore:"rarity"`
	Description string          `json:"description" firestore:"description"`
	ImageURL    string          `json:"image_url,omitempty" firestore:"imageURL,omitempty"`
	IsCollected bool            `json:"is_collected" firestore:"isCollected"`
	CollectedAt *time.Time      `json:"collected_at,omitempty" firestore:"collectedAt,omitempty"`
}

// Collect flips the collectible to collected exactly once.
func (c *Collectible) Collect(now time.Time) bool {
	if c.IsCollected {
		return false
	}
	c.IsCollected = true
	c.CollectedAt = &now
	return true
}
