package usecase

import (
	"context"
	"fmt"

	"xenopets/internal/domain/entity"
	"xenopets/internal/domain/repository"
	"xenopets/pkg/errors"
)

type PlayerUseCase struct {
	userRepo        repository.UserRepository
	petRepo         repository.PetRepository
	achievementRepo repository.AchievementRepository
	notifications   *NotificationUseCase
}

func NewPlayerUseCase(
	userRepo repository.UserRepository,
	petRepo repository.PetRepository,
	achievementRepo repository.AchievementRepository,
	notifications *NotificationUseCase,
) *PlayerUseCase {
	return &PlayerUseCase{
		userRepo:        userRepo,
		petRepo:         petRepo,
		achievementRepo: achievementRepo,
		notifications:   notifications,
	}
}

// SearchResult echoes the caller's sequence token so the presentation layer
// can discard responses that arrive out of order.
type SearchResult struct {
	Seq     int64          `json:"seq"`
	Query   string         `json:"query"`
	Players []*entity.User `json:"players"`
}

const searchLimit = 20

func (uc *PlayerUseCase) SearchPlayers(ctx context.Context, query string, seq int64) (*SearchResult, error) {
	if query == "" {
		return nil, errors.Validation("Search query must not be empty", nil)
	}

	players, err := uc.userRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Seq:     seq,
		Query:   query,
		Players: players,
	}, nil
}

// Profile is everything the profile screen renders for one player.
type Profile struct {
	User         *entity.User          `json:"user"`
	Pets         []*entity.Pet         `json:"pets"`
	Achievements []*entity.Achievement `json:"achievements"`
}

func (uc *PlayerUseCase) GetPlayerProfile(ctx context.Context, id string) (*Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pets, err := uc.petRepo.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	achievements, err := uc.achievementRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:         user,
		Pets:         pets,
		Achievements: achievements,
	}, nil
}

// GrantCurrency credits a player's wallet. Admin-only; amount must be
// positive.
func (uc *PlayerUseCase) GrantCurrency(ctx context.Context, adminID, userID string, kind entity.CurrencyKind, amount int64) error {
	if amount <= 0 {
		return errors.Validation("Amount must be positive", nil)
	}
	if !kind.Valid() {
		return errors.Validation("Unknown currency: "+string(kind), nil)
	}

	admin, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if !admin.IsAdmin {
		return errors.Forbidden("Admin privileges required", nil)
	}

	target, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.userRepo.UpdateBalance(ctx, userID, kind, amount); err != nil {
		return err
	}

	uc.notifications.Notify(ctx, userID, entity.NotifySuccess, "Currency Granted",
		fmt.Sprintf("Added %d %s to %s", amount, kind, target.Username))

	return nil
}
