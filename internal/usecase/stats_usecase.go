package usecase

import (
	"context"
	"sync"
	"time"

	"xenopets/internal/domain/entity"
	"xenopets/internal/domain/repository"
	"xenopets/pkg/logger"
)

// StatsInputs is one complete set of collections the aggregator derives a
// snapshot from.
type StatsInputs struct {
	Users     []*entity.User
	Pets      []*entity.Pet
	Inventory []*entity.InventoryItem
	Items     []*entity.Item
	Shops     []*entity.Shop
	NPCs      []*entity.NPC

	ActiveCutoff time.Time
}

// Fixed minigame counters; there is no minigame registry to count yet.
// TODO: derive from the minigame catalog once minigames move server-side.
const (
	minigameCount      = 8
	minigameEventCount = 3
)

// ComputeStatistics derives a full snapshot from one set of inputs. It is a
// pure function; every counter is recomputed, never partially updated.
func ComputeStatistics(in StatsInputs, now time.Time) entity.Statistics {
	totalPlayers := len(in.Users)
	activePlayers := 0
	var totalXenocoins, totalCash int64
	for _, u := range in.Users {
		if u.ActiveSince(in.ActiveCutoff) {
			activePlayers++
		}
		totalXenocoins += u.Xenocoins
		totalCash += u.Cash
	}

	totalPets := len(in.Pets)
	alivePets := 0
	legendary := 0
	for _, p := range in.Pets {
		if p.IsAlive {
			alivePets++
		}
		if p.Species == entity.SpeciesDragon {
			legendary++
		}
	}

	dailyTransactions := 0
	for _, item := range in.Inventory {
		dailyTransactions += item.Quantity
	}

	retentionRate := 0.0
	if totalPlayers > 0 {
		retentionRate = float64(activePlayers) / float64(totalPlayers) * 100
	}

	// An empty world has lost no pets.
	petSurvivalRate := 100.0
	if totalPets > 0 {
		petSurvivalRate = float64(alivePets) / float64(totalPets) * 100
	}

	return entity.Statistics{
		TotalPlayers:      totalPlayers,
		ActivePlayers:     activePlayers,
		TotalPets:         totalPets,
		AlivePets:         alivePets,
		TotalXenocoins:    totalXenocoins,
		TotalCash:         totalCash,
		TotalItems:        len(in.Items),
		DailyTransactions: dailyTransactions,
		RetentionRate:     retentionRate,
		PetSurvivalRate:   petSurvivalRate,
		Sections: entity.SectionStats{
			Analytics: entity.AnalyticsSection{
				Players: totalPlayers,
				Pets:    totalPets,
				Revenue: totalXenocoins,
			},
			Users: entity.UsersSection{
				Total:  totalPlayers,
				Active: activePlayers,
				New:    0,
			},
			Pets: entity.PetsSection{
				Total:     totalPets,
				Alive:     alivePets,
				Legendary: legendary,
			},
			Items: entity.ItemsSection{
				Items:        len(in.Items),
				Shops:        len(in.Shops),
				Transactions: len(in.Inventory),
			},
			Shops: entity.ShopsSection{
				Shops: len(in.Shops),
				NPCs:  len(in.NPCs),
				Sales: len(in.Inventory),
			},
			Minigames: entity.MinigamesSection{
				Games:   minigameCount,
				Events:  minigameEventCount,
				Players: activePlayers,
			},
		},
		RefreshedAt: now,
	}
}

// StatsUseCase loads the aggregator's inputs from the store and the catalog
// registry and keeps the latest snapshot. When a store read fails the
// previous read of that collection is reused, so the dashboard degrades
// instead of erroring.
type StatsUseCase struct {
	userRepo      repository.UserRepository
	petRepo       repository.PetRepository
	inventoryRepo repository.InventoryRepository
	catalog       *CatalogUseCase
	activeWindow  time.Duration

	mu         sync.RWMutex
	lastUsers  []*entity.User
	lastPets   []*entity.Pet
	lastInv    []*entity.InventoryItem
	snapshot   entity.Statistics
	hasRefresh bool
}

func NewStatsUseCase(
	userRepo repository.UserRepository,
	petRepo repository.PetRepository,
	inventoryRepo repository.InventoryRepository,
	catalog *CatalogUseCase,
	activeWindow time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		userRepo:      userRepo,
		petRepo:       petRepo,
		inventoryRepo: inventoryRepo,
		catalog:       catalog,
		activeWindow:  activeWindow,
	}
}

// Refresh recomputes the snapshot from live collections and returns it.
func (uc *StatsUseCase) Refresh(ctx context.Context) entity.Statistics {
	uc.mu.RLock()
	users, pets, inventory := uc.lastUsers, uc.lastPets, uc.lastInv
	uc.mu.RUnlock()

	if loaded, err := uc.userRepo.List(ctx); err != nil {
		logger.LogRefreshError("users", err)
	} else {
		users = loaded
	}
	if loaded, err := uc.petRepo.List(ctx); err != nil {
		logger.LogRefreshError("pets", err)
	} else {
		pets = loaded
	}
	if loaded, err := uc.inventoryRepo.List(ctx); err != nil {
		logger.LogRefreshError("inventory", err)
	} else {
		inventory = loaded
	}

	now := time.Now()
	snapshot := ComputeStatistics(StatsInputs{
		Users:        users,
		Pets:         pets,
		Inventory:    inventory,
		Items:        uc.catalog.ListItems(),
		Shops:        uc.catalog.ListShops(),
		NPCs:         uc.catalog.ListNPCs(),
		ActiveCutoff: now.Add(-uc.activeWindow),
	}, now)

	uc.mu.Lock()
	uc.lastUsers = users
	uc.lastPets = pets
	uc.lastInv = inventory
	uc.snapshot = snapshot
	uc.hasRefresh = true
	uc.mu.Unlock()

	return snapshot
}

// Snapshot returns the latest refresh result without recomputing.
func (uc *StatsUseCase) Snapshot() (entity.Statistics, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snapshot, uc.hasRefresh
}
