package entity

import (
	"time"
)

// Statistics is a derived snapshot of dashboard counters. It is recomputed
// in full on every refresh and never persisted.
type Statistics struct {
	TotalPlayers      int     `json:"total_players"`
	ActivePlayers     int     `json:"active_players"`
	TotalPets         int     `json:"total_pets"`
	AlivePets         int     `json:"alive_pets"`
	TotalXenocoins    int64   `json:"total_xenocoins"`
	TotalCash         int64   `json:"total_cash"`
	TotalItems        int     `json:"total_items"`
	DailyTransactions int     `json:"daily_transactions"`
	RetentionRate     float64 `json:"retention_rate"`
	PetSurvivalRate   float64 `json:"pet_survival_rate"`

	Sections    SectionStats `json:"sections"`
	RefreshedAt time.Time    `json:"refreshed_at"`
}

// SectionStats are the per-dashboard-section counters. Every refresh
// recomputes all of them; there is no partial update.
type SectionStats struct {
	Analytics AnalyticsSection `json:"analytics"`
	Users     UsersSection     `json:"users"`
	Pets      PetsSection      `json:"pets"`
	Items     ItemsSection     `json:"items"`
	Shops     ShopsSection     `json:"shops"`
	Minigames MinigamesSection `json:"minigames"`
}

type AnalyticsSection struct {
	Players int   `json:"players"`
	Pets    int   `json:"pets"`
	Revenue int64 `json:"revenue"`
}

type UsersSection struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	New    int `json:"new"`
}

type PetsSection struct {
	Total     int `json:"total"`
	Alive     int `json:"alive"`
	Legendary int `json:"legendary"`
}

type ItemsSection struct {
	Items        int `json:"items"`
	Shops        int `json:"shops"`
	Transactions int `json:"transactions"`
}

type ShopsSection struct {
	Shops int `json:"shops"`
	NPCs  int `json:"npcs"`
	Sales int `json:"sales"`
}

type MinigamesSection struct {
	Games   int `json:"games"`
	Events  int `json:"events"`
	Players int `json:"players"`
}
