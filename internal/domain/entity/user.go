package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	IsAdmin  bool   `json:"is_admin" firestore:"isAdmin"`
	Language string `json:"language" firestore:"language"`

	AccountScore   int64 `json:"account_score" firestore:"accountScore"`
	DaysPlayed     int   `json:"days_played" firestore:"daysPlayed"`
	TotalXenocoins int64 `json:"total_xenocoins" firestore:"totalXenocoins"`

	// Wallet balances, mutated by admin grants and gameplay
	Xenocoins int64 `json:"xenocoins" firestore:"xenocoins"`
	Cash      int64 `json:"cash" firestore:"cash"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	LastLogin time.Time `json:"last_login" firestore:"lastLogin"`
}

// ActiveSince reports whether the user has logged in at or after the cutoff.
func (u *User) ActiveSince(cutoff time.Time) bool {
	return !u.LastLogin.Before(cutoff)
}
