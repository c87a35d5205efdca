package entity

import (
	"time"
)

type NotificationType string

const (
	NotifyInfo        NotificationType = "info"
	NotifyWarning     NotificationType = "warning"
	NotifySuccess     NotificationType = "success"
	NotifyError       NotificationType = "error"
	NotifyAchievement NotificationType = "achievement"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifyInfo, NotifyWarning, NotifySuccess, NotifyError, NotifyAchievement:
		return true
	}
	return false
}

type Notification struct {
	ID        string           `json:"id" firestore:"id"`
	UserID    string           `json:"user_id" firestore:"userId"`
	Type      NotificationType `json:"type" firestore:"type"`
	Title     string           `json:"title" firestore:"title"`
	Message   string           `json:"message" firestore:"message"`
	IsRead    bool             `json:"is_read" firestore:"isRead"`
	ActionURL string           `json:"action_url,omitempty" firestore:"actionURL,omitempty"`
	CreatedAt time.Time        `json:"created_at" firestore:"createdAt"`
}
