package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"xenopets/internal/domain/entity"
	"xenopets/internal/domain/repository"
	"xenopets/pkg/logger"
)

// NotificationUseCase delivers fire-and-forget toasts: persisted for the
// inbox and pushed live over the websocket. Delivery failures are logged,
// never returned to gameplay paths.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	pusher           UserPusher
}

// UserPusher sends a payload to one connected user.
type UserPusher interface {
	SendToUser(userID string, message []byte)
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, pusher UserPusher) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

func (uc *NotificationUseCase) Notify(ctx context.Context, userID string, kind entity.NotificationType, title, message string) {
	if !kind.Valid() {
		logger.Warn("Dropping notification with unknown type %q", kind)
		return
	}

	notification := &entity.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to persist notification for %s: %v", userID, err)
	}

	if uc.pusher == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})
	if err != nil {
		logger.Error("Failed to encode notification: %v", err)
		return
	}
	uc.pusher.SendToUser(userID, payload)
}

func (uc *NotificationUseCase) ListForUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.notificationRepo.ListByUser(ctx, userID, limit)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	return uc.notificationRepo.MarkRead(ctx, id)
}
