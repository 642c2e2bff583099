package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/errors"
)

// to mock service in tests
type NotificationService interface {
	Notify(userId domain.UserId, message string, ref domain.PostRef)
	For(userId domain.UserId) []domain.Notification
	MarkRead(userId domain.UserId, notificationId string) error
	MarkAllRead(userId domain.UserId)
	Clear(userId domain.UserId)
}

// maximum notifications kept per user; older ones fall off the end
const notificationCap = 100

// Notifications live in process memory only: a restart clears them.
// That matches how the dashboard always behaved and keeps the
// persisted slot free of per-user state.
type Notifications struct {
	mu     sync.Mutex
	byUser map[domain.UserId][]domain.Notification
}

func NewNotifications() *Notifications {
	return &Notifications{byUser: make(map[domain.UserId][]domain.Notification)}
}

func (n *Notifications) Notify(userId domain.UserId, message string, ref domain.PostRef) {
	n.mu.Lock()
	defer n.mu.Unlock()

	notification := domain.Notification{
		Id:        uuid.NewString(),
		UserId:    userId,
		Message:   message,
		Timestamp: time.Now().UTC(),
		IsRead:    false,
		Ref:       ref,
	}
	// Newest first.
	list := append([]domain.Notification{notification}, n.byUser[userId]...)
	if len(list) > notificationCap {
		list = list[:notificationCap]
	}
	n.byUser[userId] = list
}

func (n *Notifications) For(userId domain.UserId) []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]domain.Notification{}, n.byUser[userId]...)
}

func (n *Notifications) MarkRead(userId domain.UserId, notificationId string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.byUser[userId] {
		if n.byUser[userId][i].Id == notificationId {
			n.byUser[userId][i].IsRead = true
			return nil
		}
	}
	return errors.NewNotFound("notification", notificationId)
}

func (n *Notifications) MarkAllRead(userId domain.UserId) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.byUser[userId] {
		n.byUser[userId][i].IsRead = true
	}
}

func (n *Notifications) Clear(userId domain.UserId) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.byUser, userId)
}
