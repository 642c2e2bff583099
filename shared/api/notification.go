package api

import "github.com/suraksha-dev/suraksha/shared/domain"

type NotificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}
