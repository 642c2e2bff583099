package domain

import "time"

// PostRef points a notification at the note/discussion/reply it is about.
type PostRef struct {
	Kind PostKind `json:"kind"`
	Id   PostId   `json:"id"`
}

// Notification is process-local: never persisted, cleared on restart.
type Notification struct {
	Id        string    `json:"id"`
	UserId    UserId    `json:"user_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
	Ref       PostRef   `json:"ref"`
}
