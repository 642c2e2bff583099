package api

import (
	"github.com/suraksha-dev/suraksha/shared/domain"
)

// Request DTOs

type AttachmentPayload struct {
	Kind string `json:"kind" validate:"required,oneof=image document link"`
	Url  string `json:"url" validate:"required"`
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size,omitempty" validate:"omitempty,gte=0"`
}

type CreateNoteRequest struct {
	Title       string              `json:"title" validate:"required"`
	Content     string              `json:"content" validate:"required"`
	Attachments []AttachmentPayload `json:"attachments,omitempty" validate:"omitempty,dive"`
}

// CreateDiscussionRequest: a poll must carry at least two options; the
// store never sees a one-option poll.
type CreateDiscussionRequest struct {
	Content     string              `json:"content" validate:"required"`
	Attachments []AttachmentPayload `json:"attachments,omitempty" validate:"omitempty,dive"`
	IsPoll      bool                `json:"is_poll,omitempty"`
	PollOptions []string            `json:"poll_options,omitempty" validate:"required_if=IsPoll true,omitempty,min=2,dive,required"`
}

type CreateReplyRequest struct {
	Content     string              `json:"content" validate:"required"`
	Attachments []AttachmentPayload `json:"attachments,omitempty" validate:"omitempty,dive"`
}

// Response DTOs

// View types add rendered HTML next to the raw content. The shadowed
// Replies field keeps nested replies rendered too.
type ReplyView struct {
	domain.Reply
	ContentHTML string `json:"content_html"`
}

type NoteView struct {
	domain.Note
	ContentHTML string      `json:"content_html"`
	Replies     []ReplyView `json:"replies"`
}

type DiscussionView struct {
	domain.Discussion
	ContentHTML string      `json:"content_html"`
	Replies     []ReplyView `json:"replies"`
}

type CreateNoteResponse struct {
	Note NoteView `json:"note"`
}

type CreateDiscussionResponse struct {
	Discussion DiscussionView `json:"discussion"`
}

type CreateReplyResponse struct {
	Reply ReplyView `json:"reply"`
}

// Attachments converts payloads to domain values. Ids are assigned by
// the store.
func (r CreateReplyRequest) DomainAttachments() []domain.Attachment {
	return toDomainAttachments(r.Attachments)
}

func (r CreateNoteRequest) DomainAttachments() []domain.Attachment {
	return toDomainAttachments(r.Attachments)
}

func (r CreateDiscussionRequest) DomainAttachments() []domain.Attachment {
	return toDomainAttachments(r.Attachments)
}

func toDomainAttachments(payloads []AttachmentPayload) []domain.Attachment {
	if len(payloads) == 0 {
		return nil
	}
	out := make([]domain.Attachment, len(payloads))
	for i, p := range payloads {
		out[i] = domain.Attachment{
			Kind: domain.AttachmentKind(p.Kind),
			Url:  p.Url,
			Name: p.Name,
			Size: p.Size,
		}
	}
	return out
}
