package api

import (
	"github.com/suraksha-dev/suraksha/shared/domain"
)

// Request DTOs

type CreateForumRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
}

// PatchForumRequest carries the scalar fields of a shallow forum merge.
type PatchForumRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Tags        *[]string `json:"tags,omitempty" validate:"omitempty,min=1,dive,required"`
	Rating      *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

type RateForumRequest struct {
	Stars float64 `json:"stars" validate:"required,gte=1,lte=5"`
}

// Response DTOs

// ForumMetadataResponse is the list view: a forum without its posts.
type ForumMetadataResponse struct {
	Id          domain.ForumId `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tags        domain.Tags    `json:"tags"`
	Rating      float64        `json:"rating"`
	Notes       int            `json:"note_count"`
	Discussions int            `json:"discussion_count"`
}

type ForumListResponse struct {
	Forums []ForumMetadataResponse `json:"forums"`
}

// ForumResponse wraps a full forum with posts in display order and with
// content rendered to sanitized HTML.
type ForumResponse struct {
	domain.Forum
	Notes       []NoteView       `json:"notes"`
	Discussions []DiscussionView `json:"discussions"`
}

type RatingResponse struct {
	Rating float64 `json:"rating"`
}
