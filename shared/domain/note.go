package domain

import "time"

// NoteDraft carries the caller-supplied fields; the store assigns id,
// timestamp, counters and forces IsPinned to false.
type NoteDraft struct {
	Title       string
	Content     string
	Author      string
	AuthorId    UserId
	Attachments []Attachment
}

type Note struct {
	Id          PostId       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	AuthorId    UserId       `json:"author_id"`
	Timestamp   time.Time    `json:"timestamp"`
	Replies     []Reply      `json:"replies"`
	Likes       int          `json:"likes"`
	Dislikes    int          `json:"dislikes"`
	Attachments []Attachment `json:"attachments"`
	IsPinned    bool         `json:"is_pinned"`
}

func (n Note) Clone() Note {
	out := n
	out.Replies = cloneReplies(n.Replies)
	out.Attachments = append([]Attachment(nil), n.Attachments...)
	return out
}
