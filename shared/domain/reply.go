package domain

import "time"

type ReplyDraft struct {
	Content     string
	Author      string
	AuthorId    UserId
	Attachments []Attachment
}

type Reply struct {
	Id          PostId       `json:"id"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	AuthorId    UserId       `json:"author_id"`
	Timestamp   time.Time    `json:"timestamp"`
	Likes       int          `json:"likes"`
	Dislikes    int          `json:"dislikes"`
	Attachments []Attachment `json:"attachments"`
}

func (r Reply) Clone() Reply {
	out := r
	out.Attachments = append([]Attachment(nil), r.Attachments...)
	return out
}

func cloneReplies(replies []Reply) []Reply {
	out := make([]Reply, len(replies))
	for i, r := range replies {
		out[i] = r.Clone()
	}
	return out
}
