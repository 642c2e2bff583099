package domain

import "time"

type DiscussionDraft struct {
	Content     string
	Author      string
	AuthorId    UserId
	Attachments []Attachment
	IsPoll      bool
	PollOptions []string // option labels; ids and counters are store-assigned
}

type Discussion struct {
	Id          PostId       `json:"id"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	AuthorId    UserId       `json:"author_id"`
	Timestamp   time.Time    `json:"timestamp"`
	Replies     []Reply      `json:"replies"`
	Likes       int          `json:"likes"`
	Dislikes    int          `json:"dislikes"`
	Attachments []Attachment `json:"attachments"`
	IsPinned    bool         `json:"is_pinned"`
	IsPoll      bool         `json:"is_poll"`
	PollOptions []PollOption `json:"poll_options,omitempty"`
}

func (d Discussion) Clone() Discussion {
	out := d
	out.Replies = cloneReplies(d.Replies)
	out.Attachments = append([]Attachment(nil), d.Attachments...)
	if d.PollOptions != nil {
		out.PollOptions = make([]PollOption, len(d.PollOptions))
		for i, o := range d.PollOptions {
			out.PollOptions[i] = o.Clone()
		}
	}
	return out
}
