package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/suraksha-dev/suraksha/shared/domain"
)

// Slot layout: one JSON blob under a versioned key. The key itself
// carries the version; bumping SlotVersion means a fresh slot and the
// old keys are deleted on open, no migration.
const (
	SlotVersion = 3
	slotKey     = "suraksha-forum-storage-v3"
)

// staleSlotKeys are deleted unconditionally on open.
var staleSlotKeys = []string{
	"suraksha-forum-storage-v1",
	"suraksha-forum-storage-v2",
	"forum-storage",
	"suraksha-forum-storage",
}

// Record structs mirror the persisted JSON. Timestamps round-trip as
// RFC3339 strings and are re-parsed explicitly during decode: trusting
// the deserialized form would silently break display ordering.

type snapshot struct {
	Forums []forumRecord `json:"forums"`
}

type forumRecord struct {
	Id          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tags        []string           `json:"tags"`
	Rating      float64            `json:"rating"`
	Notes       []noteRecord       `json:"notes"`
	Discussions []discussionRecord `json:"discussions"`
}

type noteRecord struct {
	Id          string             `json:"id"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Author      string             `json:"author"`
	AuthorId    string             `json:"author_id"`
	Timestamp   string             `json:"timestamp"`
	Replies     []replyRecord      `json:"replies"`
	Likes       int                `json:"likes"`
	Dislikes    int                `json:"dislikes"`
	Attachments []attachmentRecord `json:"attachments"`
	IsPinned    bool               `json:"is_pinned"`
}

type discussionRecord struct {
	Id          string             `json:"id"`
	Content     string             `json:"content"`
	Author      string             `json:"author"`
	AuthorId    string             `json:"author_id"`
	Timestamp   string             `json:"timestamp"`
	Replies     []replyRecord      `json:"replies"`
	Likes       int                `json:"likes"`
	Dislikes    int                `json:"dislikes"`
	Attachments []attachmentRecord `json:"attachments"`
	IsPinned    bool               `json:"is_pinned"`
	IsPoll      bool               `json:"is_poll"`
	PollOptions []pollOptionRecord `json:"poll_options,omitempty"`
}

type replyRecord struct {
	Id          string             `json:"id"`
	Content     string             `json:"content"`
	Author      string             `json:"author"`
	AuthorId    string             `json:"author_id"`
	Timestamp   string             `json:"timestamp"`
	Likes       int                `json:"likes"`
	Dislikes    int                `json:"dislikes"`
	Attachments []attachmentRecord `json:"attachments"`
}

type attachmentRecord struct {
	Id   string `json:"id"`
	Kind string `json:"kind"`
	Url  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
}

func encodeSnapshot(forums []domain.Forum) ([]byte, error) {
	snap := snapshot{Forums: make([]forumRecord, len(forums))}
	for i, f := range forums {
		snap.Forums[i] = encodeForum(f)
	}
	return json.Marshal(snap)
}

func decodeSnapshot(data []byte) ([]domain.Forum, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("corrupt forum slot: %w", err)
	}
	forums := make([]domain.Forum, len(snap.Forums))
	for i, rec := range snap.Forums {
		f, err := decodeForum(rec)
		if err != nil {
			return nil, err
		}
		forums[i] = f
	}
	return forums, nil
}

func encodeForum(f domain.Forum) forumRecord {
	rec := forumRecord{
		Id:          f.Id,
		Name:        f.Name,
		Description: f.Description,
		Tags:        f.Tags,
		Rating:      f.Rating,
		Notes:       make([]noteRecord, len(f.Notes)),
		Discussions: make([]discussionRecord, len(f.Discussions)),
	}
	for i, n := range f.Notes {
		rec.Notes[i] = noteRecord{
			Id:          n.Id,
			Title:       n.Title,
			Content:     n.Content,
			Author:      n.Author,
			AuthorId:    n.AuthorId,
			Timestamp:   encodeTime(n.Timestamp),
			Replies:     encodeReplies(n.Replies),
			Likes:       n.Likes,
			Dislikes:    n.Dislikes,
			Attachments: encodeAttachments(n.Attachments),
			IsPinned:    n.IsPinned,
		}
	}
	for i, d := range f.Discussions {
		dr := discussionRecord{
			Id:          d.Id,
			Content:     d.Content,
			Author:      d.Author,
			AuthorId:    d.AuthorId,
			Timestamp:   encodeTime(d.Timestamp),
			Replies:     encodeReplies(d.Replies),
			Likes:       d.Likes,
			Dislikes:    d.Dislikes,
			Attachments: encodeAttachments(d.Attachments),
			IsPinned:    d.IsPinned,
			IsPoll:      d.IsPoll,
		}
		for _, o := range d.PollOptions {
			dr.PollOptions = append(dr.PollOptions, pollOptionRecord{
				Id:     o.Id,
				Text:   o.Text,
				Votes:  o.Votes,
				Voters: append([]string{}, o.Voters...),
			})
		}
		rec.Discussions[i] = dr
	}
	return rec
}

type pollOptionRecord struct {
	Id     string   `json:"id"`
	Text   string   `json:"text"`
	Votes  int      `json:"votes"`
	Voters []string `json:"voters"`
}

func decodeForum(rec forumRecord) (domain.Forum, error) {
	f := domain.Forum{
		Id:          rec.Id,
		Name:        rec.Name,
		Description: rec.Description,
		Tags:        rec.Tags,
		Rating:      rec.Rating,
		Notes:       make([]domain.Note, len(rec.Notes)),
		Discussions: make([]domain.Discussion, len(rec.Discussions)),
	}
	if f.Tags == nil {
		f.Tags = domain.Tags{}
	}
	for i, nr := range rec.Notes {
		ts, err := decodeTime(nr.Timestamp)
		if err != nil {
			return domain.Forum{}, fmt.Errorf("note %s: %w", nr.Id, err)
		}
		replies, err := decodeReplies(nr.Replies)
		if err != nil {
			return domain.Forum{}, fmt.Errorf("note %s: %w", nr.Id, err)
		}
		f.Notes[i] = domain.Note{
			Id:          nr.Id,
			Title:       nr.Title,
			Content:     nr.Content,
			Author:      nr.Author,
			AuthorId:    nr.AuthorId,
			Timestamp:   ts,
			Replies:     replies,
			Likes:       nr.Likes,
			Dislikes:    nr.Dislikes,
			Attachments: decodeAttachments(nr.Attachments),
			IsPinned:    nr.IsPinned,
		}
	}
	for i, dr := range rec.Discussions {
		ts, err := decodeTime(dr.Timestamp)
		if err != nil {
			return domain.Forum{}, fmt.Errorf("discussion %s: %w", dr.Id, err)
		}
		replies, err := decodeReplies(dr.Replies)
		if err != nil {
			return domain.Forum{}, fmt.Errorf("discussion %s: %w", dr.Id, err)
		}
		d := domain.Discussion{
			Id:          dr.Id,
			Content:     dr.Content,
			Author:      dr.Author,
			AuthorId:    dr.AuthorId,
			Timestamp:   ts,
			Replies:     replies,
			Likes:       dr.Likes,
			Dislikes:    dr.Dislikes,
			Attachments: decodeAttachments(dr.Attachments),
			IsPinned:    dr.IsPinned,
			IsPoll:      dr.IsPoll,
		}
		for _, or := range dr.PollOptions {
			voters := or.Voters
			if voters == nil {
				voters = []string{}
			}
			d.PollOptions = append(d.PollOptions, domain.PollOption{
				Id:     or.Id,
				Text:   or.Text,
				Votes:  or.Votes,
				Voters: voters,
			})
		}
		f.Discussions[i] = d
	}
	return f, nil
}

func encodeReplies(replies []domain.Reply) []replyRecord {
	out := make([]replyRecord, len(replies))
	for i, r := range replies {
		out[i] = replyRecord{
			Id:          r.Id,
			Content:     r.Content,
			Author:      r.Author,
			AuthorId:    r.AuthorId,
			Timestamp:   encodeTime(r.Timestamp),
			Likes:       r.Likes,
			Dislikes:    r.Dislikes,
			Attachments: encodeAttachments(r.Attachments),
		}
	}
	return out
}

func decodeReplies(records []replyRecord) ([]domain.Reply, error) {
	out := make([]domain.Reply, len(records))
	for i, rr := range records {
		ts, err := decodeTime(rr.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("reply %s: %w", rr.Id, err)
		}
		out[i] = domain.Reply{
			Id:          rr.Id,
			Content:     rr.Content,
			Author:      rr.Author,
			AuthorId:    rr.AuthorId,
			Timestamp:   ts,
			Likes:       rr.Likes,
			Dislikes:    rr.Dislikes,
			Attachments: decodeAttachments(rr.Attachments),
		}
	}
	return out, nil
}

func encodeAttachments(attachments []domain.Attachment) []attachmentRecord {
	out := make([]attachmentRecord, len(attachments))
	for i, a := range attachments {
		out[i] = attachmentRecord{Id: a.Id, Kind: string(a.Kind), Url: a.Url, Name: a.Name, Size: a.Size}
	}
	return out
}

func decodeAttachments(records []attachmentRecord) []domain.Attachment {
	out := make([]domain.Attachment, len(records))
	for i, r := range records {
		out[i] = domain.Attachment{Id: r.Id, Kind: domain.AttachmentKind(r.Kind), Url: r.Url, Name: r.Name, Size: r.Size}
	}
	return out
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	return t, nil
}
