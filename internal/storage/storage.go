// Package storage owns the forum collection. The store is an explicit,
// constructible object: every mutation runs under one lock, applies to
// the in-memory collection and then serializes the whole collection to
// the injected backend slot before returning.
package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/errors"
	"github.com/suraksha-dev/suraksha/shared/logger"
)

type Store struct {
	mu      sync.Mutex
	backend Backend
	forums  []domain.Forum
}

// Open deletes stale slot versions, then rehydrates the current slot if
// present. A missing slot yields an empty store.
func Open(backend Backend) (*Store, error) {
	for _, key := range staleSlotKeys {
		if err := backend.Delete(key); err != nil {
			logger.Log.Warn("failed to clear stale slot", "key", key, "error", err)
		}
	}

	s := &Store{backend: backend}
	data, ok, err := backend.Load(slotKey)
	if err != nil {
		return nil, fmt.Errorf("load forum slot: %w", err)
	}
	if ok {
		forums, err := decodeSnapshot(data)
		if err != nil {
			return nil, err
		}
		s.forums = forums
	}
	return s, nil
}

// Seed installs the given forums, but only into an empty store.
func (s *Store) Seed(forums []domain.Forum) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.forums) > 0 {
		return nil
	}
	s.forums = make([]domain.Forum, len(forums))
	for i, f := range forums {
		s.forums[i] = f.Clone()
	}
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	data, err := encodeSnapshot(s.forums)
	if err != nil {
		return fmt.Errorf("encode forum slot: %w", err)
	}
	if err := s.backend.Save(slotKey, data); err != nil {
		return fmt.Errorf("save forum slot: %w", err)
	}
	return nil
}

func (s *Store) Forums() []domain.Forum {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Forum, len(s.forums))
	for i, f := range s.forums {
		out[i] = f.Clone()
	}
	return out
}

func (s *Store) Forum(id domain.ForumId) (domain.Forum, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(id)
	if f == nil {
		return domain.Forum{}, errors.NewNotFound("forum", id)
	}
	return f.Clone(), nil
}

func (s *Store) CreateForum(data domain.ForumCreationData) (domain.Forum, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	forum := domain.Forum{
		Id:          uuid.NewString(),
		Name:        data.Name,
		Description: data.Description,
		Tags:        append(domain.Tags{}, data.Tags...),
		Rating:      0,
		Notes:       []domain.Note{},
		Discussions: []domain.Discussion{},
	}
	s.forums = append(s.forums, forum)
	if err := s.persistLocked(); err != nil {
		return domain.Forum{}, err
	}
	return forum.Clone(), nil
}

// PatchForum shallow-merges scalar fields onto the target forum.
func (s *Store) PatchForum(id domain.ForumId, patch domain.ForumPatch) (domain.Forum, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(id)
	if f == nil {
		return domain.Forum{}, errors.NewNotFound("forum", id)
	}
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.Tags != nil {
		f.Tags = append(domain.Tags{}, (*patch.Tags)...)
	}
	if patch.Rating != nil {
		f.Rating = *patch.Rating
	}
	if err := s.persistLocked(); err != nil {
		return domain.Forum{}, err
	}
	return f.Clone(), nil
}

// RateForum folds a new star rating into the running average, the way
// the community page always has: (current + stars) / 2.
func (s *Store) RateForum(id domain.ForumId, stars float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(id)
	if f == nil {
		return 0, errors.NewNotFound("forum", id)
	}
	f.Rating = (f.Rating + stars) / 2
	if err := s.persistLocked(); err != nil {
		return 0, err
	}
	return f.Rating, nil
}

// AddDiscussion prepends: discussion feeds read newest first.
func (s *Store) AddDiscussion(forumId domain.ForumId, draft domain.DiscussionDraft) (domain.Discussion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(forumId)
	if f == nil {
		return domain.Discussion{}, errors.NewNotFound("forum", forumId)
	}

	d := domain.Discussion{
		Id:          uuid.NewString(),
		Content:     draft.Content,
		Author:      draft.Author,
		AuthorId:    draft.AuthorId,
		Timestamp:   time.Now().UTC(),
		Replies:     []domain.Reply{},
		Likes:       0,
		Dislikes:    0,
		Attachments: append([]domain.Attachment{}, draft.Attachments...),
		IsPinned:    false,
		IsPoll:      draft.IsPoll,
	}
	assignAttachmentIds(d.Attachments)
	if draft.IsPoll {
		d.PollOptions = make([]domain.PollOption, len(draft.PollOptions))
		for i, text := range draft.PollOptions {
			d.PollOptions[i] = domain.PollOption{Id: uuid.NewString(), Text: text, Votes: 0, Voters: []domain.UserId{}}
		}
	}

	f.Discussions = append([]domain.Discussion{d}, f.Discussions...)
	if err := s.persistLocked(); err != nil {
		return domain.Discussion{}, err
	}
	return d.Clone(), nil
}

// AddNote appends oldest-first and forces pinned off; pinning is a
// separate, deliberate act.
func (s *Store) AddNote(forumId domain.ForumId, draft domain.NoteDraft) (domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(forumId)
	if f == nil {
		return domain.Note{}, errors.NewNotFound("forum", forumId)
	}

	n := domain.Note{
		Id:          uuid.NewString(),
		Title:       draft.Title,
		Content:     draft.Content,
		Author:      draft.Author,
		AuthorId:    draft.AuthorId,
		Timestamp:   time.Now().UTC(),
		Replies:     []domain.Reply{},
		Likes:       0,
		Dislikes:    0,
		Attachments: append([]domain.Attachment{}, draft.Attachments...),
		IsPinned:    false,
	}
	assignAttachmentIds(n.Attachments)

	f.Notes = append(f.Notes, n)
	if err := s.persistLocked(); err != nil {
		return domain.Note{}, err
	}
	return n.Clone(), nil
}

func (s *Store) AddReplyToDiscussion(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(forumId)
	if f == nil {
		return domain.Reply{}, domain.PostAuthor{}, errors.NewNotFound("forum", forumId)
	}
	d := findDiscussionLocked(f, discussionId)
	if d == nil {
		return domain.Reply{}, domain.PostAuthor{}, errors.NewNotFound("discussion", discussionId)
	}

	reply := newReply(draft)
	d.Replies = append(d.Replies, reply)
	if err := s.persistLocked(); err != nil {
		return domain.Reply{}, domain.PostAuthor{}, err
	}
	return reply.Clone(), domain.PostAuthor{Id: d.AuthorId, Name: d.Author}, nil
}

func (s *Store) AddReplyToNote(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(forumId)
	if f == nil {
		return domain.Reply{}, domain.PostAuthor{}, errors.NewNotFound("forum", forumId)
	}
	n := findNoteLocked(f, noteId)
	if n == nil {
		return domain.Reply{}, domain.PostAuthor{}, errors.NewNotFound("note", noteId)
	}

	reply := newReply(draft)
	n.Replies = append(n.Replies, reply)
	if err := s.persistLocked(); err != nil {
		return domain.Reply{}, domain.PostAuthor{}, err
	}
	return reply.Clone(), domain.PostAuthor{Id: n.AuthorId, Name: n.Author}, nil
}

// SetPinned traverses to exactly one note or discussion.
func (s *Store) SetPinned(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, pinned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(forumId)
	if f == nil {
		return errors.NewNotFound("forum", forumId)
	}

	switch kind {
	case domain.KindDiscussion:
		d := findDiscussionLocked(f, postId)
		if d == nil {
			return errors.NewNotFound("discussion", postId)
		}
		d.IsPinned = pinned
	case domain.KindNote:
		n := findNoteLocked(f, postId)
		if n == nil {
			return errors.NewNotFound("note", postId)
		}
		n.IsPinned = pinned
	default:
		return &errors.ErrorWithStatusCode{Message: fmt.Sprintf("cannot pin a %s", kind), StatusCode: 400}
	}
	return s.persistLocked()
}

// Vote bumps one counter by one. No undo, no dedupe: the same user may
// like and dislike the same item, repeatedly.
func (s *Store) Vote(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, vote domain.VoteKind) (likes, dislikes int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(forumId)
	if f == nil {
		return 0, 0, errors.NewNotFound("forum", forumId)
	}

	var likesPtr, dislikesPtr *int
	switch kind {
	case domain.KindDiscussion:
		d := findDiscussionLocked(f, postId)
		if d == nil {
			return 0, 0, errors.NewNotFound("discussion", postId)
		}
		likesPtr, dislikesPtr = &d.Likes, &d.Dislikes
	case domain.KindNote:
		n := findNoteLocked(f, postId)
		if n == nil {
			return 0, 0, errors.NewNotFound("note", postId)
		}
		likesPtr, dislikesPtr = &n.Likes, &n.Dislikes
	case domain.KindReply:
		r := findReplyLocked(f, postId)
		if r == nil {
			return 0, 0, errors.NewNotFound("reply", postId)
		}
		likesPtr, dislikesPtr = &r.Likes, &r.Dislikes
	default:
		return 0, 0, &errors.ErrorWithStatusCode{Message: fmt.Sprintf("cannot vote on a %s", kind), StatusCode: 400}
	}

	if vote == domain.VoteDislike {
		*dislikesPtr++
	} else {
		*likesPtr++
	}
	if err := s.persistLocked(); err != nil {
		return 0, 0, err
	}
	return *likesPtr, *dislikesPtr, nil
}

// VotePoll keeps at most one active vote per voter: any prior vote is
// removed before the new one lands. Re-voting the held option is a
// no-op instead of the old remove-then-re-add churn.
func (s *Store) VotePoll(forumId domain.ForumId, discussionId domain.PostId, optionId domain.PostId, voter domain.UserId) ([]domain.PollOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findForumLocked(forumId)
	if f == nil {
		return nil, errors.NewNotFound("forum", forumId)
	}
	d := findDiscussionLocked(f, discussionId)
	if d == nil {
		return nil, errors.NewNotFound("discussion", discussionId)
	}
	if !d.IsPoll {
		return nil, &errors.ErrorWithStatusCode{Message: fmt.Sprintf("discussion %q is not a poll", discussionId), StatusCode: 400}
	}

	var target *domain.PollOption
	for i := range d.PollOptions {
		if d.PollOptions[i].Id == optionId {
			target = &d.PollOptions[i]
			break
		}
	}
	if target == nil {
		return nil, errors.NewNotFound("poll option", optionId)
	}

	if target.HasVoter(voter) {
		return clonePollOptions(d.PollOptions), nil
	}

	for i := range d.PollOptions {
		o := &d.PollOptions[i]
		if !o.HasVoter(voter) {
			continue
		}
		o.Votes--
		voters := o.Voters[:0]
		for _, v := range o.Voters {
			if v != voter {
				voters = append(voters, v)
			}
		}
		o.Voters = voters
	}

	target.Votes++
	target.Voters = append(target.Voters, voter)

	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return clonePollOptions(d.PollOptions), nil
}

func (s *Store) findForumLocked(id domain.ForumId) *domain.Forum {
	for i := range s.forums {
		if s.forums[i].Id == id {
			return &s.forums[i]
		}
	}
	return nil
}

func findDiscussionLocked(f *domain.Forum, id domain.PostId) *domain.Discussion {
	for i := range f.Discussions {
		if f.Discussions[i].Id == id {
			return &f.Discussions[i]
		}
	}
	return nil
}

func findNoteLocked(f *domain.Forum, id domain.PostId) *domain.Note {
	for i := range f.Notes {
		if f.Notes[i].Id == id {
			return &f.Notes[i]
		}
	}
	return nil
}

// Replies are searched in discussions first, then notes, matching the
// original lookup order.
func findReplyLocked(f *domain.Forum, id domain.PostId) *domain.Reply {
	for i := range f.Discussions {
		for j := range f.Discussions[i].Replies {
			if f.Discussions[i].Replies[j].Id == id {
				return &f.Discussions[i].Replies[j]
			}
		}
	}
	for i := range f.Notes {
		for j := range f.Notes[i].Replies {
			if f.Notes[i].Replies[j].Id == id {
				return &f.Notes[i].Replies[j]
			}
		}
	}
	return nil
}

func newReply(draft domain.ReplyDraft) domain.Reply {
	r := domain.Reply{
		Id:          uuid.NewString(),
		Content:     draft.Content,
		Author:      draft.Author,
		AuthorId:    draft.AuthorId,
		Timestamp:   time.Now().UTC(),
		Likes:       0,
		Dislikes:    0,
		Attachments: append([]domain.Attachment{}, draft.Attachments...),
	}
	assignAttachmentIds(r.Attachments)
	return r
}

func assignAttachmentIds(attachments []domain.Attachment) {
	for i := range attachments {
		if attachments[i].Id == "" {
			attachments[i].Id = uuid.NewString()
		}
	}
}

func clonePollOptions(options []domain.PollOption) []domain.PollOption {
	out := make([]domain.PollOption, len(options))
	for i, o := range options {
		out[i] = o.Clone()
	}
	return out
}
