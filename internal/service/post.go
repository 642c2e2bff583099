package service

import (
	"fmt"

	"github.com/suraksha-dev/suraksha/shared/domain"
)

// to mock service in tests
type PostService interface {
	CreateNote(forumId domain.ForumId, draft domain.NoteDraft) (domain.Note, error)
	CreateDiscussion(forumId domain.ForumId, draft domain.DiscussionDraft) (domain.Discussion, error)
	ReplyToNote(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, error)
	ReplyToDiscussion(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, error)
	SetPinned(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, pinned bool) error
}

type Post struct {
	storage       PostStorage
	validator     PostValidator
	notifications NotificationService
}

type PostStorage interface {
	AddNote(forumId domain.ForumId, draft domain.NoteDraft) (domain.Note, error)
	AddDiscussion(forumId domain.ForumId, draft domain.DiscussionDraft) (domain.Discussion, error)
	AddReplyToNote(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error)
	AddReplyToDiscussion(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error)
	SetPinned(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, pinned bool) error
}

type PostValidator interface {
	Content(content string) error
	Title(title string) error
	PollOptions(options []string) error
}

func NewPost(storage PostStorage, validator PostValidator, notifications NotificationService) PostService {
	return &Post{storage, validator, notifications}
}

func (p *Post) CreateNote(forumId domain.ForumId, draft domain.NoteDraft) (domain.Note, error) {
	if err := p.validator.Title(draft.Title); err != nil {
		return domain.Note{}, err
	}
	if err := p.validator.Content(draft.Content); err != nil {
		return domain.Note{}, err
	}
	return p.storage.AddNote(forumId, draft)
}

func (p *Post) CreateDiscussion(forumId domain.ForumId, draft domain.DiscussionDraft) (domain.Discussion, error) {
	if err := p.validator.Content(draft.Content); err != nil {
		return domain.Discussion{}, err
	}
	if draft.IsPoll {
		if err := p.validator.PollOptions(draft.PollOptions); err != nil {
			return domain.Discussion{}, err
		}
	}
	return p.storage.AddDiscussion(forumId, draft)
}

func (p *Post) ReplyToNote(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, error) {
	if err := p.validator.Content(draft.Content); err != nil {
		return domain.Reply{}, err
	}
	reply, parentAuthor, err := p.storage.AddReplyToNote(forumId, noteId, draft)
	if err != nil {
		return domain.Reply{}, err
	}
	p.notifyReply(parentAuthor, draft, domain.PostRef{Kind: domain.KindNote, Id: noteId})
	return reply, nil
}

func (p *Post) ReplyToDiscussion(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, error) {
	if err := p.validator.Content(draft.Content); err != nil {
		return domain.Reply{}, err
	}
	reply, parentAuthor, err := p.storage.AddReplyToDiscussion(forumId, discussionId, draft)
	if err != nil {
		return domain.Reply{}, err
	}
	p.notifyReply(parentAuthor, draft, domain.PostRef{Kind: domain.KindDiscussion, Id: discussionId})
	return reply, nil
}

func (p *Post) SetPinned(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, pinned bool) error {
	return p.storage.SetPinned(forumId, kind, postId, pinned)
}

// notifyReply tells the parent post's author about a new reply. Replying
// to your own post stays silent.
func (p *Post) notifyReply(parent domain.PostAuthor, draft domain.ReplyDraft, ref domain.PostRef) {
	if parent.Id == "" || parent.Id == draft.AuthorId {
		return
	}
	message := fmt.Sprintf("%s replied to your %s", draft.Author, ref.Kind)
	p.notifications.Notify(parent.Id, message, ref)
}
