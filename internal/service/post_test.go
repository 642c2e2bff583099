package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraksha-dev/suraksha/shared/domain"
)

// MockPostStorage mocks the PostStorage interface.
type MockPostStorage struct {
	addNoteFunc              func(forumId domain.ForumId, draft domain.NoteDraft) (domain.Note, error)
	addDiscussionFunc        func(forumId domain.ForumId, draft domain.DiscussionDraft) (domain.Discussion, error)
	addReplyToNoteFunc       func(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error)
	addReplyToDiscussionFunc func(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error)
	setPinnedFunc            func(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, pinned bool) error
}

func (m *MockPostStorage) AddNote(forumId domain.ForumId, draft domain.NoteDraft) (domain.Note, error) {
	if m.addNoteFunc != nil {
		return m.addNoteFunc(forumId, draft)
	}
	return domain.Note{}, nil
}

func (m *MockPostStorage) AddDiscussion(forumId domain.ForumId, draft domain.DiscussionDraft) (domain.Discussion, error) {
	if m.addDiscussionFunc != nil {
		return m.addDiscussionFunc(forumId, draft)
	}
	return domain.Discussion{}, nil
}

func (m *MockPostStorage) AddReplyToNote(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error) {
	if m.addReplyToNoteFunc != nil {
		return m.addReplyToNoteFunc(forumId, noteId, draft)
	}
	return domain.Reply{}, domain.PostAuthor{}, nil
}

func (m *MockPostStorage) AddReplyToDiscussion(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error) {
	if m.addReplyToDiscussionFunc != nil {
		return m.addReplyToDiscussionFunc(forumId, discussionId, draft)
	}
	return domain.Reply{}, domain.PostAuthor{}, nil
}

func (m *MockPostStorage) SetPinned(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, pinned bool) error {
	if m.setPinnedFunc != nil {
		return m.setPinnedFunc(forumId, kind, postId, pinned)
	}
	return nil
}

// MockPostValidator mocks the PostValidator interface.
type MockPostValidator struct {
	contentFunc     func(content string) error
	titleFunc       func(title string) error
	pollOptionsFunc func(options []string) error
}

func (m *MockPostValidator) Content(content string) error {
	if m.contentFunc != nil {
		return m.contentFunc(content)
	}
	return nil
}

func (m *MockPostValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockPostValidator) PollOptions(options []string) error {
	if m.pollOptionsFunc != nil {
		return m.pollOptionsFunc(options)
	}
	return nil
}

// MockNotifications records Notify calls.
type MockNotifications struct {
	notified []domain.Notification
}

func (m *MockNotifications) Notify(userId domain.UserId, message string, ref domain.PostRef) {
	m.notified = append(m.notified, domain.Notification{UserId: userId, Message: message, Ref: ref})
}
func (m *MockNotifications) For(userId domain.UserId) []domain.Notification { return nil }
func (m *MockNotifications) MarkRead(userId domain.UserId, id string) error { return nil }
func (m *MockNotifications) MarkAllRead(userId domain.UserId)               {}
func (m *MockNotifications) Clear(userId domain.UserId)                     {}

func TestCreateNoteValidation(t *testing.T) {
	storage := &MockPostStorage{}
	validator := &MockPostValidator{
		contentFunc: func(content string) error {
			if content == "" {
				return errors.New("too short")
			}
			return nil
		},
	}
	s := NewPost(storage, validator, &MockNotifications{})

	_, err := s.CreateNote("f1", domain.NoteDraft{Title: "t", Content: ""})
	assert.Error(t, err)

	_, err = s.CreateNote("f1", domain.NoteDraft{Title: "t", Content: "ok"})
	assert.NoError(t, err)
}

func TestCreateDiscussionPollValidation(t *testing.T) {
	validateCalls := 0
	validator := &MockPostValidator{
		pollOptionsFunc: func(options []string) error {
			validateCalls++
			if len(options) < 2 {
				return errors.New("need two options")
			}
			return nil
		},
	}
	s := NewPost(&MockPostStorage{}, validator, &MockNotifications{})

	_, err := s.CreateDiscussion("f1", domain.DiscussionDraft{Content: "c", IsPoll: true, PollOptions: []string{"only one"}})
	assert.Error(t, err)

	// Non-poll drafts skip poll option validation entirely.
	_, err = s.CreateDiscussion("f1", domain.DiscussionDraft{Content: "c"})
	assert.NoError(t, err)
	assert.Equal(t, 1, validateCalls)
}

func TestReplyNotifiesParentAuthor(t *testing.T) {
	storage := &MockPostStorage{
		addReplyToDiscussionFunc: func(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error) {
			return domain.Reply{Id: "r1"}, domain.PostAuthor{Id: "author-1", Name: "Asha"}, nil
		},
	}
	notifications := &MockNotifications{}
	s := NewPost(storage, &MockPostValidator{}, notifications)

	_, err := s.ReplyToDiscussion("f1", "d1", domain.ReplyDraft{Content: "me too", Author: "Bina", AuthorId: "author-2"})
	require.NoError(t, err)

	require.Len(t, notifications.notified, 1)
	n := notifications.notified[0]
	assert.Equal(t, "author-1", n.UserId)
	assert.Equal(t, "Bina replied to your discussion", n.Message)
	assert.Equal(t, domain.PostRef{Kind: domain.KindDiscussion, Id: "d1"}, n.Ref)
}

func TestSelfReplyStaysSilent(t *testing.T) {
	storage := &MockPostStorage{
		addReplyToNoteFunc: func(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error) {
			return domain.Reply{Id: "r1"}, domain.PostAuthor{Id: draft.AuthorId, Name: draft.Author}, nil
		},
	}
	notifications := &MockNotifications{}
	s := NewPost(storage, &MockPostValidator{}, notifications)

	_, err := s.ReplyToNote("f1", "n1", domain.ReplyDraft{Content: "follow-up", Author: "Asha", AuthorId: "author-1"})
	require.NoError(t, err)
	assert.Empty(t, notifications.notified)
}

func TestReplyStorageErrorSkipsNotification(t *testing.T) {
	storage := &MockPostStorage{
		addReplyToNoteFunc: func(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, domain.PostAuthor, error) {
			return domain.Reply{}, domain.PostAuthor{}, errors.New("note not found")
		},
	}
	notifications := &MockNotifications{}
	s := NewPost(storage, &MockPostValidator{}, notifications)

	_, err := s.ReplyToNote("f1", "missing", domain.ReplyDraft{Content: "x", AuthorId: "author-2"})
	assert.Error(t, err)
	assert.Empty(t, notifications.notified)
}
