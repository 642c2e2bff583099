package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-dev/suraksha/internal/aiclient"
	"github.com/suraksha-dev/suraksha/internal/render"
	"github.com/suraksha-dev/suraksha/internal/service"
	"github.com/suraksha-dev/suraksha/shared/config"
	"github.com/suraksha-dev/suraksha/shared/domain"
	mw "github.com/suraksha-dev/suraksha/shared/middleware"
)

// Mock services with overridable function fields.

type MockAuthService struct {
	MockSignup func(creds domain.Credentials) (domain.User, string, error)
	MockLogin  func(creds domain.Credentials) (domain.User, string, error)
}

func (m *MockAuthService) Signup(creds domain.Credentials) (domain.User, string, error) {
	if m.MockSignup != nil {
		return m.MockSignup(creds)
	}
	return domain.User{}, "", nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (domain.User, string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return domain.User{}, "", nil
}

type MockForumService struct {
	MockCreate func(data domain.ForumCreationData) (domain.Forum, error)
	MockAll    func() []domain.Forum
	MockGet    func(id domain.ForumId) (domain.Forum, error)
	MockPatch  func(id domain.ForumId, patch domain.ForumPatch) (domain.Forum, error)
	MockRate   func(id domain.ForumId, stars float64) (float64, error)
}

func (m *MockForumService) Create(data domain.ForumCreationData) (domain.Forum, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Forum{}, nil
}

func (m *MockForumService) All() []domain.Forum {
	if m.MockAll != nil {
		return m.MockAll()
	}
	return nil
}

func (m *MockForumService) Get(id domain.ForumId) (domain.Forum, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Forum{}, nil
}

func (m *MockForumService) Patch(id domain.ForumId, patch domain.ForumPatch) (domain.Forum, error) {
	if m.MockPatch != nil {
		return m.MockPatch(id, patch)
	}
	return domain.Forum{}, nil
}

func (m *MockForumService) Rate(id domain.ForumId, stars float64) (float64, error) {
	if m.MockRate != nil {
		return m.MockRate(id, stars)
	}
	return 0, nil
}

type MockPostService struct {
	MockCreateNote        func(forumId domain.ForumId, draft domain.NoteDraft) (domain.Note, error)
	MockCreateDiscussion  func(forumId domain.ForumId, draft domain.DiscussionDraft) (domain.Discussion, error)
	MockReplyToNote       func(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, error)
	MockReplyToDiscussion func(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, error)
	MockSetPinned         func(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, pinned bool) error
}

func (m *MockPostService) CreateNote(forumId domain.ForumId, draft domain.NoteDraft) (domain.Note, error) {
	if m.MockCreateNote != nil {
		return m.MockCreateNote(forumId, draft)
	}
	return domain.Note{}, nil
}

func (m *MockPostService) CreateDiscussion(forumId domain.ForumId, draft domain.DiscussionDraft) (domain.Discussion, error) {
	if m.MockCreateDiscussion != nil {
		return m.MockCreateDiscussion(forumId, draft)
	}
	return domain.Discussion{}, nil
}

func (m *MockPostService) ReplyToNote(forumId domain.ForumId, noteId domain.PostId, draft domain.ReplyDraft) (domain.Reply, error) {
	if m.MockReplyToNote != nil {
		return m.MockReplyToNote(forumId, noteId, draft)
	}
	return domain.Reply{}, nil
}

func (m *MockPostService) ReplyToDiscussion(forumId domain.ForumId, discussionId domain.PostId, draft domain.ReplyDraft) (domain.Reply, error) {
	if m.MockReplyToDiscussion != nil {
		return m.MockReplyToDiscussion(forumId, discussionId, draft)
	}
	return domain.Reply{}, nil
}

func (m *MockPostService) SetPinned(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, pinned bool) error {
	if m.MockSetPinned != nil {
		return m.MockSetPinned(forumId, kind, postId, pinned)
	}
	return nil
}

type MockVoteService struct {
	MockVote     func(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, vote domain.VoteKind) (int, int, error)
	MockVotePoll func(forumId domain.ForumId, discussionId, optionId domain.PostId, voter domain.UserId) ([]domain.PollOption, error)
}

func (m *MockVoteService) Vote(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, vote domain.VoteKind) (int, int, error) {
	if m.MockVote != nil {
		return m.MockVote(forumId, kind, postId, vote)
	}
	return 0, 0, nil
}

func (m *MockVoteService) VotePoll(forumId domain.ForumId, discussionId, optionId domain.PostId, voter domain.UserId) ([]domain.PollOption, error) {
	if m.MockVotePoll != nil {
		return m.MockVotePoll(forumId, discussionId, optionId, voter)
	}
	return nil, nil
}

type MockAssistantService struct {
	MockChat    func(ctx context.Context, messages []aiclient.Message) (string, error)
	MockSchemes func(ctx context.Context, query string) (string, error)
}

func (m *MockAssistantService) Chat(ctx context.Context, messages []aiclient.Message) (string, error) {
	if m.MockChat != nil {
		return m.MockChat(ctx, messages)
	}
	return "", nil
}

func (m *MockAssistantService) SearchSchemes(ctx context.Context, query string) (string, error) {
	if m.MockSchemes != nil {
		return m.MockSchemes(ctx, query)
	}
	return "", nil
}

func newTestHandler() *Handler {
	return &Handler{
		auth:          &MockAuthService{},
		forum:         &MockForumService{},
		post:          &MockPostService{},
		vote:          &MockVoteService{},
		notifications: service.NewNotifications(),
		assistant:     &MockAssistantService{},
		renderer:      render.New(),
		cfg:           &config.Config{},
	}
}

func newTestRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/v1/auth/signup", h.Signup)
	r.Post("/v1/auth/login", h.Login)
	r.Post("/v1/auth/logout", h.Logout)
	r.Get("/v1/auth/me", h.Me)
	r.Post("/v1/forums", h.CreateForum)
	r.Get("/v1/forums", h.GetForums)
	r.Get("/v1/forums/{forum}", h.GetForum)
	r.Patch("/v1/forums/{forum}", h.PatchForum)
	r.Put("/v1/forums/{forum}/rating", h.RateForum)
	r.Post("/v1/forums/{forum}/notes", h.CreateNote)
	r.Post("/v1/forums/{forum}/discussions", h.CreateDiscussion)
	r.Post("/v1/forums/{forum}/notes/{note}/replies", h.CreateNoteReply)
	r.Post("/v1/forums/{forum}/discussions/{discussion}/replies", h.CreateDiscussionReply)
	r.Post("/v1/forums/{forum}/{kind}/{post}/votes", h.Vote)
	r.Put("/v1/forums/{forum}/{kind}/{post}/pin", h.PinPost)
	r.Post("/v1/forums/{forum}/discussions/{discussion}/poll/{option}", h.VotePoll)
	r.Get("/v1/notifications", h.GetNotifications)
	r.Post("/v1/notifications/read", h.MarkAllNotificationsRead)
	r.Post("/v1/notifications/{notification}/read", h.MarkNotificationRead)
	r.Delete("/v1/notifications", h.ClearNotifications)
	r.Post("/v1/assistant/chat", h.AssistantChat)
	r.Post("/v1/assistant/schemes", h.AssistantSchemes)
	return r
}

// asUser attaches an authenticated user, the same way the auth
// middleware would.
func asUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
}

var testUser = &domain.User{Id: "u1", Name: "Asha"}

func serve(r chi.Router, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestWriteJSONSetsContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, map[string]string{"ok": "yes"})

	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}
}
