package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-dev/suraksha/shared/api"
	"github.com/suraksha-dev/suraksha/shared/domain"
	mw "github.com/suraksha-dev/suraksha/shared/middleware"
)

// requireUser pulls the authenticated user from the request context. It
// writes the 401 itself so callers can just return on nil.
func requireUser(w http.ResponseWriter, r *http.Request) *domain.User {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return nil
	}
	return user
}

// postKindParam maps the plural path segment to the post kind; "" means
// the segment was not a known kind.
func postKindParam(r *http.Request) domain.PostKind {
	switch chi.URLParam(r, "kind") {
	case "notes":
		return domain.KindNote
	case "discussions":
		return domain.KindDiscussion
	case "replies":
		return domain.KindReply
	}
	return ""
}

// View builders: raw content plus rendered, sanitized HTML.

func (h *Handler) replyViews(replies []domain.Reply) []api.ReplyView {
	out := make([]api.ReplyView, len(replies))
	for i, r := range replies {
		out[i] = api.ReplyView{Reply: r, ContentHTML: h.renderer.HTML(r.Content)}
	}
	return out
}

func (h *Handler) noteView(n domain.Note) api.NoteView {
	return api.NoteView{
		Note:        n,
		ContentHTML: h.renderer.HTML(n.Content),
		Replies:     h.replyViews(n.Replies),
	}
}

func (h *Handler) discussionView(d domain.Discussion) api.DiscussionView {
	return api.DiscussionView{
		Discussion:  d,
		ContentHTML: h.renderer.HTML(d.Content),
		Replies:     h.replyViews(d.Replies),
	}
}

func (h *Handler) forumResponse(f domain.Forum) api.ForumResponse {
	resp := api.ForumResponse{
		Forum:       f,
		Notes:       make([]api.NoteView, len(f.Notes)),
		Discussions: make([]api.DiscussionView, len(f.Discussions)),
	}
	for i, n := range f.Notes {
		resp.Notes[i] = h.noteView(n)
	}
	for i, d := range f.Discussions {
		resp.Discussions[i] = h.discussionView(d)
	}
	return resp
}
