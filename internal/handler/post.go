package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-dev/suraksha/shared/api"
	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/utils"
)

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var body api.CreateNoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	note, err := h.post.CreateNote(chi.URLParam(r, "forum"), domain.NoteDraft{
		Title:       body.Title,
		Content:     body.Content,
		Author:      user.Name,
		AuthorId:    user.Id,
		Attachments: body.DomainAttachments(),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.CreateNoteResponse{Note: h.noteView(note)})
}

func (h *Handler) CreateDiscussion(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var body api.CreateDiscussionRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	discussion, err := h.post.CreateDiscussion(chi.URLParam(r, "forum"), domain.DiscussionDraft{
		Content:     body.Content,
		Author:      user.Name,
		AuthorId:    user.Id,
		Attachments: body.DomainAttachments(),
		IsPoll:      body.IsPoll,
		PollOptions: body.PollOptions,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.CreateDiscussionResponse{Discussion: h.discussionView(discussion)})
}

func (h *Handler) CreateNoteReply(w http.ResponseWriter, r *http.Request) {
	h.createReply(w, r, domain.KindNote)
}

func (h *Handler) CreateDiscussionReply(w http.ResponseWriter, r *http.Request) {
	h.createReply(w, r, domain.KindDiscussion)
}

func (h *Handler) createReply(w http.ResponseWriter, r *http.Request, parent domain.PostKind) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	draft := domain.ReplyDraft{
		Content:     body.Content,
		Author:      user.Name,
		AuthorId:    user.Id,
		Attachments: body.DomainAttachments(),
	}

	forumId := chi.URLParam(r, "forum")
	var reply domain.Reply
	var err error
	if parent == domain.KindNote {
		reply, err = h.post.ReplyToNote(forumId, chi.URLParam(r, "note"), draft)
	} else {
		reply, err = h.post.ReplyToDiscussion(forumId, chi.URLParam(r, "discussion"), draft)
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.CreateReplyResponse{Reply: api.ReplyView{Reply: reply, ContentHTML: h.renderer.HTML(reply.Content)}})
}

func (h *Handler) PinPost(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	kind := postKindParam(r)
	if kind == "" || kind == domain.KindReply {
		http.Error(w, "Only notes and discussions can be pinned", http.StatusBadRequest)
		return
	}

	var body api.PinRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err := h.post.SetPinned(chi.URLParam(r, "forum"), kind, chi.URLParam(r, "post"), *body.Pinned)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
