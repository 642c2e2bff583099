package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-dev/suraksha/shared/api"
	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/utils"
)

func (h *Handler) CreateForum(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	var body api.CreateForumRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	forum, err := h.forum.Create(domain.ForumCreationData{
		Name:        body.Name,
		Description: body.Description,
		Tags:        domain.Tags(body.Tags),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, h.forumResponse(forum))
}

func (h *Handler) GetForums(w http.ResponseWriter, r *http.Request) {
	forums := h.forum.All()

	metadata := make([]api.ForumMetadataResponse, len(forums))
	for i, f := range forums {
		metadata[i] = api.ForumMetadataResponse{
			Id:          f.Id,
			Name:        f.Name,
			Description: f.Description,
			Tags:        f.Tags,
			Rating:      f.Rating,
			Notes:       len(f.Notes),
			Discussions: len(f.Discussions),
		}
	}
	writeJSON(w, api.ForumListResponse{Forums: metadata})
}

func (h *Handler) GetForum(w http.ResponseWriter, r *http.Request) {
	forum, err := h.forum.Get(chi.URLParam(r, "forum"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, h.forumResponse(forum))
}

func (h *Handler) PatchForum(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	var body api.PatchForumRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	patch := domain.ForumPatch{
		Name:        body.Name,
		Description: body.Description,
		Rating:      body.Rating,
	}
	if body.Tags != nil {
		tags := domain.Tags(*body.Tags)
		patch.Tags = &tags
	}

	forum, err := h.forum.Patch(chi.URLParam(r, "forum"), patch)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, h.forumResponse(forum))
}

func (h *Handler) RateForum(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	var body api.RateForumRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	rating, err := h.forum.Rate(chi.URLParam(r, "forum"), body.Stars)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.RatingResponse{Rating: rating})
}
