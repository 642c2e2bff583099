package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-dev/suraksha/shared/api"
	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/utils"
)

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	kind := postKindParam(r)
	if kind == "" {
		http.Error(w, "Unknown post kind", http.StatusBadRequest)
		return
	}

	var body api.VoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	likes, dislikes, err := h.vote.Vote(chi.URLParam(r, "forum"), kind, chi.URLParam(r, "post"), domain.VoteKind(body.Vote))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.VoteResponse{Likes: likes, Dislikes: dislikes})
}

func (h *Handler) VotePoll(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	options, err := h.vote.VotePoll(
		chi.URLParam(r, "forum"),
		chi.URLParam(r, "discussion"),
		chi.URLParam(r, "option"),
		user.Id,
	)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// Voter lists stay server-side; clients only see the tallies.
	resp := api.PollResponse{Options: make([]api.PollOptionResponse, len(options))}
	for i, o := range options {
		resp.Options[i] = api.PollOptionResponse{Id: o.Id, Text: o.Text, Votes: o.Votes}
	}
	writeJSON(w, resp)
}
