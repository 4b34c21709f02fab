package handler

import (
	"net/http"

	"github.com/goodways/goodways/shared/api"
	"github.com/goodways/goodways/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateCommentRequest
	if err := h.decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Create(r.Context(), postId, body.Draft())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CommentResponse{Comment: *comment})
}

func (h *Handler) VoteComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.VoteRequest
	if err := h.decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Vote(r.Context(), id, body.Direction)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.CommentResponse{Comment: *comment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
