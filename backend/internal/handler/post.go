package handler

import (
	"net/http"

	"github.com/goodways/goodways/shared/api"
	"github.com/goodways/goodways/shared/domain"
	"github.com/goodways/goodways/shared/utils"
)

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	posts, err := h.post.List(r.Context(), domain.FeedQuery{
		Sort:   q.Get("sort"),
		Search: q.Get("search"),
		Mood:   q.Get("mood"),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.FeedResponse{Posts: posts, Meta: api.FeedMeta{Count: len(posts)}})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePostRequest
	if err := h.decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Create(r.Context(), body.Draft())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.PostResponse{Post: *post})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	detail, err := h.post.Get(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.PostDetailResponse{Post: detail.Post, Comments: detail.Comments})
}

func (h *Handler) VotePost(w http.ResponseWriter, r *http.Request) {
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

	post, err := h.post.Vote(r.Context(), id, body.Direction)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.PostResponse{Post: *post})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.post.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
