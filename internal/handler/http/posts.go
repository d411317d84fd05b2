package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/service"
	"github.com/MKhiriev/go-blog-engine/internal/store"
	"github.com/MKhiriev/go-blog-engine/internal/utils"
	"github.com/MKhiriev/go-blog-engine/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AddPostRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.PostService.AddPost(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid post data provided")
			utils.WriteJSON(w, models.FlashResponse{Message: "invalid post data provided", Category: "error"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrSlugAlreadyExists):
			log.Err(err).Str("url", request.URL).Msg("url is already taken")
			utils.WriteJSON(w, models.FlashResponse{Message: "this url is already taken", Category: "error"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.FlashResponse{Message: "post was successfully added", Category: "success"}, http.StatusCreated)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.services.PostService.ListPostsSummary(r.Context())

	utils.WriteJSON(w, models.PostListResponse{Posts: posts, Length: len(posts)}, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	post, err := h.services.PostService.GetPost(ctx, slug)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Str("url", slug).Msg("post not found")
			http.Error(w, "post not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid slug provided")
			http.Error(w, "invalid slug provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, post, http.StatusOK)
}
