package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/service"
	"github.com/MKhiriev/go-blog-engine/internal/store"
	"github.com/MKhiriev/go-blog-engine/internal/utils"
	"github.com/MKhiriev/go-blog-engine/models"
)

// maxAvatarSize caps avatar uploads at 1 MiB, request envelope included.
const maxAvatarSize = 1 << 20

func (h *Handler) getAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	avatar, err := h.services.AuthService.GetAvatar(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("userID", userID).Msg("user not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during avatar lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(avatar)
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)

	file, header, err := r.FormFile("avatar")
	if err != nil {
		log.Err(err).Msg("avatar file is missing or too large")
		utils.WriteJSON(w, models.FlashResponse{Message: "avatar file is missing or too large", Category: "error"}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading avatar file failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.services.AuthService.UpdateAvatar(ctx, data, header.Filename, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyAvatar):
			log.Err(err).Msg("empty avatar payload")
			utils.WriteJSON(w, models.FlashResponse{Message: "avatar file is empty", Category: "error"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnsupportedImageType):
			log.Err(err).Str("fileName", header.Filename).Msg("unsupported avatar image type")
			utils.WriteJSON(w, models.FlashResponse{Message: "only png images are supported", Category: "error"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("userID", userID).Msg("user not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during avatar update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.FlashResponse{Message: "avatar was successfully updated", Category: "success"}, http.StatusOK)
}
