package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/service"
	"github.com/MKhiriev/go-blog-engine/internal/utils"
	"github.com/MKhiriev/go-blog-engine/models"
)

// adminSessionCookie carries the opaque admin session identifier between the
// browser and the session registry.
const adminSessionCookie = "admin_session"

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	sessionID, err := h.services.AdminService.Login(ctx, request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongAdminCredentials):
			log.Err(err).Msg("wrong admin credentials")
			utils.WriteJSON(w, models.FlashResponse{Message: "wrong username or password", Category: "error"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     adminSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, models.FlashResponse{Message: "admin login successful", Category: "success"}, http.StatusOK)
}

func (h *Handler) adminLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(adminSessionCookie); err == nil {
		h.services.AdminService.Logout(ctx, cookie.Value)
	}

	// expire the cookie regardless of whether the session was known
	http.SetCookie(w, &http.Cookie{
		Name:     adminSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, models.FlashResponse{Message: "admin logged out", Category: "success"}, http.StatusOK)
}

func (h *Handler) adminListPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.AdminService.ListAllPosts(ctx)
	if err != nil {
		log.Err(err).Msg("listing all posts failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PostListResponse{Posts: posts, Length: len(posts)}, http.StatusOK)
}

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AdminService.ListAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing all users failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserListResponse{Users: users, Length: len(users)}, http.StatusOK)
}
