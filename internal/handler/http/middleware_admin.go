package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/utils"
	"github.com/MKhiriev/go-blog-engine/models"
)

// adminOnly gates the admin panel routes behind the session registry.
//
// The incoming request must carry the admin session cookie and the referenced
// session must still be live; otherwise the request is rejected with HTTP 401
// and a hint pointing at the admin login endpoint.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(adminSessionCookie)
		if err != nil || !h.services.AdminService.IsLoggedIn(r.Context(), cookie.Value) {
			log.Warn().Str("uri", r.RequestURI).Msg("admin route requested without a live session")
			w.Header().Set("Location", "/api/admin/login")
			utils.WriteJSON(w, models.FlashResponse{Message: "admin login required", Category: "error"}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
