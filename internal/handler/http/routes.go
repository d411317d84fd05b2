package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/posts", h.addPost)
		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/{slug}", h.getPost)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/admin/login", h.adminLogin)
	})

	// routes behind JWT user authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/user/avatar", h.getAvatar)
		r.Post("/api/user/avatar", h.uploadAvatar)
	})

	// routes behind the admin session gate
	router.Group(func(r chi.Router) {
		r.Use(h.adminOnly)
		r.Post("/api/admin/logout", h.adminLogout)
		r.Get("/api/admin/posts", h.adminListPosts)
		r.Get("/api/admin/users", h.adminListUsers)
	})

	return router
}
