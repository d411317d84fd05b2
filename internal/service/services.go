package service

import (
	"github.com/MKhiriev/go-blog-engine/internal/config"
	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/session"
	"github.com/MKhiriev/go-blog-engine/internal/store"
)

type Services struct {
	PostService  PostService
	AuthService  AuthService
	AdminService AdminService
}

func NewServices(storages store.Storages, sessions *session.Registry, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		PostService:  NewPostService(storages.PostRepository, cfg.App, logger),
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, cfg.Storage.Files, logger),
		AdminService: NewAdminService(storages, sessions, cfg.Admin, logger),
	}
}
