package store

import "github.com/MKhiriev/go-blog-engine/internal/logger"

// Storages aggregates every repository of the application behind one handle
// passed to the service layer.
type Storages struct {
	PostRepository PostRepository
	UserRepository UserRepository
}

// NewStorages constructs all repositories over the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		PostRepository: NewPostRepository(db, logger),
		UserRepository: NewUserRepository(db, logger),
	}
}
