// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/webnest/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for project storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	// CreateProject persists a new project.
	// The project.ID and project.CreatedAt fields are populated by the store
	// when empty.
	CreateProject(ctx context.Context, project *models.Project) error

	// GetProject retrieves a project by its ID.
	// Returns an error wrapping ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, projectID string) (*models.Project, error)

	// ListProjects returns the most recently created projects first, at most
	// limit of them.
	ListProjects(ctx context.Context, limit int) ([]*models.Project, error)

	// Close releases any resources held by the store.
	Close() error
}
