// Package gallery exposes the gallery service's operations as typed calls.
// Client-side validation lives here: an invalid mutation never reaches the
// network.
package gallery

import (
	"errors"

	"github.com/pixstash/pixstash/internal/api"
)

// MaxUploadSize is the largest image file accepted for upload.
const MaxUploadSize = 10 * 1024 * 1024

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrNameRequired     = errors.New("category name is required")
	ErrFileRequired     = errors.New("image file is required")
	ErrFileTooLarge     = errors.New("image file exceeds the 10 MiB upload limit")
)

// Service wraps the API client with the gallery's typed operations.
type Service struct {
	client *api.Client
}

// NewService creates a gallery service over the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}
