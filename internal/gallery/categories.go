package gallery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pixstash/pixstash/internal/models"
)

// ListCategories fetches every category. The endpoint is not paginated.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	var resp models.CategoryList
	if err := s.client.Get(ctx, "/categories", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return resp.Data, nil
}

// CreateCategory creates a category with the given name.
func (s *Service) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var created models.Category
	if err := s.client.Post(ctx, "/categories", map[string]string{"name": name}, &created); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &created, nil
}

// UpdateCategory renames an existing category.
func (s *Service) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var updated models.Category
	if err := s.client.Put(ctx, "/categories/"+url.PathEscape(id), map[string]string{"name": name}, &updated); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &updated, nil
}

// DeleteCategory removes a category by id.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/categories/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
