package gallery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pixstash/pixstash/internal/models"
)

// ListParams selects one page of the image collection. An empty Category
// means no filter.
type ListParams struct {
	Category string
	Page     int
	Limit    int
}

// ListImages fetches one page of images, optionally filtered by category.
func (s *Service) ListImages(ctx context.Context, params ListParams) ([]models.Image, models.Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("limit", strconv.Itoa(params.Limit))
	if params.Category != "" {
		query.Set("category", params.Category)
	}

	var resp models.ImageList
	if err := s.client.Get(ctx, "/images", query, &resp); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list images: %w", err)
	}

	return resp.Data, resp.Pagination, nil
}

// UploadInput describes a new image. FilePath points at the local file to
// send.
type UploadInput struct {
	Title    string
	Category string
	FilePath string
}

// Validate checks the input without touching the network.
func (in UploadInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrCategoryRequired
	}
	if in.FilePath == "" {
		return ErrFileRequired
	}

	info, err := os.Stat(in.FilePath)
	if err != nil {
		return fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.Size() > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// Upload validates the input and creates a new image record via the
// multipart upload endpoint.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*models.Image, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(in.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("title", strings.TrimSpace(in.Title)); err != nil {
		return nil, fmt.Errorf("failed to encode upload form: %w", err)
	}
	if err := writer.WriteField("category", strings.TrimSpace(in.Category)); err != nil {
		return nil, fmt.Errorf("failed to encode upload form: %w", err)
	}

	part, err := writer.CreateFormFile("image", filepath.Base(in.FilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to encode upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	var created models.Image
	if err := s.client.PostMultipart(ctx, "/images/upload", &body, writer.FormDataContentType(), &created); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	return &created, nil
}

// DeleteImage removes an image by id.
func (s *Service) DeleteImage(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/images/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// DownloadImage fetches the stored bytes of an image from its storage URL.
func (s *Service) DownloadImage(ctx context.Context, img models.Image) ([]byte, error) {
	if img.ImageURL == "" {
		return nil, fmt.Errorf("image %s has no URL", img.ID)
	}

	data, err := s.client.Download(ctx, img.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image %s: %w", img.ID, err)
	}
	return data, nil
}
