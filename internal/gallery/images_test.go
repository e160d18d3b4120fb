package gallery

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixstash/pixstash/internal/api"
)

type staticSession struct {
	token string
}

func (s *staticSession) Token() string { return s.token }
func (s *staticSession) Invalidate()   { s.token = "" }

func newTestService(handler http.Handler) (*Service, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := api.NewClient(server.URL, &staticSession{token: "tok"})
	return NewService(client), server
}

func writeTempFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, bytes.Repeat([]byte{0xAB}, size), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestUploadValidationBlocksRequest(t *testing.T) {
	requests := 0
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	smallFile := writeTempFile(t, "ok.jpg", 128)
	bigFile := writeTempFile(t, "big.jpg", MaxUploadSize+1)

	tests := []struct {
		name     string
		input    UploadInput
		expected error
	}{
		{
			name:     "empty title",
			input:    UploadInput{Title: "", Category: "cat-1", FilePath: smallFile},
			expected: ErrTitleRequired,
		},
		{
			name:     "whitespace title",
			input:    UploadInput{Title: "   ", Category: "cat-1", FilePath: smallFile},
			expected: ErrTitleRequired,
		},
		{
			name:     "missing category",
			input:    UploadInput{Title: "Sunrise", Category: " ", FilePath: smallFile},
			expected: ErrCategoryRequired,
		},
		{
			name:     "missing file",
			input:    UploadInput{Title: "Sunrise", Category: "cat-1", FilePath: ""},
			expected: ErrFileRequired,
		},
		{
			name:     "oversized file",
			input:    UploadInput{Title: "Sunrise", Category: "cat-1", FilePath: bigFile},
			expected: ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}

	if requests != 0 {
		t.Errorf("Expected no requests for invalid input, got %d", requests)
	}
}

func TestUploadMaxSizeBoundary(t *testing.T) {
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"img1"}`))
	}))
	defer server.Close()

	// Exactly 10 MiB is still accepted
	path := writeTempFile(t, "exact.jpg", MaxUploadSize)
	if _, err := svc.Upload(context.Background(), UploadInput{Title: "t", Category: "c", FilePath: path}); err != nil {
		t.Errorf("Expected 10 MiB file to be accepted, got %v", err)
	}
}

func TestUploadSendsMultipartForm(t *testing.T) {
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/images/upload" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("ParseMultipartForm failed: %v", err)
		}
		if got := r.FormValue("title"); got != "Sunrise" {
			t.Errorf("Expected title Sunrise, got %q", got)
		}
		if got := r.FormValue("category"); got != "cat-1" {
			t.Errorf("Expected category cat-1, got %q", got)
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("FormFile failed: %v", err)
		}
		defer file.Close()
		if header.Filename != "sunrise.jpg" {
			t.Errorf("Expected filename sunrise.jpg, got %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if len(data) != 256 {
			t.Errorf("Expected 256 file bytes, got %d", len(data))
		}

		w.Write([]byte(`{"id":"img1","title":"Sunrise","category":"cat-1","imageUrl":"https://cdn/img1.jpg","storageKey":"img1.jpg","createdAt":"2026-01-02T03:04:05Z"}`))
	}))
	defer server.Close()

	path := writeTempFile(t, "sunrise.jpg", 256)
	created, err := svc.Upload(context.Background(), UploadInput{
		Title:    "Sunrise",
		Category: "cat-1",
		FilePath: path,
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if created.ID != "img1" {
		t.Errorf("Expected created id img1, got %q", created.ID)
	}
}

func TestListImagesQueryParams(t *testing.T) {
	tests := []struct {
		name             string
		params           ListParams
		expectedCategory string
		categoryPresent  bool
		expectedPage     string
	}{
		{
			name:            "no filter omits category",
			params:          ListParams{Page: 1, Limit: 10},
			categoryPresent: false,
			expectedPage:    "1",
		},
		{
			name:             "filter carried as query param",
			params:           ListParams{Category: "Nature", Page: 2, Limit: 10},
			expectedCategory: "Nature",
			categoryPresent:  true,
			expectedPage:     "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query := r.URL.Query()
				if _, ok := query["category"]; ok != tt.categoryPresent {
					t.Errorf("category param present=%v, expected %v", ok, tt.categoryPresent)
				}
				if tt.categoryPresent && query.Get("category") != tt.expectedCategory {
					t.Errorf("Expected category %q, got %q", tt.expectedCategory, query.Get("category"))
				}
				if query.Get("page") != tt.expectedPage {
					t.Errorf("Expected page %s, got %s", tt.expectedPage, query.Get("page"))
				}
				if query.Get("limit") != "10" {
					t.Errorf("Expected limit 10, got %s", query.Get("limit"))
				}
				w.Write([]byte(`{"success":true,"data":[],"pagination":{"currentPage":1,"totalPages":0,"totalRecords":0,"limit":10}}`))
			}))
			defer server.Close()

			if _, _, err := svc.ListImages(context.Background(), tt.params); err != nil {
				t.Fatalf("ListImages failed: %v", err)
			}
		})
	}
}

func TestDeleteImage(t *testing.T) {
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/images/img42" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"message":"deleted"}`))
	}))
	defer server.Close()

	if err := svc.DeleteImage(context.Background(), "img42"); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
}

func TestDeleteImagePropagatesServerMessage(t *testing.T) {
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"image not found"}`))
	}))
	defer server.Close()

	err := svc.DeleteImage(context.Background(), "missing")
	if err == nil {
		t.Fatal("Expected error")
	}
	if api.ErrorMessage(err, "fallback") != "image not found" {
		t.Errorf("Expected server message, got %v", err)
	}
}
