package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestListCategoriesToleratesBothShapes(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected int
	}{
		{
			name:     "enveloped response",
			response: `{"data":[{"id":"1","name":"Nature"},{"id":"2","name":"City"}]}`,
			expected: 2,
		},
		{
			name:     "bare array response",
			response: `[{"id":"1","name":"Nature"}]`,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/categories" {
					t.Errorf("Unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			categories, err := svc.ListCategories(context.Background())
			if err != nil {
				t.Fatalf("ListCategories failed: %v", err)
			}
			if len(categories) != tt.expected {
				t.Errorf("Expected %d categories, got %d", tt.expected, len(categories))
			}
		})
	}
}

func TestCreateCategoryRejectsBlankName(t *testing.T) {
	requests := 0
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := svc.CreateCategory(context.Background(), name); !errors.Is(err, ErrNameRequired) {
			t.Errorf("Expected ErrNameRequired for %q, got %v", name, err)
		}
		if _, err := svc.UpdateCategory(context.Background(), "1", name); !errors.Is(err, ErrNameRequired) {
			t.Errorf("Expected ErrNameRequired for update %q, got %v", name, err)
		}
	}

	if requests != 0 {
		t.Errorf("Expected no requests for blank names, got %d", requests)
	}
}

func TestCreateCategoryTrimsName(t *testing.T) {
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/categories" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if body["name"] != "Nature" {
			t.Errorf("Expected trimmed name Nature, got %q", body["name"])
		}
		w.Write([]byte(`{"id":"1","name":"Nature"}`))
	}))
	defer server.Close()

	created, err := svc.CreateCategory(context.Background(), "  Nature  ")
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if created.ID != "1" || created.Name != "Nature" {
		t.Errorf("Unexpected created category: %+v", created)
	}
}

func TestUpdateAndDeleteCategoryRoutes(t *testing.T) {
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/categories/cat-1":
			w.Write([]byte(`{"id":"cat-1","name":"Landscapes"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/categories/cat-1":
			w.Write([]byte(`{"success":true}`))
		default:
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	updated, err := svc.UpdateCategory(context.Background(), "cat-1", "Landscapes")
	if err != nil {
		t.Fatalf("UpdateCategory failed: %v", err)
	}
	if updated.Name != "Landscapes" {
		t.Errorf("Expected updated name Landscapes, got %q", updated.Name)
	}

	if err := svc.DeleteCategory(context.Background(), "cat-1"); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
}
