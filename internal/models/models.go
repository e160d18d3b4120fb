package models

import (
	"encoding/json"
	"time"
)

// Category is a gallery category as returned by the service.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryRef is the category field of an Image. Depending on the endpoint
// the service returns either a bare category id or an embedded category
// object, so decoding accepts both and normalizes to one shape.
type CategoryRef struct {
	ID   string
	Name string
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Name = ""
		return nil
	}

	var cat Category
	if err := json.Unmarshal(data, &cat); err != nil {
		return err
	}
	r.ID = cat.ID
	r.Name = cat.Name
	return nil
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	return json.Marshal(Category{ID: r.ID, Name: r.Name})
}

// Image is a stored gallery image record.
type Image struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Category   CategoryRef `json:"category"`
	ImageURL   string      `json:"imageUrl"`
	StorageKey string      `json:"storageKey"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Pagination is the paging metadata attached to list responses. NextPage and
// PrevPage are nil when the service reports no such page.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalRecords int  `json:"totalRecords"`
	Limit        int  `json:"limit"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
	NextPage     *int `json:"nextPage"`
	PrevPage     *int `json:"prevPage"`
}

// ImageList is the enveloped response of GET /images.
type ImageList struct {
	Success    bool       `json:"success"`
	Status     int        `json:"status"`
	Message    string     `json:"message"`
	Data       []Image    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CategoryList decodes the response of GET /categories. The service has
// returned both an enveloped object and a bare array over time; both are
// accepted here so callers only ever see the normalized slice.
type CategoryList struct {
	Data []Category
}

func (l *CategoryList) UnmarshalJSON(data []byte) error {
	var bare []Category
	if err := json.Unmarshal(data, &bare); err == nil {
		l.Data = bare
		return nil
	}

	var envelope struct {
		Data []Category `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	l.Data = envelope.Data
	return nil
}

// User is the account record returned on login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is the response of POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
