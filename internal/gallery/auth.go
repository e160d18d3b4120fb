package gallery

import (
	"context"
	"fmt"

	"github.com/pixstash/pixstash/internal/models"
)

// Login exchanges credentials for a bearer token. The request is sent
// unauthenticated; persisting the returned token is the caller's job.
func (s *Service) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp models.LoginResponse
	if err := s.client.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}

	return &resp, nil
}
