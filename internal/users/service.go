package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the OAuth profile, keyed by email. A fresh ID is
// assigned only when the email has never been seen.
func (s *Service) UpsertFromAuth(ctx context.Context, email, name, imageURL, googleID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return User{}, errors.New("email is required")
	}
	return s.Repo.UpsertByEmail(ctx, User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		ImageURL: imageURL,
		GoogleID: googleID,
	})
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
