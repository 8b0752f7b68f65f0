package reviews

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrInvalidStatus = errors.New("invalid status")
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

// Create stores a new review. Moderation starts at pending no matter what the
// caller sent; only an explicit admin decision moves it.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Review, error) {
	rating := 0
	if req.Rating != nil {
		rating = *req.Rating
	}

	now := time.Now().In(s.location)
	item := Review{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      strings.TrimSpace(req.Role),
		Company:   strings.TrimSpace(req.Company),
		Content:   strings.TrimSpace(req.Content),
		Rating:    rating,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Review{}, err
	}
	return item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Review, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	return item, nil
}

// List defaults to approved reviews so the public site never sees unmoderated
// content. StatusAll opens the full set for the admin dashboard.
func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Review, int64, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	if filter.Status == "" {
		filter.Status = StatusApproved
	}
	if filter.Status != StatusAll && !IsValidStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Review, error) {
	if !IsValidStatus(status) {
		return Review{}, ErrInvalidStatus
	}

	updated, err := s.repo.SetStatus(ctx, strings.TrimSpace(id), status, time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
