package contacts

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound      = errors.New("contact not found")
	ErrInvalidStatus = errors.New("invalid status")
)

type Notifier interface {
	SendContactNotification(ctx context.Context, msg Contact) (string, error)
}

type Service struct {
	repo     Repository
	location *time.Location
	notifier Notifier
}

func NewService(repo Repository, location *time.Location, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		location: location,
		notifier: notifier,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Contact, error) {
	now := time.Now().In(s.location)
	msg := Contact{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Company:   strings.TrimSpace(req.Company),
		Message:   strings.TrimSpace(req.Message),
		Status:    StatusReceived,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return Contact{}, err
	}
	return msg, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Contact, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Contact{}, ErrNotFound
		}
		return Contact{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Contact, int64, error) {
	filter.Email = strings.ToLower(strings.TrimSpace(filter.Email))

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

func (s *Service) MarkRead(ctx context.Context, id string) (Contact, error) {
	updated, err := s.repo.SetRead(ctx, strings.TrimSpace(id), time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Contact{}, ErrNotFound
		}
		return Contact{}, err
	}
	return updated, nil
}

// UpdateStatus moves a contact to any of the three states; there is no
// transition graph. Setting a status always marks the message read.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Contact, error) {
	if !IsValidStatus(status) {
		return Contact{}, ErrInvalidStatus
	}

	updated, err := s.repo.SetStatus(ctx, strings.TrimSpace(id), status, time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Contact{}, ErrNotFound
		}
		return Contact{}, err
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

// NotifyReceived sends the admin notification email for a stored message.
// The write has already committed; callers treat a failure here as log-only.
func (s *Service) NotifyReceived(ctx context.Context, msg Contact) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendContactNotification(ctx, msg)
	return err
}
