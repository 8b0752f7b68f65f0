package casestudies

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("case study not found")

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (CaseStudy, error) {
	now := time.Now().In(s.location)
	item := CaseStudy{
		ID:               primitive.NewObjectID().Hex(),
		Title:            strings.TrimSpace(req.Title),
		ShortDescription: strings.TrimSpace(req.ShortDescription),
		Platform:         strings.TrimSpace(req.Platform),
		Role:             strings.TrimSpace(req.Role),
		Icon:             normalizeIcon(req.Icon),
		Gradient:         strings.TrimSpace(req.Gradient),
		Challenge:        strings.TrimSpace(req.Challenge),
		Solutions:        normalizeSolutions(req.Solutions),
		Technologies:     normalizeTechnologies(req.Technologies),
		Outcomes:         normalizeOutcomes(req.Outcomes),
		ImageURL:         strings.TrimSpace(req.ImageURL),
		IsPublished:      normalizePublished(req.IsPublished),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return CaseStudy{}, err
	}
	return item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (CaseStudy, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CaseStudy{}, ErrNotFound
		}
		return CaseStudy{}, err
	}
	return item, nil
}

// Update is a full-document replace: every editable field is overwritten with
// the request value, under the same constraints as create.
func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (CaseStudy, error) {
	set := bson.M{
		"title":             strings.TrimSpace(req.Title),
		"short_description": strings.TrimSpace(req.ShortDescription),
		"platform":          strings.TrimSpace(req.Platform),
		"role":              strings.TrimSpace(req.Role),
		"icon":              normalizeIcon(req.Icon),
		"gradient":          strings.TrimSpace(req.Gradient),
		"challenge":         strings.TrimSpace(req.Challenge),
		"solutions":         normalizeSolutions(req.Solutions),
		"technologies":      normalizeTechnologies(req.Technologies),
		"outcomes":          normalizeOutcomes(req.Outcomes),
		"image_url":         strings.TrimSpace(req.ImageURL),
		"is_published":      normalizePublished(req.IsPublished),
		"updated_at":        time.Now().In(s.location),
	}

	updated, err := s.repo.Replace(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CaseStudy{}, ErrNotFound
		}
		return CaseStudy{}, err
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

func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]CaseStudy, int64, error) {
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

func normalizeIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return DefaultIcon
	}
	return icon
}

// Published defaults to true; only an explicit false keeps an entry hidden.
func normalizePublished(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func normalizeSolutions(items []SolutionItem) []SolutionItem {
	out := make([]SolutionItem, 0, len(items))
	for _, item := range items {
		out = append(out, SolutionItem{
			Title:       strings.TrimSpace(item.Title),
			Description: strings.TrimSpace(item.Description),
		})
	}
	return out
}

func normalizeTechnologies(items []TechnologyItem) []TechnologyItem {
	out := make([]TechnologyItem, 0, len(items))
	for _, item := range items {
		out = append(out, TechnologyItem{
			Category: strings.TrimSpace(item.Category),
			Value:    strings.TrimSpace(item.Value),
		})
	}
	return out
}

func normalizeOutcomes(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.TrimSpace(item))
	}
	return out
}
