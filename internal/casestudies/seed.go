package casestudies

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// LegacyCaseStudy is the shape of the pre-migration portfolio entries. The
// free-text Domain maps onto platform/icon/gradient via the lookup tables.
type LegacyCaseStudy struct {
	Title        string
	Description  string
	Domain       string
	Role         string
	Challenge    string
	Solutions    []SolutionItem
	Technologies []TechnologyItem
	Outcomes     []string
	ImageURL     string
}

var domainPlatforms = map[string]string{
	"fintech":    "FinTech",
	"healthcare": "HealthTech",
	"ecommerce":  "E-Commerce",
	"logistics":  "Logistics",
	"education":  "EdTech",
	"saas":       "SaaS",
}

var domainIcons = map[string]string{
	"fintech":    "CreditCard",
	"healthcare": "HeartPulse",
	"ecommerce":  "ShoppingCart",
	"logistics":  "Truck",
	"education":  "GraduationCap",
	"saas":       "Cloud",
}

var domainGradients = map[string]string{
	"fintech":    "from-emerald-500 to-teal-600",
	"healthcare": "from-rose-500 to-pink-600",
	"ecommerce":  "from-amber-500 to-orange-600",
	"logistics":  "from-blue-500 to-indigo-600",
	"education":  "from-violet-500 to-purple-600",
	"saas":       "from-sky-500 to-cyan-600",
}

const (
	fallbackPlatform = "Web"
	fallbackGradient = "from-slate-500 to-gray-600"
)

type SeedError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type SeedResult struct {
	Added   int         `json:"added"`
	Skipped int         `json:"skipped"`
	Errors  []SeedError `json:"errors"`
}

// SeedLegacy imports the legacy dataset: entries whose title already exists
// are skipped, the rest are transformed and created. A failing entry is
// recorded and the batch keeps going.
func (s *Service) SeedLegacy(ctx context.Context, records []LegacyCaseStudy) SeedResult {
	result := SeedResult{Errors: make([]SeedError, 0)}

	for _, record := range records {
		title := strings.TrimSpace(record.Title)
		if title == "" {
			result.Errors = append(result.Errors, SeedError{Title: record.Title, Message: "empty title"})
			continue
		}

		_, err := s.repo.GetByTitle(ctx, title)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			result.Errors = append(result.Errors, SeedError{Title: title, Message: err.Error()})
			continue
		}

		published := true
		req := UpsertRequest{
			Title:            title,
			ShortDescription: record.Description,
			Platform:         legacyLookup(domainPlatforms, record.Domain, fallbackPlatform),
			Role:             record.Role,
			Icon:             legacyLookup(domainIcons, record.Domain, DefaultIcon),
			Gradient:         legacyLookup(domainGradients, record.Domain, fallbackGradient),
			Challenge:        record.Challenge,
			Solutions:        record.Solutions,
			Technologies:     record.Technologies,
			Outcomes:         record.Outcomes,
			ImageURL:         record.ImageURL,
			IsPublished:      &published,
		}

		if _, err := s.Create(ctx, req); err != nil {
			result.Errors = append(result.Errors, SeedError{Title: title, Message: err.Error()})
			continue
		}
		result.Added++
	}

	return result
}

func legacyLookup(table map[string]string, domain, fallback string) string {
	if v, ok := table[strings.ToLower(strings.TrimSpace(domain))]; ok {
		return v
	}
	return fallback
}
