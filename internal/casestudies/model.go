package casestudies

import (
	"strings"
	"time"
)

// DefaultIcon is applied when a case study is created without an icon tag.
const DefaultIcon = "Cloud"

type SolutionItem struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

type TechnologyItem struct {
	Category string `bson:"category" json:"category"`
	Value    string `bson:"value" json:"value"`
}

type CaseStudy struct {
	ID               string           `bson:"_id,omitempty" json:"id"`
	Title            string           `bson:"title" json:"title"`
	ShortDescription string           `bson:"short_description" json:"short_description"`
	Platform         string           `bson:"platform" json:"platform"`
	Role             string           `bson:"role,omitempty" json:"role,omitempty"`
	Icon             string           `bson:"icon" json:"icon"`
	Gradient         string           `bson:"gradient" json:"gradient"`
	Challenge        string           `bson:"challenge" json:"challenge"`
	Solutions        []SolutionItem   `bson:"solutions" json:"solutions"`
	Technologies     []TechnologyItem `bson:"technologies" json:"technologies"`
	Outcomes         []string         `bson:"outcomes" json:"outcomes"`
	ImageURL         string           `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	IsPublished      bool             `bson:"is_published" json:"is_published"`
	CreatedAt        time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `bson:"updated_at" json:"updated_at"`
}

// UpsertRequest covers both create and full-replace update.
type UpsertRequest struct {
	Title            string           `json:"title" validate:"omitempty,max=200"`
	ShortDescription string           `json:"short_description" validate:"omitempty,max=500"`
	Platform         string           `json:"platform"`
	Role             string           `json:"role" validate:"omitempty,max=100"`
	Icon             string           `json:"icon"`
	Gradient         string           `json:"gradient"`
	Challenge        string           `json:"challenge"`
	Solutions        []SolutionItem   `json:"solutions"`
	Technologies     []TechnologyItem `json:"technologies"`
	Outcomes         []string         `json:"outcomes"`
	ImageURL         string           `json:"imageUrl"`
	IsPublished      *bool            `json:"is_published"`
}

func (r UpsertRequest) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(r.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(r.ShortDescription) == "" {
		missing = append(missing, "short_description")
	}
	if strings.TrimSpace(r.Platform) == "" {
		missing = append(missing, "platform")
	}
	if strings.TrimSpace(r.Challenge) == "" {
		missing = append(missing, "challenge")
	}
	return missing
}

type ListFilter struct {
	// IncludeUnpublished opens the admin view; the public listing only sees
	// published entries.
	IncludeUnpublished bool
}
