package reviews

import (
	"strings"
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	// StatusAll is a listing wildcard, never stored on a review.
	StatusAll = "all"
)

var validStatuses = map[string]struct{}{
	StatusPending:  {},
	StatusApproved: {},
	StatusRejected: {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

type Review struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Content   string    `bson:"content" json:"content"`
	Rating    int       `bson:"rating" json:"rating"`
	ImageURL  string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Rating is a pointer so a missing rating is a presence failure while a
// present zero is an out-of-range failure.
type CreateRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"omitempty,mailbox"`
	Role     string `json:"role" validate:"omitempty,max=100"`
	Company  string `json:"company" validate:"omitempty,max=100"`
	Content  string `json:"content" validate:"omitempty,max=1000"`
	Rating   *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
	ImageURL string `json:"imageUrl"`
}

func (r CreateRequest) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Content) == "" {
		missing = append(missing, "content")
	}
	if r.Rating == nil {
		missing = append(missing, "rating")
	}
	return missing
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type ListFilter struct {
	Status string
}
