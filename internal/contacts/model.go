package contacts

import (
	"strings"
	"time"
)

const (
	StatusReceived = "Received"
	StatusProgress = "Progress"
	StatusDone     = "Done"
)

var validStatuses = map[string]struct{}{
	StatusReceived: {},
	StatusProgress: {},
	StatusDone:     {},
}

// IsValidStatus is a case-sensitive exact match against the status set.
func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

type Contact struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	IsRead    bool      `bson:"is_read" json:"is_read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Name    string `json:"name" validate:"omitempty,max=100"`
	Email   string `json:"email" validate:"omitempty,mailbox"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"omitempty,max=5000"`
}

// MissingRequired lists absent required fields. Presence is checked before
// any format validation so one combined message covers all of them.
func (r CreateRequest) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=Received Progress Done"`
}

type ListFilter struct {
	Email string
}

// View is the admin transport shape: the stored _id surfaces as id and the
// creation timestamp as created_date.
type View struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	IsRead      bool      `json:"is_read"`
	CreatedDate time.Time `json:"created_date"`
}

func NewView(m Contact) View {
	status := m.Status
	if status == "" {
		status = StatusReceived
	}
	return View{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Company:     m.Company,
		Message:     m.Message,
		Status:      status,
		IsRead:      m.IsRead,
		CreatedDate: m.CreatedAt,
	}
}

func NewViews(items []Contact) []View {
	views := make([]View, 0, len(items))
	for _, item := range items {
		views = append(views, NewView(item))
	}
	return views
}
