package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"codecrest-backend/internal/transport"
	"github.com/go-playground/validator/v10"
)

func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// Page describes an optional pagination window. When Enabled is false the
// caller asked for the entire filtered set and skip/limit must not be applied.
type Page struct {
	Number  int64
	Limit   int64
	Enabled bool
}

func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Limit
}

// ParsePage reads page/limit from the query. Both absent means pagination is
// bypassed entirely; if either is present the other falls back to its default
// (page 1, limit 10).
func ParsePage(values url.Values) (Page, error) {
	rawPage := strings.TrimSpace(values.Get("page"))
	rawLimit := strings.TrimSpace(values.Get("limit"))
	if rawPage == "" && rawLimit == "" {
		return Page{}, nil
	}

	page := Page{Number: 1, Limit: 10, Enabled: true}

	if rawPage != "" {
		parsed, err := strconv.ParseInt(rawPage, 10, 64)
		if err != nil || parsed <= 0 {
			return Page{}, errors.New("invalid page")
		}
		page.Number = parsed
	}

	if rawLimit != "" {
		parsed, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil || parsed <= 0 {
			return Page{}, errors.New("invalid limit")
		}
		page.Limit = parsed
	}

	return page, nil
}

// ValidationMessages turns validator errors into one comma-joined detail
// string with a field-specific message per violation.
func ValidationMessages(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, fieldMessage(err))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "mailbox":
		return fmt.Sprintf("%s must be a valid email address", err.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), strings.ReplaceAll(err.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

// Method guards a route to a single HTTP verb. Anything else gets a 405 with
// the Allow header naming the one accepted method.
func Method(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			transport.WriteError(w, http.StatusMethodNotAllowed, "method not allowed", method+" required")
			return
		}
		next(w, r)
	}
}

// QueryID reads the id query parameter used by the admin mutation endpoints.
func QueryID(values url.Values) string {
	return strings.TrimSpace(values.Get("id"))
}
