package reviews

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	items     []Review
	createErr error
}

func (f *fakeRepo) Create(ctx context.Context, item Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, item)
	return nil
}

func (f *fakeRepo) find(id string) int {
	for i := range f.items {
		if f.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (Review, error) {
	idx := f.find(id)
	if idx < 0 {
		return Review{}, mongo.ErrNoDocuments
	}
	return f.items[idx], nil
}

func (f *fakeRepo) SetStatus(ctx context.Context, id, status string, now time.Time) (Review, error) {
	idx := f.find(id)
	if idx < 0 {
		return Review{}, mongo.ErrNoDocuments
	}
	f.items[idx].Status = status
	f.items[idx].UpdatedAt = now
	return f.items[idx], nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	idx := f.find(id)
	if idx < 0 {
		return false, nil
	}
	f.items = append(f.items[:idx], f.items[idx+1:]...)
	return true, nil
}

func (f *fakeRepo) filtered(filter ListFilter) []Review {
	out := make([]Review, 0, len(f.items))
	for _, item := range f.items {
		if filter.Status != "" && filter.Status != StatusAll && item.Status != filter.Status {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Review, error) {
	out := f.filtered(filter)
	if limit <= 0 {
		return out, nil
	}
	if offset >= int64(len(out)) {
		return []Review{}, nil
	}
	out = out[offset:]
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return int64(len(f.filtered(filter))), nil
}

func ratingOf(n int) *int {
	return &n
}

func TestCreateStartsPending(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{
		Name:    "Sam",
		Email:   " Sam@Example.com ",
		Content: "Great team",
		Rating:  ratingOf(5),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.Status != StatusPending {
		t.Fatalf("new reviews must start pending, got %q", item.Status)
	}
	if item.Email != "sam@example.com" {
		t.Fatalf("expected lower-cased email, got %q", item.Email)
	}
	if item.Rating != 5 {
		t.Fatalf("expected rating 5, got %d", item.Rating)
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{items: []Review{{ID: "r1", Status: StatusPending}}}
	svc := NewService(repo, time.UTC)

	item, err := svc.GetByID(context.Background(), "r1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if item.Status != StatusPending {
		t.Fatalf("unexpected item %+v", item)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListDefaultsToApproved(t *testing.T) {
	repo := &fakeRepo{items: []Review{
		{ID: "r1", Status: StatusApproved},
		{ID: "r2", Status: StatusPending},
		{ID: "r3", Status: StatusRejected},
		{ID: "r4", Status: StatusApproved},
	}}
	svc := NewService(repo, time.UTC)

	items, total, err := svc.List(context.Background(), ListFilter{}, 0, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 2 || total != 2 {
		t.Fatalf("expected 2 approved, got %d/%d", len(items), total)
	}
	for _, item := range items {
		if item.Status != StatusApproved {
			t.Fatalf("unexpected status %q in default listing", item.Status)
		}
	}
}

func TestListAllWildcard(t *testing.T) {
	repo := &fakeRepo{items: []Review{
		{ID: "r1", Status: StatusApproved},
		{ID: "r2", Status: StatusPending},
		{ID: "r3", Status: StatusRejected},
	}}
	svc := NewService(repo, time.UTC)

	items, total, err := svc.List(context.Background(), ListFilter{Status: StatusAll}, 0, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 3 || total != 3 {
		t.Fatalf("expected full set, got %d/%d", len(items), total)
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC)

	if _, _, err := svc.List(context.Background(), ListFilter{Status: "published"}, 0, 0); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestModerationFlow(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{
		Name:    "Sam",
		Email:   "sam@example.com",
		Content: "Great team",
		Rating:  ratingOf(4),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Pending reviews never show in the public listing.
	items, _, err := svc.List(context.Background(), ListFilter{}, 0, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("pending review leaked into the approved listing")
	}

	approved, err := svc.UpdateStatus(context.Background(), item.ID, StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("expected approved, got %q", approved.Status)
	}

	items, _, err = svc.List(context.Background(), ListFilter{}, 0, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 || items[0].ID != item.ID {
		t.Fatalf("approved review missing from the public listing")
	}
}

func TestUpdateStatusRejectsWildcard(t *testing.T) {
	repo := &fakeRepo{items: []Review{{ID: "r1", Status: StatusPending}}}
	svc := NewService(repo, time.UTC)

	// "all" is a listing filter, never a stored value.
	if _, err := svc.UpdateStatus(context.Background(), "r1", StatusAll); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC)
	if _, err := svc.UpdateStatus(context.Background(), "missing", StatusApproved); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC)
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
