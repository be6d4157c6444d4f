package visits

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Visit

	// último filtro recibido en List (para validar saneo de paginación)
	gotFilter ListFilter
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Visit{}}
}

func (r *testRepo) Create(ctx context.Context, v Visit) error {
	if v.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[v.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Visit, error) {
	v, ok := r.byID[id]
	if !ok {
		return Visit{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) Update(ctx context.Context, v Visit) error {
	if _, ok := r.byID[v.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Visit, error) {
	r.gotFilter = f
	out := make([]Visit, 0)
	for _, v := range r.byID {
		if f.Status != "" && v.Status != f.Status {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsToScheduled(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 1, 10, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	v, err := svc.Create(context.Background(), CreateInput{
		Title: "  Visita Técnica - Mina X  ",
		CEP:   "30140-071",
		UF:    "mg",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if v.ID == "" {
		t.Fatalf("expected generated id")
	}
	if v.Status != StatusScheduled {
		t.Fatalf("expected status scheduled, got %s", v.Status)
	}
	if v.Title != "Visita Técnica - Mina X" {
		t.Fatalf("expected trimmed title, got %q", v.Title)
	}
	if v.CEP != "30140071" {
		t.Fatalf("expected normalized cep, got %q", v.CEP)
	}
	if v.UF != "MG" {
		t.Fatalf("expected uppercased uf, got %q", v.UF)
	}
	if v.CreatedAt != now || v.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_RequiresTitle(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{Title: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Title:  "Visita",
		Status: Status("paused"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_EmptyStatusKeepsCurrent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	v, err := svc.Create(context.Background(), CreateInput{
		Title:  "Visita",
		Status: StatusCompleted,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(context.Background(), v.ID, UpdateInput{
		Title: "Visita editada",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected status kept completed, got %s", updated.Status)
	}
}

func TestService_Update_TransitionMatrix(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{"scheduled to completed", StatusScheduled, StatusCompleted, false},
		{"scheduled to canceled", StatusScheduled, StatusCanceled, false},
		{"scheduled to scheduled", StatusScheduled, StatusScheduled, false},
		{"completed to completed", StatusCompleted, StatusCompleted, false},
		{"completed to scheduled", StatusCompleted, StatusScheduled, true},
		{"completed to canceled", StatusCompleted, StatusCanceled, true},
		{"canceled to scheduled", StatusCanceled, StatusScheduled, true},
		{"canceled to completed", StatusCanceled, StatusCompleted, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTestRepo()
			svc := NewService(repo)

			v, err := svc.Create(context.Background(), CreateInput{
				Title:  "Visita",
				Status: tc.from,
			})
			if err != nil {
				t.Fatalf("Create error: %v", err)
			}

			_, err = svc.Update(context.Background(), v.ID, UpdateInput{
				Title:  "Visita",
				Status: tc.to,
			})
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update error: %v", err)
			}
		})
	}
}

func TestService_Update_PreservesDistanceResult(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	v, err := svc.Create(context.Background(), CreateInput{Title: "Visita"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.RecordDistance(context.Background(), v.ID, 12.5); err != nil {
		t.Fatalf("RecordDistance error: %v", err)
	}

	updated, err := svc.Update(context.Background(), v.ID, UpdateInput{Title: "Visita editada"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.DistanceKM == nil || *updated.DistanceKM != 12.5 {
		t.Fatalf("expected distance preserved, got %v", updated.DistanceKM)
	}
	if updated.DistanceCheckedAt == nil {
		t.Fatalf("expected distance_checked_at preserved")
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), "nope", UpdateInput{Title: "Visita"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_List_ClampsPagination(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.List(context.Background(), "", 0, 0); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.gotFilter.Page != 1 || repo.gotFilter.Size != 50 {
		t.Fatalf("expected defaults page=1 size=50, got page=%d size=%d",
			repo.gotFilter.Page, repo.gotFilter.Size)
	}

	if _, err := svc.List(context.Background(), "", -3, 1000); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.gotFilter.Page != 1 || repo.gotFilter.Size != 100 {
		t.Fatalf("expected clamped page=1 size=100, got page=%d size=%d",
			repo.gotFilter.Page, repo.gotFilter.Size)
	}
}

func TestService_List_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.List(context.Background(), Status("paused"), 1, 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_RecordDistance(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 1, 10, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	v, err := svc.Create(context.Background(), CreateInput{Title: "Visita"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	later := now.Add(10 * time.Minute)
	svc.now = func() time.Time { return later }

	updated, err := svc.RecordDistance(context.Background(), v.ID, 42.3)
	if err != nil {
		t.Fatalf("RecordDistance error: %v", err)
	}
	if updated.DistanceKM == nil || *updated.DistanceKM != 42.3 {
		t.Fatalf("expected distance 42.3, got %v", updated.DistanceKM)
	}
	if updated.DistanceCheckedAt == nil || !updated.DistanceCheckedAt.Equal(later) {
		t.Fatalf("expected checked_at = now, got %v", updated.DistanceCheckedAt)
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Fatalf("expected UpdatedAt bumped")
	}
}
