package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/mburn/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scenarios.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	p := model.DefaultParams()
	p.Budget = 3_200_000
	p.ShockProb = 0.08

	if err := s.Save("kos-jakarta", p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sc, err := s.Get("kos-jakarta")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sc.Params != p {
		t.Fatalf("round trip changed params:\n got %+v\nwant %+v", sc.Params, p)
	}
	if sc.CreatedAt.IsZero() || sc.UpdatedAt.IsZero() {
		t.Fatal("timestamps not recorded")
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	s := openTestStore(t)

	p := model.DefaultParams()
	if err := s.Save("base", p); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	p.Budget = 5_000_000
	if err := s.Save("base", p); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	sc, err := s.Get("base")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sc.Params.Budget != 5_000_000 {
		t.Fatalf("budget = %.0f after update, want 5000000", sc.Params.Budget)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("scenario count = %d after upsert, want 1", len(all))
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)

	p := model.DefaultParams()
	for _, name := range []string{"first", "second", "third"} {
		if err := s.Save(name, p); err != nil {
			t.Fatalf("Save %q: %v", name, err)
		}
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("scenario count = %d, want 3", len(all))
	}

	if err := s.Delete("second"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("second"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete: err = %v, want ErrNotFound", err)
	}
	if err := s.Delete("second"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double Delete: err = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save("", model.DefaultParams()); err == nil {
		t.Fatal("Save accepted an empty name")
	}
}
