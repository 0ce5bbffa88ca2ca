package abbrev

import (
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/LaurelLatin/core/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "abbrev.db"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorePutLoad(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("Cn", "praenomen Gnaeus"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put("Kal.", "Kalendae"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	list, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Load returned %d entries, want 2", len(list))
	}
	// Trailing period is stripped on Put; order is by literal.
	if list[0] != "Cn" || list[1] != "Kal" {
		t.Errorf("Load = %v, want [Cn Kal]", list)
	}
}

func TestStorePutEmpty(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put("", ""); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Put(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestStorePutUpdatesNote(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put("Ti", ""); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put("Ti", "praenomen Tiberius"); err != nil {
		t.Fatalf("Put update failed: %v", err)
	}
	list, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("duplicate Put should upsert, got %d entries", len(list))
	}
}

func TestStoreRemove(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put("Sex", ""); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Remove("Sex"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Remove("Sex"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Remove of absent literal = %v, want ErrNotFound", err)
	}
}

func TestStoreSeed(t *testing.T) {
	s := openTestStore(t)
	if err := s.Seed(Latin()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	// Seeding twice must not fail or duplicate.
	if err := s.Seed(Latin()); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	list, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(list) != len(Latin()) {
		t.Errorf("seeded store has %d entries, want %d", len(list), len(Latin()))
	}
}
