package services

import (
	"errors"
	"testing"
)

func TestTeamRegistryAdd(t *testing.T) {
	r := NewTeamRegistry()

	a, err := r.Add("  Lions ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a.Name != "Lions" || a.ID == "" {
		t.Fatalf("unexpected team %+v", a)
	}
	if _, err := r.Add("Tigers"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrTeamNameRequired},
		{"blank", "   ", ErrTeamNameRequired},
		{"duplicate", "Lions", ErrTeamNameConflict},
		{"duplicate ignoring case", "tIGERS", ErrTeamNameConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Add(tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("Add(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}

	if r.Len() != 2 {
		t.Fatalf("rejected adds changed the registry: len %d", r.Len())
	}
	snap := r.Snapshot()
	if snap[0].Name != "Lions" || snap[1].Name != "Tigers" {
		t.Fatalf("insertion order lost: %+v", snap)
	}
}

func TestTeamRegistryRename(t *testing.T) {
	r := NewTeamRegistry()
	a, _ := r.Add("Lions")
	r.Add("Tigers")

	renamed, err := r.Rename(a.ID, "LIONS")
	if err != nil {
		t.Fatalf("renaming to a different case of the same name: %v", err)
	}
	if renamed.ID != a.ID || renamed.Name != "LIONS" {
		t.Fatalf("unexpected rename result %+v", renamed)
	}

	if _, err := r.Rename(a.ID, "tigers"); !errors.Is(err, ErrTeamNameConflict) {
		t.Fatalf("want ErrTeamNameConflict, got %v", err)
	}
	if _, err := r.Rename("missing", "Bears"); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("want ErrTeamNotFound, got %v", err)
	}
	if _, err := r.Rename(a.ID, " "); !errors.Is(err, ErrTeamNameRequired) {
		t.Fatalf("want ErrTeamNameRequired, got %v", err)
	}
}

func TestTeamRegistryRemoveAndClone(t *testing.T) {
	r := NewTeamRegistry()
	a, _ := r.Add("Lions")
	b, _ := r.Add("Tigers")

	clone := r.Clone()
	if err := clone.Remove(a.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("clone shares storage with the original")
	}
	if _, ok := clone.Get(b.ID); !ok {
		t.Fatalf("remaining team missing from clone")
	}
	if err := clone.Remove(a.ID); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("want ErrTeamNotFound, got %v", err)
	}
}

func TestTeamRegistryShuffle(t *testing.T) {
	r := NewTeamRegistry()
	for _, name := range []string{"A", "B", "C"} {
		r.Add(name)
	}
	reverse := func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}
	r.Shuffle(reverse)

	snap := r.Snapshot()
	if snap[0].Name != "C" || snap[1].Name != "B" || snap[2].Name != "A" {
		t.Fatalf("unexpected order after shuffle: %+v", snap)
	}
}
