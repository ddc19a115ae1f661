package shape

import "testing"

func TestOwners(t *testing.T) {
	owners := NewOwners[string]()
	owners.Register(1, "player")
	owners.Register(2, "crate")

	if got, ok := owners.Owner(1); !ok || got != "player" {
		t.Fatalf("Owner(1) = %q, %v", got, ok)
	}
	owners.Register(1, "enemy")
	if got, _ := owners.Owner(1); got != "enemy" {
		t.Fatalf("Register should replace the owner, got %q", got)
	}
	if !owners.Release(2) {
		t.Fatalf("Release(2) should report a registered id")
	}
	if owners.Release(2) {
		t.Fatalf("second Release(2) should report false")
	}
	if _, ok := owners.Owner(2); ok {
		t.Fatalf("released id should have no owner")
	}
	if owners.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", owners.Len())
	}

	var zero Owners[int]
	zero.Register(5, 9)
	if got, ok := zero.Owner(5); !ok || got != 9 {
		t.Fatalf("zero-value Owners should be usable, got %d, %v", got, ok)
	}
}
