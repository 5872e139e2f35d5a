// Ownership lock tests.
//
// The handle is move-only: exactly one live owner per path. The OS
// lock makes that enforceable across processes, and as a side effect
// across handles within one process too (flock locks belong to the
// open file description, not the process). These tests exercise the
// in-process observable half: a second open while a handle is live
// fails with ErrLocked, and Close releases the claim.
package diskio

import (
	"errors"
	"path/filepath"
	"testing"
)

// TestOpenWhileHeld verifies that a second handle on a live path is
// refused. Two live owners would each track their own size and
// silently clobber each other's appends.
func TestOpenWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "held.dat")

	owner, err := Create(path, []byte{1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer owner.Close()

	if _, err := Open(path, false); !errors.Is(err, ErrLocked) {
		t.Errorf("Open while held: got %v, want ErrLocked", err)
	}
}

// TestCreateWhileHeld verifies the same refusal on the Create path —
// truncating a file out from under its owner is the worst case.
func TestCreateWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "held.dat")

	owner, err := Create(path, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer owner.Close()

	if _, err := Create(path, nil); !errors.Is(err, ErrLocked) {
		t.Errorf("Create while held: got %v, want ErrLocked", err)
	}
	if owner.Size() != 3 {
		t.Errorf("owner Size = %d after refused Create, want 3", owner.Size())
	}
}

// TestCloseReleases verifies that Close releases the claim so the
// next owner can open. This is the normal table handoff: the writer
// closes, the reader opens.
func TestCloseReleases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handoff.dat")

	writer, err := Create(path, []byte{7})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reader, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open after Close: %v", err)
	}
	defer reader.Close()

	if v, _ := reader.Uint8(0); v != 7 {
		t.Errorf("Uint8(0) = %d, want 7", v)
	}
}
