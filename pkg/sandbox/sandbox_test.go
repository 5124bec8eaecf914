package sandbox

import (
	"errors"
	"path/filepath"
	"testing"

	"opsagent/internal/fault"
)

func TestResolveContainment(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	box, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		name      string
		candidate string
		want      string
		ok        bool
	}{
		{"relative child", "dates.txt", filepath.Join(root, "dates.txt"), true},
		{"absolute child", filepath.Join(root, "logs", "a.log"), filepath.Join(root, "logs", "a.log"), true},
		{"root itself", root, root, true},
		{"dot segments inside", filepath.Join(root, "docs", "..", "email.txt"), filepath.Join(root, "email.txt"), true},
		{"parent escape", filepath.Join(root, ".."), "", false},
		{"traversal escape", filepath.Join(root, "..", "etc", "passwd"), "", false},
		{"relative traversal", "../outside.txt", "", false},
		{"sibling prefix", root + "2/file.txt", "", false},
		{"absolute elsewhere", "/etc/passwd", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		got, err := box.Resolve(tc.candidate)
		if tc.ok {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tc.name, err)
				continue
			}
			if got != tc.want {
				t.Errorf("%s: Resolve = %q, want %q", tc.name, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected rejection, got %q", tc.name, got)
			continue
		}
		var fe *fault.Error
		if !errors.As(err, &fe) || fe.Kind != fault.OutOfSandbox {
			t.Errorf("%s: expected OutOfSandbox, got %v", tc.name, err)
		}
	}
}

func TestNewRequiresRoot(t *testing.T) {
	t.Parallel()

	if _, err := New(""); err == nil {
		t.Fatalf("expected error for empty root")
	}
}

func TestDistinctRootsAreIndependent(t *testing.T) {
	t.Parallel()

	a, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	inA := filepath.Join(a.Root(), "file.txt")
	if _, err := a.Resolve(inA); err != nil {
		t.Fatalf("path under own root rejected: %v", err)
	}
	if _, err := b.Resolve(inA); err == nil {
		t.Fatalf("path under foreign root accepted")
	}
}
