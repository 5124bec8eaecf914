package system

import (
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	profile := Detect()
	if profile.OS != runtime.GOOS {
		t.Fatalf("OS = %q, want %q", profile.OS, runtime.GOOS)
	}
	if profile.Arch != runtime.GOARCH {
		t.Fatalf("Arch = %q, want %q", profile.Arch, runtime.GOARCH)
	}
}

func TestHasBin(t *testing.T) {
	t.Parallel()

	profile := Detect()
	if profile.HasBin("") {
		t.Fatalf("empty name should not resolve")
	}
	if profile.HasBin("definitely-not-a-real-binary-name") {
		t.Fatalf("unknown binary should not resolve")
	}
}
