// Package system inspects the host for the doctor command.
package system

import (
	"os"
	"os/exec"
	"runtime"
)

// Profile describes the host the agent runs on.
type Profile struct {
	OS    string
	Arch  string
	Shell string
}

// Detect builds a host profile.
func Detect() *Profile {
	return &Profile{
		OS:    runtime.GOOS,
		Arch:  runtime.GOARCH,
		Shell: os.Getenv("SHELL"),
	}
}

// HasBin reports whether name resolves to an executable.
func (p *Profile) HasBin(name string) bool {
	if name == "" {
		return false
	}
	path, err := exec.LookPath(name)
	return err == nil && path != ""
}
