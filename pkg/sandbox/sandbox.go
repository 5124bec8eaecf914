// Package sandbox confines all agent file access to a single root
// directory. Every operation resolves every path it touches through a
// Box before any I/O.
package sandbox

import (
	"fmt"
	"path/filepath"
	"strings"

	"opsagent/internal/fault"
)

// Box is the path guard for one sandbox root.
type Box struct {
	root string
}

// New normalizes root to an absolute, clean path and returns a guard
// for it.
func New(root string) (*Box, error) {
	if root == "" {
		return nil, fmt.Errorf("sandbox root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("normalize sandbox root: %w", err)
	}
	return &Box{root: filepath.Clean(abs)}, nil
}

// Root returns the normalized sandbox root.
func (b *Box) Root() string { return b.root }

// Resolve turns candidate into an absolute path under the root, or
// fails with an OutOfSandbox error. Relative candidates are joined
// onto the root. The check is lexical: symlinks inside the root are
// not followed, so a link pointing outside is not caught here.
func (b *Box) Resolve(candidate string) (string, error) {
	if candidate == "" {
		return "", fault.New(fault.OutOfSandbox, "path is required")
	}
	p := candidate
	if !filepath.IsAbs(p) {
		p = filepath.Join(b.root, p)
	}
	p = filepath.Clean(p)
	if p != b.root && !strings.HasPrefix(p, b.root+string(filepath.Separator)) {
		return "", fault.New(fault.OutOfSandbox, "access outside %s is not allowed", b.root)
	}
	return p, nil
}
