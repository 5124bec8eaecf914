package ops

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"opsagent/internal/fault"
)

// IndexDocs maps every markdown file under docs/ to its first heading
// and writes docs/index.json. An empty or absent docs tree yields an
// empty index, which is a valid success. Output is byte-identical
// across runs on unchanged input: keys are relative slash-separated
// paths and Go's JSON encoder sorts map keys.
func (l *Library) IndexDocs() (string, error) {
	dir, err := l.box.Resolve(DocsDir)
	if err != nil {
		return "", err
	}

	index := map[string]string{}
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		title, ok, err := firstHeading(path)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		index[filepath.ToSlash(rel)] = title
		return nil
	})
	if walkErr != nil && !os.IsNotExist(walkErr) {
		return "", fault.Wrap(fault.Internal, walkErr, "walk %s", DocsDir)
	}

	encoded, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return "", fault.Wrap(fault.Internal, err, "encode index")
	}

	out, err := l.writeOutput(filepath.Join(DocsDir, DocsIndexFile), encoded)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Docs index created at %s", out), nil
}

// firstHeading returns the title of the first markdown heading line:
// leading '#' runs stripped, surrounding space trimmed. The rest of
// the file is ignored.
func firstHeading(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "#")), true, nil
		}
	}
	return "", false, nil
}
