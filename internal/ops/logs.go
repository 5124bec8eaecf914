package ops

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"opsagent/internal/fault"
)

const recentLogLimit = 10

type logFile struct {
	path  string
	mtime time.Time
}

// RecentLogs writes the first line of the ten most recently modified
// *.log files under the logs directory, newest first. Zero log files
// is an explicit failure, not an empty artifact.
func (l *Library) RecentLogs() (string, error) {
	dir, err := l.box.Resolve(LogsDir)
	if err != nil {
		return "", err
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return "", fault.Wrap(fault.Internal, err, "scan %s", LogsDir)
	}
	if len(matches) == 0 {
		return "", fault.New(fault.InputMissing, "No log files found.")
	}

	files := make([]logFile, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return "", fault.Wrap(fault.Internal, err, "stat %s", path)
		}
		files = append(files, logFile{path: path, mtime: info.ModTime()})
	}

	// Newest first; name ascending keeps equal timestamps deterministic.
	sort.SliceStable(files, func(i, j int) bool {
		if !files[i].mtime.Equal(files[j].mtime) {
			return files[i].mtime.After(files[j].mtime)
		}
		return files[i].path < files[j].path
	})
	if len(files) > recentLogLimit {
		files = files[:recentLogLimit]
	}

	var b strings.Builder
	for _, f := range files {
		line, err := firstLine(f.path)
		if err != nil {
			return "", fault.Wrap(fault.Internal, err, "read %s", f.path)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	out, err := l.writeOutput(LogsOutFile, []byte(b.String()))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Recent logs written to %s", out), nil
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", scanner.Err()
}
