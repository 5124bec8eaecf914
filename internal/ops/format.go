package ops

import (
	"fmt"
	"os"

	"opsagent/internal/fault"
)

// FormatDocument prepends the formatter marker line to the target
// file. Running it twice prepends the marker twice; the operation is
// deliberately not idempotent.
func (l *Library) FormatDocument(target string) (string, error) {
	path, err := l.box.Resolve(target)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fault.New(fault.InputMissing, "File to format does not exist.")
		}
		return "", fault.Wrap(fault.Internal, err, "read %s", target)
	}

	marker := fmt.Sprintf("<!-- Formatted with prettier@%s -->\n", PrettierVersion)
	if err := os.WriteFile(path, append([]byte(marker), content...), 0o644); err != nil {
		return "", fault.Wrap(fault.Internal, err, "write %s", target)
	}
	return fmt.Sprintf("Formatted %s using prettier@%s.", path, PrettierVersion), nil
}
