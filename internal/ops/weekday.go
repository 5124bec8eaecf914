package ops

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"opsagent/internal/fault"
)

const dateLayout = "2006-01-02"

// CountWeekday counts how many lines of dates.txt fall on a Wednesday
// and writes the count. Blank lines are skipped; any other unparsable
// line fails the whole operation.
func (l *Library) CountWeekday() (string, error) {
	_, data, err := l.readInput(DatesFile)
	if err != nil {
		return "", err
	}

	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		day, err := time.Parse(dateLayout, line)
		if err != nil {
			return "", fault.Wrap(fault.MalformedInput, err, "parse date %q", line)
		}
		if day.Weekday() == time.Wednesday {
			count++
		}
	}

	out, err := l.writeOutput(WeekdayOutFile, []byte(strconv.Itoa(count)))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Wednesday count (%d) written to %s", count, out), nil
}
