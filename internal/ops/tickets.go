package ops

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"opsagent/internal/fault"
)

// TicketAggregate sums units*price over the Gold rows of the tickets
// table and writes the total. A real sum keeps its decimal point
// (750.0, not 750); an empty table writes the integer 0.
func (l *Library) TicketAggregate(ctx context.Context) (string, error) {
	path, err := l.box.Resolve(TicketsDBFile)
	if err != nil {
		return "", err
	}
	// Opening a missing database would silently create one; reject first.
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fault.New(fault.InputMissing, "%s does not exist", TicketsDBFile)
		}
		return "", fault.Wrap(fault.Internal, err, "stat %s", TicketsDBFile)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", fault.Wrap(fault.Internal, err, "open %s", TicketsDBFile)
	}
	defer db.Close()

	var total sql.NullFloat64
	row := db.QueryRowContext(ctx,
		`SELECT SUM(units * price) FROM tickets WHERE type = 'Gold'`)
	if err := row.Scan(&total); err != nil {
		return "", fault.Wrap(fault.MalformedInput, err, "query tickets")
	}

	rendered := "0"
	if total.Valid {
		rendered = formatTotal(total.Float64)
	}
	out, err := l.writeOutput(TicketsOutFile, []byte(rendered))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Total Gold ticket sales (%s) written to %s", rendered, out), nil
}

// formatTotal renders a SUM result. Whole floats keep a trailing .0 so
// the artifact distinguishes a real sum from the empty-table zero.
func formatTotal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
