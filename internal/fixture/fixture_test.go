package fixture

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestGenerateLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Generate(dir, "carol@example.org"))

	for _, name := range []string{
		"format.md", "dates.txt", "contacts.json", "email.txt",
		"credit-card.png", "comments.txt", "ticket-sales.db",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	logs, err := filepath.Glob(filepath.Join(dir, "logs", "*.log"))
	require.NoError(t, err)
	require.Len(t, logs, 12)

	docs, err := filepath.Glob(filepath.Join(dir, "docs", "*.md"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestGenerateDates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Generate(dir, "carol@example.org"))

	data, err := os.ReadFile(filepath.Join(dir, "dates.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 10)
	for _, line := range lines {
		require.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, line)
	}
}

func TestGenerateContacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Generate(dir, "carol@example.org"))

	data, err := os.ReadFile(filepath.Join(dir, "contacts.json"))
	require.NoError(t, err)
	var contacts []map[string]string
	require.NoError(t, json.Unmarshal(data, &contacts))
	require.Len(t, contacts, 3)
	require.Equal(t, "Zephyr", contacts[0]["last_name"])
}

func TestGenerateEmailUsesSender(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Generate(dir, "dave@corp.io"))

	data, err := os.ReadFile(filepath.Join(dir, "email.txt"))
	require.NoError(t, err)
	require.Contains(t, string(data), "From: dave@corp.io")
}

func TestGenerateTicketStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Generate(dir, "carol@example.org"))

	db, err := sql.Open("sqlite", filepath.Join(dir, "ticket-sales.db"))
	require.NoError(t, err)
	defer db.Close()

	var gold float64
	require.NoError(t, db.QueryRow(
		`SELECT COALESCE(SUM(units * price), 0) FROM tickets WHERE type = 'Gold'`).Scan(&gold))
	require.Equal(t, 750.0, gold)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tickets`).Scan(&count))
	require.Equal(t, 3, count)
}

func TestGenerateStaticFilesIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Generate(dir, "carol@example.org"))
	first, err := os.ReadFile(filepath.Join(dir, "format.md"))
	require.NoError(t, err)

	require.NoError(t, Generate(dir, "carol@example.org"))
	second, err := os.ReadFile(filepath.Join(dir, "format.md"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}
