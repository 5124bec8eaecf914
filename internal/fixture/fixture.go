// Package fixture seeds a sandbox directory with the sample files the
// agent's operations consume. It backs the datagen binary, which the
// agent invokes as its external generator.
package fixture

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Generate populates dir with the full sample layout: a markdown file
// to format, a 10-line date list, three contacts, twelve log files,
// two docs, an email addressed from senderEmail, a placeholder card
// payload, four comments, and a ticket store with Gold and Silver
// rows.
func Generate(dir, senderEmail string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	steps := []func(string) error{
		writeFormatMD,
		writeDates,
		writeContacts,
		writeLogs,
		writeDocs,
		func(d string) error { return writeEmail(d, senderEmail) },
		writeCard,
		writeComments,
		writeTicketStore,
	}
	for _, step := range steps {
		if err := step(dir); err != nil {
			return err
		}
	}
	return nil
}

func writeFormatMD(dir string) error {
	content := "# Heading\nSome content that requires formatting."
	return os.WriteFile(filepath.Join(dir, "format.md"), []byte(content), 0o644)
}

func writeDates(dir string) error {
	var b []byte
	base := time.Now()
	for i := 0; i < 10; i++ {
		day := base.AddDate(0, 0, -i)
		b = append(b, day.Format("2006-01-02")...)
		b = append(b, '\n')
	}
	return os.WriteFile(filepath.Join(dir, "dates.txt"), b, 0o644)
}

func writeContacts(dir string) error {
	contacts := []map[string]string{
		{"first_name": "Alice", "last_name": "Zephyr"},
		{"first_name": "Bob", "last_name": "Yellow"},
		{"first_name": "Charlie", "last_name": "Xavier"},
	}
	data, err := json.Marshal(contacts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "contacts.json"), data, 0o644)
}

func writeLogs(dir string) error {
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return err
	}
	for i := 0; i < 12; i++ {
		content := fmt.Sprintf("Log file %d first line\nAdditional log details.", i)
		path := filepath.Join(logsDir, fmt.Sprintf("log_%d.log", i))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func writeDocs(dir string) error {
	docsDir := filepath.Join(dir, "docs")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return err
	}
	docs := map[string]string{
		"README.md":                "# Home\nDocumentation contents.",
		"large-language-models.md": "# Large Language Models\nDetailed info about LLMs.",
	}
	for name, content := range docs {
		if err := os.WriteFile(filepath.Join(docsDir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func writeEmail(dir, sender string) error {
	content := fmt.Sprintf("From: %s\nSubject: Sample Email\nBody: Hello!", sender)
	return os.WriteFile(filepath.Join(dir, "email.txt"), []byte(content), 0o644)
}

func writeCard(dir string) error {
	// A plain-text stand-in for an image payload.
	return os.WriteFile(filepath.Join(dir, "credit-card.png"), []byte("4111 1111 1111 1111"), 0o644)
}

func writeComments(dir string) error {
	comments := "This is comment one\n" +
		"This is comment two\n" +
		"This is similar comment two\n" +
		"Another different comment\n"
	return os.WriteFile(filepath.Join(dir, "comments.txt"), []byte(comments), 0o644)
}

func writeTicketStore(dir string) error {
	db, err := sql.Open("sqlite", filepath.Join(dir, "ticket-sales.db"))
	if err != nil {
		return fmt.Errorf("open ticket store: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS tickets (type TEXT, units INTEGER, price REAL)`); err != nil {
		return fmt.Errorf("create tickets table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	rows := []struct {
		kind  string
		units int
		price float64
	}{
		{"Gold", 2, 150.0},
		{"Gold", 3, 150.0},
		{"Silver", 5, 100.0},
	}
	for _, r := range rows {
		if _, err := tx.Exec(`INSERT INTO tickets (type, units, price) VALUES (?, ?, ?)`,
			r.kind, r.units, r.price); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert ticket row: %w", err)
		}
	}
	return tx.Commit()
}
