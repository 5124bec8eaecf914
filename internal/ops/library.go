// Package ops implements the agent's ten data-processing operations.
// Each operation is a stateless transformation over sandbox-resolved
// files: inputs must already exist, exactly one output artifact is
// written (the generator aside), and every failure comes back as a
// tagged fault error instead of propagating.
package ops

import (
	"context"
	"os"

	"go.uber.org/zap"

	"opsagent/internal/classify"
	"opsagent/internal/fault"
	"opsagent/pkg/sandbox"
)

// Fixed input and output names under the sandbox root.
const (
	DatesFile       = "dates.txt"
	WeekdayOutFile  = "dates-weekday.txt"
	ContactsFile    = "contacts.json"
	ContactsOutFile = "contacts-sorted.json"
	LogsDir         = "logs"
	LogsOutFile     = "logs-recent.txt"
	DocsDir         = "docs"
	DocsIndexFile   = "index.json"
	EmailFile       = "email.txt"
	EmailOutFile    = "email-sender.txt"
	CardFile        = "credit-card.png"
	CardOutFile     = "credit-card.txt"
	CommentsFile    = "comments.txt"
	CommentsOutFile = "comments-similar.txt"
	TicketsDBFile   = "ticket-sales.db"
	TicketsOutFile  = "ticket-sales-gold.txt"
)

// PrettierVersion is the version stamped by format-document.
const PrettierVersion = "3.4.2"

// Library holds the shared collaborators of all operations.
type Library struct {
	box *sandbox.Box
	gen Generator
	log *zap.Logger
}

// NewLibrary wires the operation set to a sandbox and a generator.
func NewLibrary(box *sandbox.Box, gen Generator, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{box: box, gen: gen, log: logger}
}

// Run executes the operation selected by the classifier and returns
// its success message, or a tagged error.
func (l *Library) Run(ctx context.Context, m classify.Match) (string, error) {
	switch m.Op {
	case classify.OpGenerateData:
		return l.GenerateData(ctx, m.Email)
	case classify.OpFormatDocument:
		return l.FormatDocument(m.Path)
	case classify.OpCountWeekday:
		return l.CountWeekday()
	case classify.OpSortContacts:
		return l.SortContacts()
	case classify.OpRecentLogs:
		return l.RecentLogs()
	case classify.OpIndexDocs:
		return l.IndexDocs()
	case classify.OpExtractEmail:
		return l.ExtractEmail()
	case classify.OpExtractCard:
		return l.ExtractCard()
	case classify.OpSimilarComments:
		return l.SimilarComments()
	case classify.OpTicketAggregate:
		return l.TicketAggregate(ctx)
	default:
		return "", fault.New(fault.Unrecognized, "Task not recognized.")
	}
}

// readInput resolves name under the sandbox and reads it. An absent
// file is an InputMissing fault.
func (l *Library) readInput(name string) (string, []byte, error) {
	path, err := l.box.Resolve(name)
	if err != nil {
		return "", nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fault.New(fault.InputMissing, "%s does not exist", name)
		}
		return "", nil, fault.Wrap(fault.Internal, err, "read %s", name)
	}
	return path, data, nil
}

// writeOutput resolves name under the sandbox and writes the artifact.
func (l *Library) writeOutput(name string, data []byte) (string, error) {
	path, err := l.box.Resolve(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fault.Wrap(fault.Internal, err, "write %s", name)
	}
	l.log.Debug("artifact written", zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}
