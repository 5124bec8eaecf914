// Package classify maps a free-text task description to one of the
// agent's ten operations. Classification is a fixed, ordered decision
// list: rules are evaluated top to bottom and the first match wins.
// Matching is case-sensitive substring search on the raw text; there
// is deliberately no normalization, so "Wednesday" and "Gold" must
// appear exactly as written. The rule order is a contract, not an
// implementation detail.
package classify

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Operation identifies one of the closed set of supported task kinds.
type Operation int

const (
	OpUnknown Operation = iota
	OpGenerateData
	OpFormatDocument
	OpCountWeekday
	OpSortContacts
	OpRecentLogs
	OpIndexDocs
	OpExtractEmail
	OpExtractCard
	OpSimilarComments
	OpTicketAggregate
)

func (op Operation) String() string {
	switch op {
	case OpGenerateData:
		return "generate-data"
	case OpFormatDocument:
		return "format-document"
	case OpCountWeekday:
		return "count-weekday"
	case OpSortContacts:
		return "sort-contacts"
	case OpRecentLogs:
		return "recent-logs"
	case OpIndexDocs:
		return "index-docs"
	case OpExtractEmail:
		return "extract-email"
	case OpExtractCard:
		return "extract-card"
	case OpSimilarComments:
		return "similar-comments"
	case OpTicketAggregate:
		return "ticket-aggregate"
	default:
		return "unknown"
	}
}

// DefaultEmail is used when a generate-data description carries no
// email-shaped token.
const DefaultEmail = "user@example.com"

var emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)

// Match is the classification result: the selected operation plus any
// parameters extracted from the description.
type Match struct {
	Op Operation
	// Email parameterizes generate-data.
	Email string
	// Path parameterizes format-document; always under the sandbox
	// root the classifier was built for.
	Path string
}

type rule struct {
	op    Operation
	match func(desc string) bool
}

// Classifier is a pure function of the description text and its fixed
// rule order. It is built for one sandbox root, which anchors the
// path-extraction pattern of the format-document rule.
type Classifier struct {
	rules       []rule
	pathPattern *regexp.Regexp
	defaultPath string
}

// New builds the classifier for the given sandbox root.
func New(root string) *Classifier {
	c := &Classifier{
		pathPattern: regexp.MustCompile(regexp.QuoteMeta(root) + `/\S+`),
		defaultPath: filepath.Join(root, "format.md"),
	}
	c.rules = []rule{
		{OpGenerateData, anyOf("datagen", "generate data")},
		{OpFormatDocument, anyOf("prettier")},
		{OpCountWeekday, anyOf("Wednesday", "dates.txt")},
		{OpSortContacts, anyOf("contacts")},
		{OpRecentLogs, allOf("log", "recent")},
		{OpIndexDocs, anyOf("docs")},
		{OpExtractEmail, allOf("email", "sender")},
		{OpExtractCard, anyOf("credit-card")},
		{OpSimilarComments, allOf("comments", "similar")},
		{OpTicketAggregate, anyOf("ticket-sales", "Gold")},
	}
	return c
}

// Classify returns the first matching rule's operation and extracted
// parameters. ok is false when no rule matches.
func (c *Classifier) Classify(desc string) (Match, bool) {
	for _, r := range c.rules {
		if !r.match(desc) {
			continue
		}
		m := Match{Op: r.op}
		switch r.op {
		case OpGenerateData:
			m.Email = DefaultEmail
			if found := emailPattern.FindString(desc); found != "" {
				m.Email = found
			}
		case OpFormatDocument:
			m.Path = c.defaultPath
			if found := c.pathPattern.FindString(desc); found != "" {
				m.Path = found
			}
		}
		return m, true
	}
	return Match{Op: OpUnknown}, false
}

func anyOf(tokens ...string) func(string) bool {
	return func(desc string) bool {
		for _, token := range tokens {
			if strings.Contains(desc, token) {
				return true
			}
		}
		return false
	}
}

func allOf(tokens ...string) func(string) bool {
	return func(desc string) bool {
		for _, token := range tokens {
			if !strings.Contains(desc, token) {
				return false
			}
		}
		return true
	}
}
