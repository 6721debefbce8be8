// Package parser extracts structured fields from free-form commit messages.
//
// Each line of a message is checked against every rule independently, so a
// single line can contribute to several fields at once:
//
//	[feature] Add CSV export     -> tag "feature", title "Add CSV export"
//	* Export runs hourly         -> detail
//	BC: Renamed BaseImporter     -> bc break
//	TODO: Update docs            -> todo
//	#1234                        -> task id
package parser

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/wahlandcase/attuned.commitmsg/internal/models"
)

const (
	bcMarker   = "BC:"
	todoMarker = "TODO:"
)

var (
	taskIDRegex = regexp.MustCompile(`#([0-9]+)`)
	tagRegex    = regexp.MustCompile(`\[(.*?)\]`)
)

// fields accumulates rule output for a single Parse call
type fields struct {
	title    string
	taskID   *int
	tags     []string
	details  []string
	bcBreaks []string
	todos    []string
}

// rule is a line classifier: match decides whether apply runs for a line
type rule struct {
	name  string
	match func(line string, f *fields) bool
	apply func(line string, f *fields)
}

// defaultRules returns the classification rules in evaluation order
func defaultRules() []rule {
	return []rule{
		{
			name: "title",
			match: func(line string, f *fields) bool {
				return f.title == "" && strings.TrimSpace(line) != ""
			},
			apply: func(line string, f *fields) {
				idx := strings.IndexFunc(line, isASCIIUpper)
				if idx < 0 {
					return
				}
				f.title = strings.TrimSpace(line[idx:])
			},
		},
		{
			name: "task_id",
			match: func(line string, _ *fields) bool {
				return strings.Contains(line, "#")
			},
			apply: func(line string, f *fields) {
				// First reference on the line; later lines overwrite earlier ones.
				m := taskIDRegex.FindStringSubmatch(line)
				if m == nil {
					return
				}
				id, err := strconv.Atoi(m[1])
				if err != nil {
					return
				}
				f.taskID = &id
			},
		},
		{
			name: "tags",
			match: func(line string, _ *fields) bool {
				return strings.Contains(line, "[") && strings.Contains(line, "]")
			},
			apply: func(line string, f *fields) {
				for _, m := range tagRegex.FindAllStringSubmatch(line, -1) {
					f.tags = append(f.tags, m[1])
				}
			},
		},
		{
			name: "bc_breaks",
			match: func(line string, _ *fields) bool {
				return strings.Contains(line, bcMarker)
			},
			apply: func(line string, f *fields) {
				f.bcBreaks = append(f.bcBreaks, after(line, bcMarker))
			},
		},
		{
			name: "todos",
			match: func(line string, _ *fields) bool {
				return strings.Contains(line, todoMarker)
			},
			apply: func(line string, f *fields) {
				f.todos = append(f.todos, after(line, todoMarker))
			},
		},
		{
			name: "details",
			match: func(line string, _ *fields) bool {
				return strings.HasPrefix(line, "*")
			},
			apply: func(line string, f *fields) {
				f.details = append(f.details, strings.TrimSpace(line[1:]))
			},
		},
	}
}

// Parser turns raw commit message text into a models.CommitMessage.
// It holds no per-call state and is safe for concurrent use.
type Parser struct {
	rules []rule
}

// New creates a Parser with the standard rule set
func New() *Parser {
	return &Parser{rules: defaultRules()}
}

var defaultParser = New()

// Parse parses message with the default parser
func Parse(message string) (*models.CommitMessage, error) {
	return defaultParser.Parse(message)
}

// ParseFile reads a commit message from path and parses it
func ParseFile(path string) (*models.CommitMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading commit message file: %w", err)
	}
	return Parse(string(data))
}

// Parse extracts all fields from message. It returns an *InvalidFormatError
// unless every field was found; no partial result is ever returned.
func (p *Parser) Parse(message string) (*models.CommitMessage, error) {
	var f fields

	for _, line := range splitLines(message) {
		for _, r := range p.rules {
			if r.match(line, &f) {
				r.apply(line, &f)
			}
		}
	}

	if missing := f.missing(); len(missing) > 0 {
		return nil, &InvalidFormatError{Missing: missing}
	}

	return models.NewCommitMessage(f.title, f.taskID, f.tags, f.details, f.bcBreaks, f.todos), nil
}

// missing lists the required fields that were not found.
// A task id of zero counts as missing.
func (f *fields) missing() []string {
	var missing []string
	if f.title == "" {
		missing = append(missing, "title")
	}
	if len(f.details) == 0 {
		missing = append(missing, "details")
	}
	if f.taskID == nil || *f.taskID == 0 {
		missing = append(missing, "task_id")
	}
	if len(f.tags) == 0 {
		missing = append(missing, "tags")
	}
	if len(f.bcBreaks) == 0 {
		missing = append(missing, "bc_breaks")
	}
	if len(f.todos) == 0 {
		missing = append(missing, "todos")
	}
	return missing
}

func splitLines(message string) []string {
	if message == "" {
		return nil
	}
	return strings.Split(message, "\n")
}

// after returns the trimmed text following the first occurrence of marker
func after(line, marker string) string {
	idx := strings.Index(line, marker)
	return strings.TrimSpace(line[idx+len(marker):])
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
