package ui

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/wahlandcase/attuned.commitmsg/internal/models"
	"github.com/wahlandcase/attuned.commitmsg/internal/parser"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// RenderOptions controls text rendering of a commit message
type RenderOptions struct {
	// TaskURL returns a link for a task id; nil or "" shows the id only
	TaskURL func(id int) string
}

// RenderCommitMessage renders every field of msg as titled sections
func RenderCommitMessage(msg *models.CommitMessage, opts RenderOptions) string {
	var lines []string

	lines = append(lines, SectionHeader("Title", ColorTitle))
	lines = append(lines, Bullet(lipgloss.NewStyle().Bold(true).Render(msg.Title()), ColorTitle))

	lines = append(lines, "", SectionHeader("Task ID", ColorTaskID))
	lines = append(lines, Bullet(renderTaskID(msg, opts), ColorTaskID))

	lines = append(lines, "", SectionHeader("Tags", ColorTags))
	for _, tag := range msg.Tags() {
		lines = append(lines, Bullet(TagBadge(tag), ColorTags))
	}

	lines = appendSection(lines, "Details", ColorDetails, msg.Details())
	lines = appendSection(lines, "BC Breaks", ColorBCBreak, msg.BCBreaks())
	lines = appendSection(lines, "TODOs", ColorTodo, msg.Todos())

	return strings.Join(lines, "\n")
}

func appendSection(lines []string, title string, color lipgloss.Color, items []string) []string {
	lines = append(lines, "", SectionHeader(title, color))
	for _, item := range items {
		lines = append(lines, Bullet(item, color))
	}
	return lines
}

func renderTaskID(msg *models.CommitMessage, opts RenderOptions) string {
	id, ok := msg.TaskID()
	if !ok {
		return "N/A"
	}

	text := "#" + strconv.Itoa(id)
	if opts.TaskURL != nil {
		if url := opts.TaskURL(id); url != "" {
			urlStyle := lipgloss.NewStyle().Foreground(ColorCyan).Underline(true)
			text += "  " + urlStyle.Render(url)
		}
	}
	return text
}

// RenderError renders a failure as a red status line,
// listing the missing fields when err is an InvalidFormatError
func RenderError(err error) string {
	errStyle := lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	line := errStyle.Render("✗ Error: " + err.Error())

	var formatErr *parser.InvalidFormatError
	if errors.As(err, &formatErr) && len(formatErr.Missing) > 0 {
		line += "\n" + dimStyle.Render("  missing: "+strings.Join(formatErr.Missing, ", "))
	}
	return line
}

// RenderCommitList renders a one-line summary per commit followed by a valid/total footer
func RenderCommitList(commits []models.ParsedCommit) string {
	var lines []string
	for _, c := range commits {
		subject := c.Subject
		if c.OK() {
			subject = c.Message.Title()
		}
		line := CommitListItem(c.Hash, subject, c.OK(), false, 80)
		if c.OK() {
			var tags []string
			for _, tag := range c.Message.Tags() {
				tags = append(tags, TagBadge(tag))
			}
			line += " " + strings.Join(tags, " ")
		}
		lines = append(lines, line)
	}

	footerStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	lines = append(lines, "", footerStyle.Render(
		strconv.Itoa(models.CountValid(commits))+"/"+strconv.Itoa(len(commits))+" commits valid",
	))
	return strings.Join(lines, "\n")
}

// RenderJSON encodes v as indented JSON
func RenderJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RenderYAML encodes v as YAML
func RenderYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// CommitDocs converts commits to their serializable form
func CommitDocs(commits []models.ParsedCommit) []models.ParsedCommitDoc {
	docs := make([]models.ParsedCommitDoc, 0, len(commits))
	for _, c := range commits {
		docs = append(docs, c.Doc())
	}
	return docs
}
