package models

import "encoding/json"

// CommitMessage holds the structured fields extracted from a commit message.
// It is immutable: accessors hand out copies of the underlying slices.
type CommitMessage struct {
	title    string
	taskID   *int
	tags     []string
	details  []string
	bcBreaks []string
	todos    []string
}

// NewCommitMessage creates a new CommitMessage. No validation happens here,
// the parser is responsible for only constructing complete records.
func NewCommitMessage(title string, taskID *int, tags, details, bcBreaks, todos []string) *CommitMessage {
	var id *int
	if taskID != nil {
		v := *taskID
		id = &v
	}
	return &CommitMessage{
		title:    title,
		taskID:   id,
		tags:     cloneStrings(tags),
		details:  cloneStrings(details),
		bcBreaks: cloneStrings(bcBreaks),
		todos:    cloneStrings(todos),
	}
}

// Title returns the summary line
func (m *CommitMessage) Title() string {
	return m.title
}

// TaskID returns the task reference and whether one was present
func (m *CommitMessage) TaskID() (int, bool) {
	if m.taskID == nil {
		return 0, false
	}
	return *m.taskID, true
}

// Tags returns the category labels in order of appearance
func (m *CommitMessage) Tags() []string {
	return cloneStrings(m.tags)
}

// Details returns the bullet-point explanations
func (m *CommitMessage) Details() []string {
	return cloneStrings(m.details)
}

// BCBreaks returns the backward-compatibility break notes
func (m *CommitMessage) BCBreaks() []string {
	return cloneStrings(m.bcBreaks)
}

// Todos returns the follow-up work notes
func (m *CommitMessage) Todos() []string {
	return cloneStrings(m.todos)
}

// commitMessageDoc is the serialized form of CommitMessage
type commitMessageDoc struct {
	Title    string   `json:"title" yaml:"title"`
	TaskID   *int     `json:"task_id" yaml:"task_id"`
	Tags     []string `json:"tags" yaml:"tags"`
	Details  []string `json:"details" yaml:"details"`
	BCBreaks []string `json:"bc_breaks" yaml:"bc_breaks"`
	Todos    []string `json:"todos" yaml:"todos"`
}

func (m *CommitMessage) doc() commitMessageDoc {
	return commitMessageDoc{
		Title:    m.title,
		TaskID:   m.taskID,
		Tags:     m.Tags(),
		Details:  m.Details(),
		BCBreaks: m.BCBreaks(),
		Todos:    m.Todos(),
	}
}

// MarshalJSON implements json.Marshaler
func (m *CommitMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.doc())
}

// MarshalYAML implements yaml.Marshaler
func (m *CommitMessage) MarshalYAML() (interface{}, error) {
	return m.doc(), nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
