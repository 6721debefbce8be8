package models

// ParsedCommit pairs a git commit with the result of parsing its message
type ParsedCommit struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// Subject is the first line of the commit message
	Subject string
	// Message is the parsed message, nil when parsing failed
	Message *CommitMessage
	// Err is the parse failure, nil on success
	Err error
}

// NewParsedCommit creates a new ParsedCommit
func NewParsedCommit(hash, subject string, message *CommitMessage, err error) ParsedCommit {
	return ParsedCommit{
		Hash:    hash,
		Subject: subject,
		Message: message,
		Err:     err,
	}
}

// OK returns true if the commit message parsed successfully
func (c ParsedCommit) OK() bool {
	return c.Err == nil && c.Message != nil
}

// ParsedCommitDoc is the serialized form of ParsedCommit
type ParsedCommitDoc struct {
	Hash    string         `json:"hash" yaml:"hash"`
	Subject string         `json:"subject" yaml:"subject"`
	Message *CommitMessage `json:"message,omitempty" yaml:"message,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Doc returns the serializable form of the commit
func (c ParsedCommit) Doc() ParsedCommitDoc {
	doc := ParsedCommitDoc{
		Hash:    c.Hash,
		Subject: c.Subject,
		Message: c.Message,
	}
	if c.Err != nil {
		doc.Error = c.Err.Error()
	}
	return doc
}

// CountValid returns the number of commits that parsed successfully
func CountValid(commits []ParsedCommit) int {
	n := 0
	for _, c := range commits {
		if c.OK() {
			n++
		}
	}
	return n
}
