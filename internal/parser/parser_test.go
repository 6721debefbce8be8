package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportMessage = "[feature] Pridat novou funkci pro export dat.\n" +
	"* Implementace nove funkcionality pro export dat do CSV.\n" +
	"*Optimalizace vzkonu exportu.\n" +
	"BC: Zmeny ve formatu exportovanych dat.\n" +
	"#12345.\n" +
	"TODO: Aktualizovat dokumentaci."

func TestParse_ExportScenario(t *testing.T) {
	msg, err := Parse(exportMessage)
	require.NoError(t, err)

	assert.Equal(t, "Pridat novou funkci pro export dat.", msg.Title())
	id, ok := msg.TaskID()
	assert.True(t, ok)
	assert.Equal(t, 12345, id)
	assert.Equal(t, []string{"feature"}, msg.Tags())
	assert.Equal(t, []string{
		"Implementace nove funkcionality pro export dat do CSV.",
		"Optimalizace vzkonu exportu.",
	}, msg.Details())
	assert.Equal(t, []string{"Zmeny ve formatu exportovanych dat."}, msg.BCBreaks())
	assert.Equal(t, []string{"Aktualizovat dokumentaci."}, msg.Todos())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantMissing []string
	}{
		{
			name:        "empty input",
			message:     "",
			wantMissing: []string{"title", "details", "task_id", "tags", "bc_breaks", "todos"},
		},
		{
			name:        "nothing recognisable",
			message:     "just some lowercase words\n\n  more words\n",
			wantMissing: []string{"title", "details", "task_id", "tags", "bc_breaks", "todos"},
		},
		{
			name:        "missing bc break",
			message:     "[fix] Fix export\n* Details here\n#12\nTODO: more tests",
			wantMissing: []string{"bc_breaks"},
		},
		{
			name:        "missing todo",
			message:     "[fix] Fix export\n* Details here\n#12\nBC: API changed",
			wantMissing: []string{"todos"},
		},
		{
			name:        "missing details",
			message:     "[fix] Fix export\n#12\nBC: API changed\nTODO: more tests",
			wantMissing: []string{"details"},
		},
		{
			name:        "missing tags",
			message:     "Fix export\n* Details here\n#12\nBC: API changed\nTODO: more tests",
			wantMissing: []string{"tags"},
		},
		{
			name:        "only task id is zero",
			message:     "[fix] Fix export\n* Details here\n#0\nBC: API changed\nTODO: more tests",
			wantMissing: []string{"task_id"},
		},
		{
			name:        "hash without digits",
			message:     "[fix] Fix export\n* Details here\n#abc\nBC: API changed\nTODO: more tests",
			wantMissing: []string{"task_id"},
		},
		{
			name:        "unmatched bracket",
			message:     "[fix Fix export\n* Details here\n#12\nBC: API changed\nTODO: more tests",
			wantMissing: []string{"tags"},
		},
		{
			name:        "no uppercase letter anywhere",
			message:     "[fix] fix export\n* details here\n#12\nbc: nope\ntodo: nope",
			wantMissing: []string{"title", "bc_breaks", "todos"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Parse(tt.message)
			require.Error(t, err)
			assert.Nil(t, msg)
			assert.True(t, errors.Is(err, ErrInvalidFormat))
			assert.True(t, IsInvalidFormat(err))
			assert.Equal(t, "Invalid commit message format.", err.Error())

			var formatErr *InvalidFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.wantMissing, formatErr.Missing)
		})
	}
}

func TestParse_TaskIDLastLineWins(t *testing.T) {
	msg, err := Parse("[a] Title #1\n* d\n#22\nBC: b\nTODO: t\nsee #333 for context")
	require.NoError(t, err)

	id, _ := msg.TaskID()
	assert.Equal(t, 333, id)
}

func TestParse_TaskIDFirstOnLine(t *testing.T) {
	msg, err := Parse("[a] Title\n* d\nrefs #7 and #8\nBC: b\nTODO: t")
	require.NoError(t, err)

	id, _ := msg.TaskID()
	assert.Equal(t, 7, id)
}

func TestParse_TaskIDZeroOverwritesEarlier(t *testing.T) {
	_, err := Parse("[a] Title #5\n* d\nBC: b\nTODO: t\n#0")
	require.Error(t, err)

	var formatErr *InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, []string{"task_id"}, formatErr.Missing)
}

func TestParse_TagOrder(t *testing.T) {
	msg, err := Parse("[add] [feature] @core Integrate export\n* d [perf]\n#1\nBC: [api] changed\nTODO: t\n[feature]")
	require.NoError(t, err)

	assert.Equal(t, []string{"add", "feature", "perf", "api", "feature"}, msg.Tags())
}

func TestParse_EmptyBracketsYieldEmptyTag(t *testing.T) {
	msg, err := Parse("[] Title\n* d\n#1\nBC: b\nTODO: t")
	require.NoError(t, err)

	assert.Equal(t, []string{""}, msg.Tags())
}

func TestParse_TitleRules(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		wantTitle string
	}{
		{
			name:      "skips leading blank lines",
			message:   "\n   \n[x] First Title\n",
			wantTitle: "First Title",
		},
		{
			name:      "lowercase line does not block later title",
			message:   "[x] lowercase only\nsecond line Title here",
			wantTitle: "Title here",
		},
		{
			name:      "first title wins",
			message:   "[x] Alpha\nBeta",
			wantTitle: "Alpha",
		},
		{
			name:      "title taken from detail line",
			message:   "* Detail Title\n[x]",
			wantTitle: "Detail Title",
		},
		{
			name:      "trailing whitespace trimmed",
			message:   "[x] Spaced out   \t",
			wantTitle: "Spaced out",
		},
		{
			name:      "non ascii uppercase is ignored",
			message:   "[x] Élan vital Now",
			wantTitle: "Now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Parse(tt.message + "\n* d\n#9\nBC: b\nTODO: t")
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, msg.Title())
		})
	}
}

func TestParse_LineMatchesSeveralRules(t *testing.T) {
	msg, err := Parse("* [core] Rework loader #42 BC: loader API TODO: docs")
	require.NoError(t, err)

	assert.Equal(t, "Rework loader #42 BC: loader API TODO: docs", msg.Title())
	id, _ := msg.TaskID()
	assert.Equal(t, 42, id)
	assert.Equal(t, []string{"core"}, msg.Tags())
	assert.Equal(t, []string{"[core] Rework loader #42 BC: loader API TODO: docs"}, msg.Details())
	assert.Equal(t, []string{"loader API TODO: docs"}, msg.BCBreaks())
	assert.Equal(t, []string{"docs"}, msg.Todos())
}

func TestParse_DetailRequiresLeadingStar(t *testing.T) {
	msg, err := Parse("[x] Title\n * indented is not a detail\n*real\n#1\nBC: b\nTODO: t")
	require.NoError(t, err)

	assert.Equal(t, []string{"real"}, msg.Details())
}

func TestParse_MarkersUseFirstOccurrence(t *testing.T) {
	msg, err := Parse("[x] Title\n*d\n#1\nnote BC: one BC: two\nTODO: a TODO: b")
	require.NoError(t, err)

	assert.Equal(t, []string{"one BC: two"}, msg.BCBreaks())
	assert.Equal(t, []string{"a TODO: b"}, msg.Todos())
}

func TestParse_Idempotent(t *testing.T) {
	p := New()
	first, err := p.Parse(exportMessage)
	require.NoError(t, err)
	second, err := p.Parse(exportMessage)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse_Concurrent(t *testing.T) {
	p := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg, err := p.Parse(exportMessage)
			if assert.NoError(t, err) {
				assert.Equal(t, []string{"feature"}, msg.Tags())
			}
		}()
	}
	wg.Wait()
}

func TestParse_CarriageReturnsAreTrimmed(t *testing.T) {
	msg, err := Parse(strings.ReplaceAll(exportMessage, "\n", "\r\n"))
	require.NoError(t, err)

	assert.Equal(t, "Pridat novou funkci pro export dat.", msg.Title())
	assert.Equal(t, []string{"Aktualizovat dokumentaci."}, msg.Todos())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte(exportMessage), 0644))

	msg, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Pridat novou funkci pro export dat.", msg.Title())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.False(t, IsInvalidFormat(err))
}

func TestInvalidFormatError_Detail(t *testing.T) {
	err := &InvalidFormatError{Missing: []string{"tags", "todos"}}
	assert.Equal(t, "Invalid commit message format. Missing: tags, todos", err.Detail())

	assert.Equal(t, "Invalid commit message format.", (&InvalidFormatError{}).Detail())
}

func TestDefaultRules_Order(t *testing.T) {
	var names []string
	for _, r := range defaultRules() {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{"title", "task_id", "tags", "bc_breaks", "todos", "details"}, names)
}
