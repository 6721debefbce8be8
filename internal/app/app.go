package app

import (
	"time"

	"github.com/wahlandcase/attuned.commitmsg/internal/config"
	"github.com/wahlandcase/attuned.commitmsg/internal/git"
	"github.com/wahlandcase/attuned.commitmsg/internal/models"
	"github.com/wahlandcase/attuned.commitmsg/internal/parser"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the main application state
type Model struct {
	// Configuration
	config   *config.Config
	parser   *parser.Parser
	repoPath string
	rangeOpt git.RangeOptions

	// Navigation
	screen     Screen
	shouldQuit bool

	// Browse state
	commits []models.ParsedCommit
	cursor  int

	// UI state
	errorMessage string
	spinnerFrame int

	// Window size
	width  int
	height int
}

// New creates a new application model that loads base..head from repoPath
func New(cfg *config.Config, p *parser.Parser, repoPath string, opts git.RangeOptions) Model {
	return Model{
		config:   cfg,
		parser:   p,
		repoPath: repoPath,
		rangeOpt: opts,
		screen:   ScreenLoading,
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		loadCommitsCmd(m.repoPath, m.rangeOpt, m.parser),
	)
}

// tickMsg is sent on each tick for the loading spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Commits returns the loaded commits
func (m Model) Commits() []models.ParsedCommit {
	return m.commits
}

// Selected returns the highlighted commit, if any
func (m Model) Selected() (models.ParsedCommit, bool) {
	if m.cursor < 0 || m.cursor >= len(m.commits) {
		return models.ParsedCommit{}, false
	}
	return m.commits[m.cursor], true
}

// Screen returns the current screen
func (m Model) Screen() Screen {
	return m.screen
}

// subtitle describes the loaded range for the banner
func (m Model) subtitle() string {
	head := m.rangeOpt.Head
	if head == "" {
		head = "HEAD"
	}
	if m.rangeOpt.Base == "" {
		return head
	}
	return m.rangeOpt.Base + ".." + head
}
