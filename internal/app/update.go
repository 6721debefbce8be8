package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// pageSize is how far pgup/pgdown move the cursor
const pageSize = 10

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Spinner only runs while loading
		if m.screen != ScreenLoading {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	case commitsLoadedResult:
		return m.handleCommitsLoaded(msg)
	}

	return m, nil
}

func (m Model) handleCommitsLoaded(msg commitsLoadedResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	if len(msg.commits) == 0 {
		m.errorMessage = "No commits in range " + m.subtitle()
		m.screen = ScreenError
		return m, nil
	}

	m.commits = msg.commits
	m.cursor = 0
	m.screen = ScreenBrowse
	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenBrowse:
		return m.handleBrowseKey(msg)
	case ScreenError:
		return m.handleErrorKey(msg)
	}

	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(m.commits) - 1

	switch msg.String() {
	case "q", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < last {
			m.cursor++
		}
	case "pgup":
		m.cursor = max(m.cursor-pageSize, 0)
	case "pgdown":
		m.cursor = min(m.cursor+pageSize, last)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = last
	case "n":
		m.cursor = m.nextInvalid()
	}

	return m, nil
}

// nextInvalid returns the index of the next failed commit after the cursor,
// wrapping around; the cursor is unchanged if every commit parsed
func (m Model) nextInvalid() int {
	for i := 1; i <= len(m.commits); i++ {
		idx := (m.cursor + i) % len(m.commits)
		if !m.commits[idx].OK() {
			return idx
		}
	}
	return m.cursor
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}
