package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.commitmsg/internal/models"
	"github.com/wahlandcase/attuned.commitmsg/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	subtitle := m.subtitle()
	statusHeight := 3 // status bar with border

	// Available height for content = total - banner - gaps - box border - status
	availableHeight := m.height - ui.BannerHeight(subtitle) - 3 - 2 - statusHeight
	if availableHeight < 8 {
		availableHeight = 8
	}

	var sections []string

	sections = append(sections, ui.RenderBanner(subtitle))
	sections = append(sections, "")

	outerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPurple).
		Width(m.contentWidth())

	sections = append(sections, outerBox.Render(m.renderContentWithHeight(availableHeight)))

	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	content := strings.Join(sections, "\n")

	// Center horizontally in the terminal
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderContentWithHeight(availableHeight int) string {
	switch m.screen {
	case ScreenLoading:
		return m.renderLoading()
	case ScreenBrowse:
		return m.renderBrowseWithHeight(availableHeight)
	case ScreenError:
		return m.renderError()
	default:
		return ""
	}
}

func (m Model) renderLoading() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	loadingText := fmt.Sprintf("%s %s",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		spinnerStyle.Render("Parsing commits..."),
	)

	centeredStyle := lipgloss.NewStyle().Width(m.contentWidth() - 2).Align(lipgloss.Center)
	return "\n\n" + centeredStyle.Render(loadingText) + "\n\n"
}

func (m Model) renderError() string {
	errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true).Padding(1, 2)
	return errStyle.Render("✗ " + m.errorMessage)
}

func (m Model) renderBrowseWithHeight(availableHeight int) string {
	totalWidth := m.contentWidth() - 1 // separator
	leftWidth := totalWidth * 2 / 5
	rightWidth := totalWidth - leftWidth

	// Header line: valid/total counter
	headerStyle := lipgloss.NewStyle().Foreground(ui.ColorPurple).Bold(true)
	header := headerStyle.Render(fmt.Sprintf("Commits (%d/%d valid)",
		models.CountValid(m.commits), len(m.commits)))

	lines := []string{header, ""}
	for i, c := range m.commits {
		lines = append(lines, ui.CommitListItem(c.Hash, c.Subject, c.OK(), i == m.cursor, leftWidth-2))
	}
	left := applyViewportScroll(lines, 2, m.cursor+2, availableHeight-2)

	return ui.UnifiedPanel(left, m.renderDetail(), leftWidth, rightWidth)
}

// renderDetail renders the parsed fields (or the parse error) of the selected commit
func (m Model) renderDetail() string {
	c, ok := m.Selected()
	if !ok {
		return ""
	}

	hashStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
	header := hashStyle.Render(c.Hash) + " " + c.Subject

	if !c.OK() {
		return header + "\n\n" + ui.RenderError(c.Err)
	}

	return header + "\n\n" + ui.RenderCommitMessage(c.Message, ui.RenderOptions{TaskURL: m.config.TaskURL})
}

// applyViewportScroll scrolls content to keep the highlighted line visible
func applyViewportScroll(lines []string, headerLines int, highlightedLine int, visibleLines int) string {
	if len(lines) <= headerLines+visibleLines {
		// No scrolling needed
		return strings.Join(lines, "\n")
	}

	// Keep header lines fixed
	header := lines[:headerLines]
	content := lines[headerLines:]

	scrollOffset := 0

	if highlightedLine >= headerLines {
		highlightInContent := highlightedLine - headerLines

		// Keep some padding around the highlighted item
		padding := 2
		if highlightInContent >= visibleLines-padding {
			scrollOffset = highlightInContent - visibleLines + padding + 1
		}
		if scrollOffset > len(content)-visibleLines {
			scrollOffset = len(content) - visibleLines
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}
	}

	endOffset := min(scrollOffset+visibleLines, len(content))

	visibleContent := make([]string, endOffset-scrollOffset)
	copy(visibleContent, content[scrollOffset:endOffset])

	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	if scrollOffset > 0 {
		visibleContent[0] = dimStyle.Render("  ▲ more above")
	}
	if endOffset < len(content) {
		visibleContent[len(visibleContent)-1] = dimStyle.Render("  ▼ more below")
	}

	return strings.Join(append(header, visibleContent...), "\n")
}

func (m Model) renderStatusBar() string {
	var hints []string

	switch m.screen {
	case ScreenLoading:
		hints = []string{
			ui.KeyBinding("Ctrl+C", "Quit", ui.ColorRed),
		}
	case ScreenBrowse:
		hints = []string{
			ui.KeyBinding("↑↓", "Navigate", ui.ColorWhite),
			ui.KeyBinding("g/G", "Top/Bottom", ui.ColorYellow),
			ui.KeyBinding("n", "Next invalid", ui.ColorRed),
			ui.KeyBinding("q", "Quit", ui.ColorRed),
		}
	case ScreenError:
		hints = []string{
			ui.KeyBinding("Enter", "Quit", ui.ColorRed),
		}
	}

	barStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorDarkGray).
		Width(m.contentWidth()).
		Padding(0, 1)

	return barStyle.Render(strings.Join(hints, "   "))
}
