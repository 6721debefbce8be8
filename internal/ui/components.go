package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// Spinner frames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// Arrow returns an arrow indicator for selection
func Arrow(selected bool) string {
	if selected {
		return "▶ "
	}
	return "  "
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// StatusIcon returns the appropriate status icon and color
func StatusIcon(ok bool) (string, lipgloss.Color) {
	if ok {
		return "✓", ColorGreen
	}
	return "✗", ColorRed
}

// Bullet renders a list entry with a colored dash
func Bullet(text string, color lipgloss.Color) string {
	dash := lipgloss.NewStyle().Foreground(color).Render("  - ")
	return dash + text
}

// TagBadge renders a tag as a bracketed colored label
func TagBadge(tag string) string {
	return lipgloss.NewStyle().Foreground(TagColor(tag)).Bold(true).Render("[" + tag + "]")
}

// CommitListItem renders a single commit row for the browser list
func CommitListItem(hash, subject string, ok, highlighted bool, width int) string {
	icon, iconColor := StatusIcon(ok)

	var style lipgloss.Style
	if highlighted {
		style = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	} else {
		style = lipgloss.NewStyle().Foreground(ColorWhite)
	}
	hashStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	iconStyle := lipgloss.NewStyle().Foreground(iconColor)

	// arrow (2) + icon (1) + spaces (2) + hash (7)
	subject = Truncate(subject, width-12)

	return fmt.Sprintf("%s%s %s %s",
		style.Render(Arrow(highlighted)),
		iconStyle.Render(icon),
		hashStyle.Render(hash),
		style.Render(subject),
	)
}

// UnifiedPanel creates two columns with a vertical separator
func UnifiedPanel(leftContent, rightContent string, leftWidth, rightWidth int) string {
	leftStyle := lipgloss.NewStyle().Width(leftWidth).Padding(0, 1)
	rightStyle := lipgloss.NewStyle().Width(rightWidth).Padding(0, 1)

	leftCol := leftStyle.Render(leftContent)
	rightCol := rightStyle.Render(rightContent)

	// Build vertical separator to match column height
	separatorStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	separator := separatorStyle.Render("│")

	maxLines := max(lipgloss.Height(leftCol), lipgloss.Height(rightCol))
	sepLines := make([]string, maxLines)
	for i := range sepLines {
		sepLines[i] = separator
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, strings.Join(sepLines, "\n"), rightCol)
}

// Truncate shortens s to maxLen runes, adding an ellipsis when cut
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 {
		return ""
	}
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
