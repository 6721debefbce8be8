package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art header of the interactive browser
var Banner = []string{
	"    _  _____ _____ __  __ ____   ____ ",
	"   / \\|_   _|_   _|  \\/  / ___| / ___|",
	"  / _ \\ | |   | | | |\\/| \\___ \\| |  _ ",
	" / ___ \\| |   | | | |  | |___) | |_| |",
	"/_/   \\_\\_|   |_| |_|  |_|____/ \\____|",
}

// RenderBanner returns the styled banner as a string, with an optional subtitle line
func RenderBanner(subtitle string) string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(ColorCyan).
		Align(lipgloss.Center)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	if subtitle != "" {
		lines = append(lines, "")
		subtitleStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Align(lipgloss.Center)
		lines = append(lines, subtitleStyle.Render(subtitle))
	}

	return strings.Join(lines, "\n")
}

// BannerHeight returns the number of lines RenderBanner produces
func BannerHeight(subtitle string) int {
	if subtitle != "" {
		return len(Banner) + 2
	}
	return len(Banner)
}
