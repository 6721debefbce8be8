package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorBlue     = lipgloss.Color("#5555FF")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// Section colors, one per extracted field
var (
	ColorTitle   = ColorCyan
	ColorTaskID  = ColorMagenta
	ColorTags    = ColorBlue
	ColorDetails = ColorGreen
	ColorBCBreak = ColorRed
	ColorTodo    = ColorYellow
)

// DisableColor forces plain output for every lipgloss style
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// TagColor picks a stable color for a tag label
func TagColor(tag string) lipgloss.Color {
	switch tag {
	case "feature", "add":
		return ColorGreen
	case "bugfix", "fix":
		return ColorOrange
	case "refactor":
		return ColorPurple
	case "security":
		return ColorRed
	default:
		return ColorBlue
	}
}
