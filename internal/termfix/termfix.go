// Package termfix adjusts terminal environment variables before lipgloss loads.
// Import this package FIRST (before any lipgloss/termenv imports) using:
//
//	_ "github.com/wahlandcase/attuned.commitmsg/internal/termfix"
package termfix

import "os"

func init() {
	// Warp stalls on terminal capability queries
	if os.Getenv("TERM_PROGRAM") == "WarpTerminal" {
		os.Setenv("TERM", "dumb")
		os.Setenv("COLORTERM", "truecolor")
	}

	// ATTMSG_NO_COLOR=1 behaves like NO_COLOR for this tool only
	if os.Getenv("ATTMSG_NO_COLOR") != "" {
		os.Setenv("NO_COLOR", "1")
	}
}
