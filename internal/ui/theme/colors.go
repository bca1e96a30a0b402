// Package theme provides the theming and styling system for the log viewer.
// It includes the severity palette, adaptive colors for light/dark terminal
// themes, and pre-built lipgloss styles for consistent UI appearance.
package theme

import "github.com/charmbracelet/lipgloss"

// Accent colors
var (
	// Accent is the title and focus color.
	Accent = lipgloss.Color("86")

	// AccentDark is a darker accent for borders.
	AccentDark = lipgloss.Color("30")

	// Gray is a neutral gray for secondary elements.
	Gray = lipgloss.Color("241")
)

// Severity colors using the same 256-colour indices the facility writes.
var (
	// ColorDebug is gray.
	ColorDebug = lipgloss.AdaptiveColor{Light: "8", Dark: "7"}

	// ColorInfo is the terminal's foreground white.
	ColorInfo = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}

	// ColorWarning is yellow.
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}

	// ColorError is light red.
	ColorError = lipgloss.AdaptiveColor{Light: "9", Dark: "9"}

	// ColorFatal is red.
	ColorFatal = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
)

// Text and chrome colors with adaptive support.
var (
	// ColorText is the primary text color.
	ColorText = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"}

	// ColorTextMuted is for timestamps, call sites and help.
	ColorTextMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	// ColorBorder is the default border color.
	ColorBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#404040"}

	// ColorStatusBg is the background of the status bar.
	ColorStatusBg = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#262626"}
)

// High-contrast colors for accessibility.
var (
	HighContrastText    = lipgloss.Color("#FFFFFF")
	HighContrastMuted   = lipgloss.Color("#C0C0C0")
	HighContrastWarning = lipgloss.Color("#FFFF00")
	HighContrastError   = lipgloss.Color("#FF0000")
)
