// Package ui provides terminal styling for CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple): field names, ids
// - Muted (gray): secondary detail
// - No colored success/error - unicode symbols only

var (
	// Accent style for field names and node ids
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)
