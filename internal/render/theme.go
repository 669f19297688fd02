package render

import "github.com/charmbracelet/lipgloss"

// Theme contains the styles used to draw grids and run summaries.
type Theme struct {
	// Cell styles
	Empty        lipgloss.Style
	Wall         lipgloss.Style
	Rock         lipgloss.Style
	Deflector    lipgloss.Style
	Enemy        lipgloss.Style
	EnemyWounded lipgloss.Style // Enemy already hit by at least one origin
	Bomb         lipgloss.Style
	Piercing     lipgloss.Style

	// Text styles
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Error lipgloss.Style
}

// DefaultTheme returns the default theme built on r.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Empty:        r.NewStyle().Foreground(lipgloss.Color("238")),            // Dark gray
		Wall:         r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true), // White
		Rock:         r.NewStyle().Foreground(lipgloss.Color("137")),            // Brown
		Deflector:    r.NewStyle().Foreground(lipgloss.Color("51")),             // Bright cyan
		Enemy:        r.NewStyle().Foreground(lipgloss.Color("46")),             // Lime green
		EnemyWounded: r.NewStyle().Foreground(lipgloss.Color("226")),            // Bright yellow
		Bomb:         r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true), // Orange
		Piercing:     r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink

		Title: r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label: r.NewStyle().Foreground(lipgloss.Color("245")),
		Value: r.NewStyle().Foreground(lipgloss.Color("255")),
		Error: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// MonochromeTheme returns a grayscale theme built on r.
func MonochromeTheme(r *lipgloss.Renderer) Theme {
	theme := DefaultTheme(r)
	theme.Deflector = r.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Enemy = r.NewStyle().Foreground(lipgloss.Color("252"))
	theme.EnemyWounded = r.NewStyle().Foreground(lipgloss.Color("245"))
	theme.Bomb = r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Piercing = r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	return theme
}
