// Package style provides shared brand colors and markers used by the CLI's
// diagnostic output. DOT rendering does not use it.
package style

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Readiness markers, per the ✔/✖ convention required of requirement dumps.
const (
	Ready    = "✔"
	NotReady = "✖"
	Warning  = "!"
)
