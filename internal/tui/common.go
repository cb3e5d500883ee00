package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color output of the plain commands
var (
	// ColorGreen for available books and success indicators
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for ISBNs and IDs
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for selection and books on loan
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorRed for errors
	ColorRed = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

// Reusable styles
var (
	// StyleNormal is the base style for regular text
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for selected items
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleAvailable marks books on the shelf
	StyleAvailable = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleOnLoan marks borrowed books
	StyleOnLoan = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleKey is for ISBNs and user IDs
	StyleKey = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleError is for validation messages
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleHelp is for help text and hints
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for section headers
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleBorder is for borders and separators
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)

// AvailabilityLabel renders a book's status word.
func AvailabilityLabel(available bool) string {
	if available {
		return StyleAvailable.Render("available")
	}
	return StyleOnLoan.Render("on loan")
}
