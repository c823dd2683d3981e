// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/plureonic/cashflow/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7AA2F7") // Blue
	// SuccessColor indicates successful operations and money coming in.
	SuccessColor = lipgloss.Color("#9ECE6A") // Green
	// ErrorColor indicates failures and money going out.
	ErrorColor = lipgloss.Color("#F7768E") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#7DCFFF") // Light blue
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#565F89") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(InfoColor)

	// InflowStyle colors inflow amounts.
	InflowStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// OutflowStyle colors outflow amounts.
	OutflowStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	InfoIcon    = "ℹ"
	LedgerIcon  = "💸"
)

// FormatTitle formats a section title with the ledger icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(LedgerIcon + " " + title)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatMoney renders a plain dollar amount.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatAmount renders a dollar amount signed and colored by direction.
func FormatAmount(amount float64, direction model.Direction) string {
	if direction == model.Outflow {
		return OutflowStyle.Render("-" + FormatMoney(amount))
	}
	return InflowStyle.Render("+" + FormatMoney(amount))
}
