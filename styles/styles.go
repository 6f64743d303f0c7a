package styles

import "github.com/charmbracelet/lipgloss"

// Feedback line styles
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12"))
}

func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)
}

func Info(message string) string {
	return InfoStyle().Render(message)
}

func Warning(message string) string {
	return WarningStyle().Render(message)
}

func Error(message string) string {
	return ErrorStyle().Render(message)
}

// YesNo renders a boolean the way the attributes table expects it:
// bright yellow "Yes", bright red "No".
func YesNo(value bool) string {
	if value {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("Yes")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("No")
}

// SafeURL renders a URL cell, substituting a neutral placeholder when the
// source data carried no URL.
func SafeURL(url string) string {
	if url == "" {
		return lipgloss.NewStyle().Faint(true).Render("None")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Underline(true).Render(url)
}
