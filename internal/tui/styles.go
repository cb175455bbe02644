package tui

import (
	"github.com/azgeda96/secure-pass-vault/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	subtitleStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	toastStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	toastErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	badgeOnline  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badgeLocal   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	badgeOffline = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	badgeOther   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// statusBadge renders a status string with its dedicated color. Unknown
// statuses are free-form and get the default badge style.
func statusBadge(status string) string {
	switch status {
	case models.StatusOnline:
		return badgeOnline.Render("● " + status)
	case models.StatusLocal:
		return badgeLocal.Render("● " + status)
	case models.StatusOffline:
		return badgeOffline.Render("● " + status)
	default:
		return badgeOther.Render("● " + status)
	}
}
