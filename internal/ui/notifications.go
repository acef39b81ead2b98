package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meridian-tui/meridian/internal/notify"
	"github.com/meridian-tui/meridian/internal/theme"
)

// notificationsView renders the live notification queue, oldest first.
func (m *Model) notificationsView() string {
	notifications := m.notifications.List()
	if len(notifications) == 0 {
		return ""
	}

	var rows []string
	for _, n := range notifications {
		rows = append(rows, notificationStyle(n.Kind).Render("• "+n.Message))
	}
	return strings.Join(rows, "\n") + "\n"
}

func notificationStyle(kind notify.Kind) lipgloss.Style {
	switch kind {
	case notify.KindSuccess:
		return theme.NotifySuccessStyle
	case notify.KindError:
		return theme.NotifyErrorStyle
	case notify.KindWarning:
		return theme.NotifyWarningStyle
	}
	return theme.NotifyInfoStyle
}
