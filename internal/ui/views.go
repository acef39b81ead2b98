package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meridian-tui/meridian/internal/domain"
	"github.com/meridian-tui/meridian/internal/input"
	"github.com/meridian-tui/meridian/internal/theme"
)

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpView()
	case stateConfirmingDelete:
		if m.confirmDelete != nil {
			return m.confirmDelete.View()
		}
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.searchView())
	b.WriteString("\n")

	switch m.currentView {
	case ViewItems:
		b.WriteString(m.itemsView())
	case ViewUsers:
		b.WriteString(m.usersView())
	case ViewGroups:
		b.WriteString(m.groupsView())
	}

	b.WriteString("\n")
	b.WriteString(m.notificationsView())
	b.WriteString(m.footerView())
	return b.String()
}

func (m *Model) headerView() string {
	tabs := make([]string, 0, 3)
	for _, viewID := range []string{ViewItems, ViewUsers, ViewGroups} {
		label := viewID
		if viewID == m.currentView {
			tabs = append(tabs, theme.SubtitleStyle.Render(label))
			continue
		}
		tabs = append(tabs, theme.MutedStyle.Render(label))
	}
	return theme.AppNameStyle.Render("meridian") + "  " + strings.Join(tabs, " · ")
}

func (m *Model) searchView() string {
	if m.viewState().Mode() == input.ModeSearch {
		return m.filterInput.View()
	}
	if filter := m.filters[m.currentView]; filter != "" {
		return theme.MutedStyle.Render(fmt.Sprintf("filter: %s", filter))
	}
	return ""
}

// visibleRowIDs returns the ids of the rows currently shown, in display
// order, for cursor bookkeeping.
func (m *Model) visibleRowIDs() []string {
	switch m.currentView {
	case ViewItems:
		items := m.visibleItems()
		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		return ids
	case ViewUsers:
		users := m.visibleUsers()
		ids := make([]string, len(users))
		for i, user := range users {
			ids[i] = user.Username
		}
		return ids
	case ViewGroups:
		groups := m.visibleGroups()
		ids := make([]string, len(groups))
		for i, group := range groups {
			ids[i] = group.ID
		}
		return ids
	}
	return nil
}

// activeFilter is the live search text while searching, the committed
// filter otherwise.
func (m *Model) activeFilter() string {
	if m.viewState().Mode() == input.ModeSearch {
		return m.filterInput.Value()
	}
	return m.filters[m.currentView]
}

func matchesFilter(filter string, fields ...string) bool {
	if filter == "" {
		return true
	}
	filter = strings.ToLower(filter)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), filter) {
			return true
		}
	}
	return false
}

func (m *Model) visibleItems() []domain.Item {
	filter := m.activeFilter()
	var out []domain.Item
	for _, item := range m.itemService.Items() {
		if matchesFilter(filter, item.Title, item.Owner, string(item.Type)) {
			out = append(out, item)
		}
	}
	return out
}

func (m *Model) visibleUsers() []domain.User {
	filter := m.activeFilter()
	var out []domain.User
	for _, user := range m.userService.Users() {
		if matchesFilter(filter, user.Username, user.FullName) {
			out = append(out, user)
		}
	}
	return out
}

func (m *Model) visibleGroups() []domain.Group {
	filter := m.activeFilter()
	var out []domain.Group
	for _, group := range m.groupService.Groups() {
		if matchesFilter(filter, group.Title, group.Owner) {
			out = append(out, group)
		}
	}
	return out
}

func (m *Model) itemsView() string {
	items := m.visibleItems()
	if len(items) == 0 {
		return theme.MutedStyle.Render("  no items")
	}

	state := m.viewState()
	cursor := m.cursors[ViewItems]

	var rows []string
	for i, item := range items {
		marker := "  "
		if state.IsSelected(item.ID) {
			marker = theme.SelectedMarkStyle.Render("✓ ")
		}
		prefix := "  "
		if i == cursor {
			prefix = theme.CurrentRowStyle.Render("❯ ")
		}

		line := fmt.Sprintf("%-28s %-8s %-12s %s %s",
			truncate(item.Title, 28),
			item.Type,
			item.Owner,
			sharingBadge(item.Sharing),
			theme.MutedStyle.Render(item.Modified.Format("2006-01-02")),
		)
		if i == cursor {
			line = theme.CurrentRowStyle.Render(line)
		}
		rows = append(rows, prefix+marker+line)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) usersView() string {
	users := m.visibleUsers()
	if len(users) == 0 {
		return theme.MutedStyle.Render("  no users")
	}

	cursor := m.cursors[ViewUsers]

	var rows []string
	for i, user := range users {
		prefix := "  "
		if i == cursor {
			prefix = theme.CurrentRowStyle.Render("❯ ")
		}

		line := fmt.Sprintf("%-16s %-20s %-10s %s",
			user.Username,
			truncate(user.FullName, 20),
			user.Role,
			theme.MutedStyle.Render(user.LastLogin.Format("2006-01-02")),
		)
		switch {
		case user.Disabled:
			line = theme.DisabledRowStyle.Render(line)
		case i == cursor:
			line = theme.CurrentRowStyle.Render(line)
		}
		rows = append(rows, prefix+line)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) groupsView() string {
	groups := m.visibleGroups()
	if len(groups) == 0 {
		return theme.MutedStyle.Render("  no groups")
	}

	cursor := m.cursors[ViewGroups]

	var rows []string
	for i, group := range groups {
		prefix := "  "
		if i == cursor {
			prefix = theme.CurrentRowStyle.Render("❯ ")
		}
		line := fmt.Sprintf("%-24s %-12s %3d members  %s",
			truncate(group.Title, 24),
			group.Owner,
			group.MemberCount,
			theme.MutedStyle.Render(string(group.Access)),
		)
		if i == cursor {
			line = theme.CurrentRowStyle.Render(line)
		}
		rows = append(rows, prefix+line)
	}
	return strings.Join(rows, "\n")
}

func sharingBadge(sharing domain.SharingLevel) string {
	switch sharing {
	case domain.SharingPublic:
		return theme.SharingPublicStyle.Render("public ")
	case domain.SharingOrg:
		return theme.SharingOrgStyle.Render("org    ")
	default:
		return theme.SharingPrivateStyle.Render("private")
	}
}

func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// nextSharing cycles private → org → public → private starting from the
// item's current level.
func nextSharing(items []domain.Item, id string) domain.SharingLevel {
	current := domain.SharingPrivate
	for _, item := range items {
		if item.ID == id {
			current = item.Sharing
			break
		}
	}
	switch current {
	case domain.SharingPrivate:
		return domain.SharingOrg
	case domain.SharingOrg:
		return domain.SharingPublic
	default:
		return domain.SharingPrivate
	}
}

// nextRole cycles viewer → publisher → admin → viewer.
func nextRole(users []domain.User, username string) domain.Role {
	current := domain.RoleViewer
	for _, user := range users {
		if user.Username == username {
			current = user.Role
			break
		}
	}
	switch current {
	case domain.RoleViewer:
		return domain.RolePublisher
	case domain.RolePublisher:
		return domain.RoleAdmin
	default:
		return domain.RoleViewer
	}
}
