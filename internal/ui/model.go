package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridian-tui/meridian/internal/input"
	"github.com/meridian-tui/meridian/internal/logging"
	"github.com/meridian-tui/meridian/internal/notify"
	"github.com/meridian-tui/meridian/internal/services"
)

type uiState int

const (
	stateList uiState = iota
	stateConfirmingDelete
	stateHelp
)

// Model is the root Bubble Tea model. It is the external collaborator of
// the input core: raw keys go to the dispatcher, built-in mode transitions
// come back already applied, and everything else is interpreted here.
type Model struct {
	confirmDelete *Dialog
	currentView   string
	cursors       map[string]int
	dispatcher    *input.Dispatcher
	filterInput   textinput.Model
	filterSaved   string // committed filter restored when search is cancelled
	filters       map[string]string
	groupService  *services.GroupService
	height        int
	itemService   *services.ItemService
	notifications *notify.Store
	pendingDelete []string
	state         uiState
	userService   *services.UserService
	width         int
}

// NewModel wires the root model. The dispatcher arrives with its registry
// already populated; the model registers the live view states.
func NewModel(
	dispatcher *input.Dispatcher,
	notifications *notify.Store,
	itemService *services.ItemService,
	userService *services.UserService,
	groupService *services.GroupService,
) *Model {
	filterInput := textinput.New()
	filterInput.Prompt = "/"
	filterInput.Placeholder = "search"
	filterInput.CharLimit = 64

	m := &Model{
		currentView:   ViewItems,
		cursors:       map[string]int{},
		dispatcher:    dispatcher,
		filterInput:   filterInput,
		filters:       map[string]string{},
		groupService:  groupService,
		itemService:   itemService,
		notifications: notifications,
		state:         stateList,
		userService:   userService,
	}

	for _, viewID := range []string{ViewItems, ViewUsers, ViewGroups} {
		dispatcher.RegisterView(viewID)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.tickCmd())
}

// viewState returns the live state of the current view.
func (m *Model) viewState() *input.ViewState {
	return m.dispatcher.State(m.currentView)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Expired notifications drop out of List() on their own; the tick
		// only forces a redraw.
		return m, m.tickCmd()

	case refreshDoneMsg:
		if msg.err != nil {
			logging.Logger.Error("Portal refresh failed", "error", msg.err)
			m.notifications.Error(msg.err.Error())
		}
		m.syncCursor()
		return m, nil

	case opDoneMsg:
		// Success or rollback, the cache changed either way.
		m.syncCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Overlays consume every non-key message they asked for
	if m.state == stateConfirmingDelete && m.confirmDelete != nil {
		_, cmd := m.confirmDelete.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes one key event. Exactly one dispatcher resolution happens
// per event; overlays bypass the dispatcher because their focused widgets
// own the keyboard.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateHelp:
		if msg.String() == "esc" || msg.String() == "q" || msg.String() == "?" {
			m.state = stateList
		}
		return m, nil

	case stateConfirmingDelete:
		return m.updateConfirmDelete(msg)
	}

	keyName := msg.String()
	state := m.viewState()
	inSearch := state.Mode() == input.ModeSearch

	action := m.dispatcher.HandleKey(m.currentView, keyName)

	switch action {
	case input.ActionNone:
		if inSearch {
			// Unbound keys feed the search box while it is focused
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.filters[m.currentView] = m.filterInput.Value()
			m.syncCursor()
			return m, cmd
		}
		return m, nil

	case input.ActionOpenSearch:
		m.filterSaved = m.filters[m.currentView]
		m.filterInput.SetValue(m.filterSaved)
		m.filterInput.Focus()
		return m, textinput.Blink

	case input.ActionCloseSearch:
		m.filterInput.Blur()
		m.filters[m.currentView] = m.filterInput.Value()
		m.syncCursor()
		return m, nil

	case input.ActionEscape:
		if inSearch {
			// Escape cancels the search, restoring the committed filter
			m.filterInput.Blur()
			m.filterInput.SetValue(m.filterSaved)
			m.filters[m.currentView] = m.filterSaved
			m.syncCursor()
		}
		return m, nil

	case input.ActionToggleSelection, input.ActionClearSelection:
		return m, nil

	case ActionCursorDown:
		m.moveCursor(1)
		return m, nil
	case ActionCursorUp:
		m.moveCursor(-1)
		return m, nil

	case ActionViewItems:
		return m.switchView(ViewItems)
	case ActionViewUsers:
		return m.switchView(ViewUsers)
	case ActionViewGroups:
		return m.switchView(ViewGroups)

	case ActionRefresh:
		return m, m.refreshCmd()

	case ActionHelp:
		m.state = stateHelp
		return m, nil

	case ActionQuit:
		return m, tea.Quit

	case ActionDeleteItems:
		return m.startDelete()

	case ActionCycleSharing:
		return m, m.cycleSharingCmd()

	case ActionToggleUser:
		return m, m.toggleUserCmd()

	case ActionCycleUserRole:
		return m, m.cycleUserRoleCmd()
	}

	logging.Logger.Debug("Unhandled action", "action", action, "view", m.currentView)
	return m, nil
}

func (m *Model) switchView(viewID string) (tea.Model, tea.Cmd) {
	if m.currentView == viewID {
		return m, nil
	}
	m.currentView = viewID
	m.filterInput.Blur()
	m.filterInput.SetValue(m.filters[viewID])
	m.syncCursor()
	return m, nil
}

// startDelete opens the confirmation dialog for the delete target: the
// selection when one exists, the current row otherwise.
func (m *Model) startDelete() (tea.Model, tea.Cmd) {
	state := m.viewState()

	ids := state.SelectedIDs()
	if len(ids) == 0 && state.CurrentItemID != "" {
		ids = []string{state.CurrentItemID}
	}
	if len(ids) == 0 {
		return m, nil
	}

	labels := make([]string, 0, len(ids))
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	for _, item := range m.itemService.Items() {
		if wanted[item.ID] {
			labels = append(labels, item.Title)
		}
	}

	m.pendingDelete = ids
	m.confirmDelete = NewDialog("Confirm deletion", NewConfirmDeleteForm(labels))
	m.state = stateConfirmingDelete
	state.OpenInput()
	return m, m.confirmDelete.Init()
}

func (m *Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.confirmDelete.Update(msg)

	form, ok := m.confirmDelete.Content().(*ConfirmDeleteForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	state := m.viewState()
	state.CloseInput()
	m.state = stateList
	m.confirmDelete = nil

	ids := m.pendingDelete
	m.pendingDelete = nil
	if !form.Confirmed {
		return m, nil
	}

	state.ClearSelection()
	return m, m.deleteItemsCmd(ids)
}

// moveCursor moves the current row and keeps ViewState.CurrentItemID in
// step.
func (m *Model) moveCursor(delta int) {
	rows := m.visibleRowIDs()
	if len(rows) == 0 {
		return
	}
	cursor := m.cursors[m.currentView] + delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(rows)-1 {
		cursor = len(rows) - 1
	}
	m.cursors[m.currentView] = cursor
	m.viewState().CurrentItemID = rows[cursor]
}

// syncCursor re-clamps the cursor after the underlying collection changed.
func (m *Model) syncCursor() {
	rows := m.visibleRowIDs()
	state := m.viewState()
	if len(rows) == 0 {
		m.cursors[m.currentView] = 0
		state.CurrentItemID = ""
		return
	}
	cursor := m.cursors[m.currentView]
	if cursor > len(rows)-1 {
		cursor = len(rows) - 1
	}
	m.cursors[m.currentView] = cursor
	state.CurrentItemID = rows[cursor]
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.itemService.Refresh(ctx); err != nil {
			return refreshDoneMsg{err: err}
		}
		if err := m.userService.Refresh(ctx); err != nil {
			return refreshDoneMsg{err: err}
		}
		if err := m.groupService.Refresh(ctx); err != nil {
			return refreshDoneMsg{err: err}
		}
		return refreshDoneMsg{}
	}
}

// deleteItemsCmd runs the optimistic bulk delete off the event loop; the
// coordinator reconciles and notifies before the opDoneMsg arrives.
func (m *Model) deleteItemsCmd(ids []string) tea.Cmd {
	return func() tea.Msg {
		err := m.itemService.DeleteItems(context.Background(), ids)
		return opDoneMsg{err: err}
	}
}

func (m *Model) cycleSharingCmd() tea.Cmd {
	state := m.viewState()
	ids := state.SelectedIDs()
	if len(ids) == 0 && state.CurrentItemID != "" {
		ids = []string{state.CurrentItemID}
	}
	if len(ids) == 0 {
		return nil
	}

	// Cycle from the first target's current level
	next := nextSharing(m.itemService.Items(), ids[0])
	return func() tea.Msg {
		err := m.itemService.UpdateSharing(context.Background(), ids, next)
		return opDoneMsg{err: err}
	}
}

func (m *Model) toggleUserCmd() tea.Cmd {
	username := m.viewState().CurrentItemID
	if username == "" {
		return nil
	}
	var disabled bool
	for _, user := range m.userService.Users() {
		if user.Username == username {
			disabled = !user.Disabled
			break
		}
	}
	return func() tea.Msg {
		err := m.userService.SetDisabled(context.Background(), username, disabled)
		return opDoneMsg{err: err}
	}
}

func (m *Model) cycleUserRoleCmd() tea.Cmd {
	username := m.viewState().CurrentItemID
	if username == "" {
		return nil
	}
	next := nextRole(m.userService.Users(), username)
	return func() tea.Msg {
		err := m.userService.UpdateRole(context.Background(), username, next)
		return opDoneMsg{err: err}
	}
}
