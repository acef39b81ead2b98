package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	ModeStyle = lipgloss.NewStyle().
			Foreground(ColorMode).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedMarkStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Row styles
var (
	CurrentRowStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	DisabledRowStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Strikethrough(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Sharing level styles
var (
	SharingOrgStyle = lipgloss.NewStyle().
			Foreground(ColorSharingOrg)

	SharingPrivateStyle = lipgloss.NewStyle().
				Foreground(ColorSharingPrivate)

	SharingPublicStyle = lipgloss.NewStyle().
				Foreground(ColorSharingPublic)
)

// Notification styles
var (
	NotifyErrorStyle = lipgloss.NewStyle().
				Foreground(ColorNotifyError).
				Bold(true)

	NotifyInfoStyle = lipgloss.NewStyle().
			Foreground(ColorNotifyInfo)

	NotifySuccessStyle = lipgloss.NewStyle().
				Foreground(ColorNotifySuccess)

	NotifyWarningStyle = lipgloss.NewStyle().
				Foreground(ColorNotifyWarning)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
