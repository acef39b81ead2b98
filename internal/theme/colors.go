package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "32"  // Blue - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Notification colors
const (
	ColorNotifyError   Color = "196" // Bright red
	ColorNotifyInfo    Color = "39"  // Blue
	ColorNotifySuccess Color = "2"   // Green
	ColorNotifyWarning Color = "214" // Orange
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "220" // Yellow - selection markers
	ColorSubtle    Color = "245" // Light gray - labels
)

// Sharing level colors
const (
	ColorSharingOrg     Color = "3" // Yellow - org-wide
	ColorSharingPrivate Color = "8" // Gray - private
	ColorSharingPublic  Color = "2" // Green - public
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorMode      Color = "99"  // Purple - mode indicator
)
