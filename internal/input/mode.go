package input

// Mode represents the interaction mode of a view
type Mode string

const (
	ModeInput      Mode = "input"
	ModeNavigation Mode = "navigation"
	ModeSearch     Mode = "search"
	ModeSelection  Mode = "selection"
)

// overlay modes sit on top of the base mode and remember what was below
func (m Mode) isOverlay() bool {
	return m == ModeSearch || m == ModeInput
}
