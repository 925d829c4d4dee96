package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is hidden or cannot be interacted with.
	UIDisabled
)

// String returns a short name for logging.
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// UIComponent tracks the interaction state of a fan menu button.
// FanInputSystem writes it every frame, FanRenderSystem reads it to tint the button.
type UIComponent struct {
	// State is the current interaction state of the UI element.
	State UIState
}
