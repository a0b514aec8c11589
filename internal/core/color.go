package core

// Color is a terminal colour understood by the platform renderer.
// It holds either an ANSI 256-color code ("245") or a hex triplet ("#EDE5DA").
// The zero value means "use the terminal default".
type Color string

// Predefined colors for HUD elements.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
	ColorYellow  Color = "3"
	ColorWhite   Color = "7"
	ColorGray    Color = "245"
)

// Style is the foreground/background pair attached to a screen cell.
type Style struct {
	Fg Color
	Bg Color
}

// IsDefault reports whether the style leaves both colours at terminal defaults.
func (s Style) IsDefault() bool {
	return s.Fg == ColorDefault && s.Bg == ColorDefault
}
