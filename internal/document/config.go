package document

import (
	"fmt"
	"regexp"
)

// Margins of the page, in DXA.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Config is the global style sheet and page layout applied to every
// assembled document. It is resolved once and never mutated afterwards.
type Config struct {
	// Font is the default run font. Default "Arial".
	Font string
	// FontSize is the default run size in half-points. Default 22.
	FontSize int
	// TitleSize is the Title style size. Default 36.
	TitleSize int
	// Heading1Size is the Heading1 style size. Default 28.
	Heading1Size int
	// Heading2Size is the Heading2 style size. Default 24.
	Heading2Size int
	// Margins default to 720 on every side.
	Margins Margins
	// BorderColor of regular cell borders. Default "000000".
	BorderColor string
	// HeaderBackground is the fill behind ShadeHeader cells. Default "E8E8E8".
	HeaderBackground string
	// LightBorderColor of BorderLight cells. Default "CCCCCC".
	LightBorderColor string
}

// DefaultConfig returns the house style.
func DefaultConfig() Config {
	return Config{
		Font:             "Arial",
		FontSize:         22,
		TitleSize:        36,
		Heading1Size:     28,
		Heading2Size:     24,
		Margins:          Margins{Top: 720, Right: 720, Bottom: 720, Left: 720},
		BorderColor:      "000000",
		HeaderBackground: "E8E8E8",
		LightBorderColor: "CCCCCC",
	}
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Validate reports the first field that cannot be written to a document.
func (c Config) Validate() error {
	if c.Font == "" {
		return fmt.Errorf("font must not be empty")
	}
	for name, v := range map[string]int{
		"font size":     c.FontSize,
		"title size":    c.TitleSize,
		"heading1 size": c.Heading1Size,
		"heading2 size": c.Heading2Size,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	m := c.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return fmt.Errorf("margins must not be negative: %+v", m)
	}
	for name, v := range map[string]string{
		"border color":      c.BorderColor,
		"header background": c.HeaderBackground,
		"light border":      c.LightBorderColor,
	} {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("%s %q is not a 6-digit hex color", name, v)
		}
	}
	return nil
}
