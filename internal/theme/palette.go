package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the presentation values a renderer needs for one theme.
type Palette struct {
	// Page surface
	NavBackground string // CSS background-color of the navigation bar
	AvatarFilter  string // CSS filter applied to avatar images

	// Terminal surface
	Foreground lipgloss.Color
	Background lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

var palettes = map[Theme]Palette{
	Dark: {
		NavBackground: "rgba(26, 26, 46, 0.95)",
		AvatarFilter:  "none",
		Foreground:    lipgloss.Color("#E6E6FA"),
		Background:    lipgloss.Color("#1A1A2E"),
		Accent:        lipgloss.Color("#00F7FF"),
		Muted:         lipgloss.Color("#7F7FA6"),
		Border:        lipgloss.Color("#3A3A5E"),
	},
	Light: {
		NavBackground: "rgba(240, 240, 255, 0.95)",
		AvatarFilter:  "brightness(1.05) contrast(1.1)",
		Foreground:    lipgloss.Color("#1A1A2E"),
		Background:    lipgloss.Color("#F0F0FF"),
		Accent:        lipgloss.Color("#6A00F4"),
		Muted:         lipgloss.Color("#6B6B8C"),
		Border:        lipgloss.Color("#B8B8D9"),
	},
}

// PaletteFor returns the palette for t, falling back to the Default palette
// for invalid values.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Default]
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// StylesFor builds terminal styles for t.
func StylesFor(t Theme) Styles {
	p := PaletteFor(t)
	return Styles{
		Frame: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Background).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Background).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Background),
		Status: lipgloss.NewStyle().
			Foreground(p.Muted),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true),
	}
}
