// Package colors holds the color presets used by the terminal UI and the
// human-readable CLI output
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Todo state colors
	Done    string `yaml:"done"`
	Pending string `yaml:"pending"`
	Delete  string `yaml:"delete"`

	// UI element colors
	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Done, preset.Done)
	fill(&c.Pending, preset.Pending)
	fill(&c.Delete, preset.Delete)
	fill(&c.Border, preset.Border)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Error, preset.Error)
}

// MergeFrom overrides values with the non-empty fields of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Done, other.Done)
	merge(&c.Pending, other.Pending)
	merge(&c.Delete, other.Delete)
	merge(&c.Border, other.Border)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Error, other.Error)
}
