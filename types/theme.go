package types

const DefaultColorTheme = "rose"

// ColorTheme is a cosmetic palette; the client applies the HSL values.
type ColorTheme struct {
	Name       string `json:"name"`
	Mood       string `json:"mood"`
	Hue        int    `json:"h"`
	Saturation int    `json:"s"`
	Lightness  int    `json:"l"`
}

var ColorThemes = map[string]ColorTheme{
	"rose":     {Name: "Rose", Mood: "warm & nurturing", Hue: 355, Saturation: 25, Lightness: 35},
	"coral":    {Name: "Coral", Mood: "energizing & uplifting", Hue: 16, Saturation: 65, Lightness: 55},
	"lavender": {Name: "Lavender", Mood: "calming & peaceful", Hue: 270, Saturation: 35, Lightness: 50},
	"sage":     {Name: "Sage", Mood: "grounding & balanced", Hue: 140, Saturation: 25, Lightness: 45},
	"ocean":    {Name: "Ocean", Mood: "serene & refreshing", Hue: 200, Saturation: 45, Lightness: 45},
	"sunshine": {Name: "Sunshine", Mood: "joyful & optimistic", Hue: 45, Saturation: 75, Lightness: 50},
}

type GetThemesResponse struct {
	Success bool                  `json:"success"`
	Themes  map[string]ColorTheme `json:"themes"`
}
