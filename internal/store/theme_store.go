package store

// Theme names the visual presentation applied to an itinerary view.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSunset Theme = "sunset"
	ThemeOcean  Theme = "ocean"
	ThemeForest Theme = "forest"
	ThemeSakura Theme = "sakura"
)

// DefaultTheme applies when no selection has been saved.
const DefaultTheme = ThemeLight

var validThemes = map[Theme]bool{
	ThemeLight:  true,
	ThemeDark:   true,
	ThemeSunset: true,
	ThemeOcean:  true,
	ThemeForest: true,
	ThemeSakura: true,
}

// ValidTheme reports whether t is a known theme name.
func ValidTheme(t Theme) bool {
	return validThemes[t]
}

// ThemeStore holds the active theme selection.
type ThemeStore struct {
	*Container[Theme]
}

// NewThemeStore creates a store with the default theme applied.
func NewThemeStore() *ThemeStore {
	return &ThemeStore{NewContainer(DefaultTheme)}
}

// SetTheme switches the active theme. Unknown names fall back to the default.
func (s *ThemeStore) SetTheme(t Theme) {
	if !ValidTheme(t) {
		t = DefaultTheme
	}
	s.Update(func(Theme) Theme { return t })
}
