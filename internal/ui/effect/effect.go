// Package effect models the window background effects the shell accepts.
// The names mirror the platform vibrancy materials; on platforms without
// compositor support the effect resolves to None and the window stays
// opaque.
package effect

// Effect is a window background effect.
type Effect int

const (
	None Effect = iota
	Sidebar
	Header
	Sheet
	Menu
	Popover
	HUDWindow
	Titlebar
	Selection
	ContentBackground
	WindowBackground
)

var names = map[Effect]string{
	None:              "none",
	Sidebar:           "sidebar",
	Header:            "header",
	Sheet:             "sheet",
	Menu:              "menu",
	Popover:           "popover",
	HUDWindow:         "hudWindow",
	Titlebar:          "titlebar",
	Selection:         "selection",
	ContentBackground: "contentBackground",
	WindowBackground:  "windowBackground",
}

var byName = func() map[string]Effect {
	m := make(map[string]Effect, len(names))
	for e, n := range names {
		m[n] = e
	}
	return m
}()

func (e Effect) String() string {
	if n, ok := names[e]; ok {
		return n
	}
	return "none"
}

// Parse maps a configured effect name to an Effect. Unknown names resolve
// to None rather than failing; a cosmetic setting never blocks startup.
func Parse(name string) Effect {
	if e, ok := byName[name]; ok {
		return e
	}
	return None
}

// Translucent reports whether the effect wants an alpha channel on the
// window surface.
func (e Effect) Translucent() bool {
	return e != None
}
