// Package window builds the host application window that embedded surfaces
// are placed into. Must run on the GTK main loop.
package window

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/infinitty/infinitty/internal/config"
	"github.com/infinitty/infinitty/internal/ui/effect"
)

// Window is the host application window. Surfaces are absolutely positioned
// children of its canvas.
type Window struct {
	label  string
	win    *gtk.ApplicationWindow
	canvas *gtk.Fixed
	effect effect.Effect
	log    zerolog.Logger
}

// New creates the host window for app with the configured dimensions.
func New(app *gtk.Application, cfg config.WindowConfig, log zerolog.Logger) *Window {
	label := fmt.Sprintf("window-%s", uuid.NewString())

	win := gtk.NewApplicationWindow(app)
	win.SetTitle("Infinitty")
	win.SetDefaultSize(cfg.Width, cfg.Height)
	win.SetSizeRequest(cfg.MinWidth, cfg.MinHeight)

	canvas := gtk.NewFixed()
	win.SetChild(canvas)

	w := &Window{
		label:  label,
		win:    win,
		canvas: canvas,
		effect: effect.Parse(cfg.Effect),
		log:    log.With().Str("window", label).Logger(),
	}
	w.applyEffect()
	return w
}

// Label returns the window's unique label.
func (w *Window) Label() string { return w.label }

// Canvas returns the container surfaces are placed on.
func (w *Window) Canvas() *gtk.Fixed { return w.canvas }

// Present shows the window.
func (w *Window) Present() {
	w.win.Present()
	w.log.Debug().Msg("window presented")
}

// Close closes the window.
func (w *Window) Close() {
	w.win.Close()
}

// applyEffect requests a translucent surface when the configured effect
// wants one. GTK has no vibrancy materials; the compositor decides what the
// alpha channel looks like.
func (w *Window) applyEffect() {
	if !w.effect.Translucent() {
		return
	}
	w.win.AddCSSClass("translucent")
	w.log.Debug().Str("effect", w.effect.String()).Msg("window effect applied")
}
