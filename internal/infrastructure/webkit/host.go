// Package webkit implements port.SurfaceHost on WebKitGTK 6 through gotk4.
// All methods must be called from the GTK main loop.
package webkit

import (
	"context"
	"fmt"
	"sync"

	webkitgtk "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/infinitty/infinitty/internal/application/port"
)

// Host places WebKit views on a gtk.Fixed container at absolute coordinates.
type Host struct {
	container *gtk.Fixed
	log       zerolog.Logger

	mu    sync.Mutex
	views map[string]*surfaceView
}

// NewHost creates a host that parents its views under container.
func NewHost(container *gtk.Fixed, log zerolog.Logger) *Host {
	return &Host{
		container: container,
		log:       log.With().Str("component", "webkit").Logger(),
		views:     make(map[string]*surfaceView),
	}
}

func (h *Host) Attach(_ context.Context, spec port.AttachSpec) error {
	view := webkitgtk.NewWebView()
	if view == nil {
		return fmt.Errorf("webkit: could not create web view for %s", spec.ID)
	}

	if spec.UserAgent != "" {
		view.Settings().SetUserAgent(spec.UserAgent)
	}

	geo := spec.Geometry
	view.SetSizeRequest(int(geo.Width), int(geo.Height))
	h.container.Put(view, geo.X, geo.Y)
	view.LoadURI(spec.URL)

	s := &surfaceView{host: h, id: spec.ID, view: view, geo: geo}

	h.mu.Lock()
	h.views[spec.ID] = s
	h.mu.Unlock()

	h.log.Debug().Str("id", spec.ID).Str("url", spec.URL).Msg("surface attached")
	return nil
}

func (h *Host) Surface(id string) (port.Surface, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.views[id]
	if !ok {
		return nil, false
	}
	return s, true
}

type surfaceView struct {
	host *Host
	id   string
	view *webkitgtk.WebView
	geo  port.Geometry
}

func (s *surfaceView) SetBounds(geo port.Geometry) error {
	s.view.SetSizeRequest(int(geo.Width), int(geo.Height))
	s.host.container.Move(s.view, geo.X, geo.Y)
	s.geo = geo
	return nil
}

func (s *surfaceView) Move(x, y float64) error {
	s.host.container.Move(s.view, x, y)
	s.geo.X, s.geo.Y = x, y
	return nil
}

func (s *surfaceView) Bounds() port.Geometry { return s.geo }

func (s *surfaceView) Navigate(url string) error {
	s.view.LoadURI(url)
	return nil
}

func (s *surfaceView) RunScript(script string) error {
	return s.evaluate(script)
}

func (s *surfaceView) Close() error {
	s.host.mu.Lock()
	delete(s.host.views, s.id)
	s.host.mu.Unlock()

	s.host.container.Remove(s.view)
	return nil
}

var (
	_ port.SurfaceHost = (*Host)(nil)
	_ port.Surface     = (*surfaceView)(nil)
)
