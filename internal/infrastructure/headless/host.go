// Package headless implements port.SurfaceHost without a display server.
// Each surface runs scripts in its own sobek runtime, which is enough for
// session tooling, tests, and running on machines without WebKitGTK.
package headless

import (
	"context"
	"fmt"
	"sync"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"

	"github.com/infinitty/infinitty/internal/application/port"
)

// Host keeps headless surfaces in a map keyed by id.
type Host struct {
	mu       sync.Mutex
	surfaces map[string]*surface
	log      zerolog.Logger
}

func NewHost(log zerolog.Logger) *Host {
	return &Host{
		surfaces: make(map[string]*surface),
		log:      log.With().Str("component", "headless").Logger(),
	}
}

func (h *Host) Attach(_ context.Context, spec port.AttachSpec) error {
	s := &surface{
		host:      h,
		id:        spec.ID,
		url:       spec.URL,
		userAgent: spec.UserAgent,
		geo:       spec.Geometry,
		vm:        sobek.New(),
	}
	if err := s.resetDocument(); err != nil {
		return fmt.Errorf("init runtime for %s: %w", spec.ID, err)
	}

	h.mu.Lock()
	h.surfaces[spec.ID] = s
	h.mu.Unlock()

	h.log.Debug().Str("id", spec.ID).Str("url", spec.URL).Msg("surface attached")
	return nil
}

func (h *Host) Surface(id string) (port.Surface, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.surfaces[id]
	if !ok {
		return nil, false
	}
	return s, true
}

type surface struct {
	host      *Host
	id        string
	url       string
	userAgent string

	mu  sync.Mutex
	geo port.Geometry
	vm  *sobek.Runtime
}

// resetDocument rebuilds the minimal page globals after attach or navigation.
func (s *surface) resetDocument() error {
	doc := s.vm.NewObject()
	if err := doc.Set("URL", s.url); err != nil {
		return err
	}
	if err := doc.Set("title", ""); err != nil {
		return err
	}
	if err := s.vm.Set("document", doc); err != nil {
		return err
	}

	nav := s.vm.NewObject()
	if err := nav.Set("userAgent", s.userAgent); err != nil {
		return err
	}
	return s.vm.Set("navigator", nav)
}

func (s *surface) SetBounds(geo port.Geometry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geo = geo
	return nil
}

func (s *surface) Move(x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geo.X, s.geo.Y = x, y
	return nil
}

func (s *surface) Bounds() port.Geometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geo
}

func (s *surface) Navigate(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.url = url
	return s.resetDocument()
}

func (s *surface) RunScript(script string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.vm.RunString(script); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}

func (s *surface) Close() error {
	s.host.mu.Lock()
	defer s.host.mu.Unlock()
	delete(s.host.surfaces, s.id)
	return nil
}

var (
	_ port.SurfaceHost = (*Host)(nil)
	_ port.Surface     = (*surface)(nil)
)
