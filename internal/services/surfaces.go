package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/rs/zerolog"

	"github.com/infinitty/infinitty/internal/application/port"
	"github.com/infinitty/infinitty/internal/config"
	"github.com/infinitty/infinitty/internal/domain/entity"
	"github.com/infinitty/infinitty/internal/security"
)

// Surfaces moved here are effectively invisible without destroying their
// native state; ShowAll relies on the UI re-sending bounds afterwards.
const offscreenCoord = -10000.0

var (
	// ErrScriptTooLarge rejects oversized injection payloads before any
	// registry lookup.
	ErrScriptTooLarge = errors.New("script too large")

	// ErrNotTrusted covers both "id never existed" and "exists but
	// untrusted" so a caller cannot probe for surface existence.
	ErrNotTrusted = errors.New("webview is not trusted for script execution")
)

// LayoutEntry is one surface's position in a saved window layout.
type LayoutEntry struct {
	ID       string
	URL      string
	Geometry port.Geometry
}

// SurfaceService tracks embedded web surfaces and gates every operation on
// them. It is the single source of truth for which surfaces exist and
// whether they may be scripted.
//
// The registry map is guarded by one mutex held only for map access;
// native host calls happen outside the lock, so the registry and the
// native side can briefly disagree. The native lookup at point of use is
// the correctness backstop.
type SurfaceService struct {
	mu      sync.Mutex
	records map[string]*entity.SurfaceRecord

	host           port.SurfaceHost
	userAgent      string
	maxScriptChars int
	log            zerolog.Logger
}

// NewSurfaceService creates the surface registry service.
func NewSurfaceService(host port.SurfaceHost, cfg *config.Config, log zerolog.Logger) *SurfaceService {
	ua := config.ChromeUserAgent
	maxChars := config.DefaultMaxScriptChars
	if cfg != nil {
		if cfg.Surfaces.UserAgent != "" {
			ua = cfg.Surfaces.UserAgent
		}
		if cfg.Surfaces.MaxScriptChars > 0 {
			maxChars = cfg.Surfaces.MaxScriptChars
		}
	}

	return &SurfaceService{
		records:        make(map[string]*entity.SurfaceRecord),
		host:           host,
		userAgent:      ua,
		maxScriptChars: maxChars,
		log:            log.With().Str("component", "surfaces").Logger(),
	}
}

// ServiceName returns the service name.
func (s *SurfaceService) ServiceName() string {
	return "SurfaceService"
}

// Create validates url, attaches a native surface as a child of the host
// window and registers it. An existing surface with the same id is closed
// first; replacing is not an error. Every surface created through this
// path is trusted: creation only ever happens from the UI layer.
func (s *SurfaceService) Create(ctx context.Context, id, rawURL string, geo port.Geometry) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("malformed url: %w", err)
	}
	if err := security.ValidateExternalURL(parsed); err != nil {
		return "", err
	}

	if existing, ok := s.host.Surface(id); ok {
		_ = existing.Close()
	}

	spec := port.AttachSpec{
		ID:        id,
		URL:       parsed.String(),
		UserAgent: s.userAgent,
		Geometry:  geo,
	}
	if err := s.host.Attach(ctx, spec); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.records[id] = &entity.SurfaceRecord{URL: parsed, Trusted: true}
	s.mu.Unlock()

	s.log.Debug().Str("surface_id", id).Str("url", parsed.String()).Msg("surface created")
	return id, nil
}

// UpdateBounds repositions and resizes the native surface. The registry is
// untouched and no policy runs: geometry comes from the UI layout engine,
// not from content.
func (s *SurfaceService) UpdateBounds(id string, geo port.Geometry) error {
	surface, ok := s.host.Surface(id)
	if !ok {
		return port.ErrSurfaceNotFound
	}
	return surface.SetBounds(geo)
}

// Navigate validates url before touching anything, then updates the native
// surface and the registry's url field. Trust is unchanged. A validation
// failure leaves both sides exactly as they were.
func (s *SurfaceService) Navigate(id, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed url: %w", err)
	}
	if err := security.ValidateExternalURL(parsed); err != nil {
		return err
	}

	surface, ok := s.host.Surface(id)
	if !ok {
		return port.ErrSurfaceNotFound
	}
	if err := surface.Navigate(parsed.String()); err != nil {
		return err
	}

	s.mu.Lock()
	if rec, ok := s.records[id]; ok {
		rec.URL = parsed
	}
	s.mu.Unlock()

	return nil
}

// Destroy removes the registry entry first, then closes the native surface
// if it still exists. Destroying an absent id succeeds; the user may have
// closed the surface directly.
func (s *SurfaceService) Destroy(id string) {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()

	if surface, ok := s.host.Surface(id); ok {
		_ = surface.Close()
	}

	s.log.Debug().Str("surface_id", id).Msg("surface destroyed")
}

// ExecuteScript injects script into a surface. The size ceiling is checked
// before any lookup to bound injection cost; the trust gate deliberately
// answers the same way for unknown and untrusted ids.
func (s *SurfaceService) ExecuteScript(id, script string) (string, error) {
	if len(script) > s.maxScriptChars {
		return "", ErrScriptTooLarge
	}

	s.mu.Lock()
	rec, ok := s.records[id]
	trusted := ok && rec.Trusted
	s.mu.Unlock()

	if !trusted {
		return "", ErrNotTrusted
	}

	surface, ok := s.host.Surface(id)
	if !ok {
		return "", port.ErrSurfaceNotFound
	}
	if err := surface.RunScript(script); err != nil {
		return "", err
	}
	return "executed", nil
}

// HideAll moves every registered surface off-screen. Orphaned native
// surfaces that are no longer in the registry are left alone. The registry
// itself is not modified.
func (s *SurfaceService) HideAll() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		if surface, ok := s.host.Surface(id); ok {
			_ = surface.Move(offscreenCoord, offscreenCoord)
		}
	}
}

// ShowAll performs no geometry change; the UI re-sends bounds per surface
// afterwards. Keeping no "last visible geometry" in the registry is a
// deliberate trade.
func (s *SurfaceService) ShowAll() {
	s.log.Debug().Msg("show all surfaces requested; awaiting bounds updates")
}

// Record returns a copy of the bookkeeping entry for id.
func (s *SurfaceService) Record(id string) (entity.SurfaceRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return entity.SurfaceRecord{}, false
	}
	return *rec, true
}

// Layout snapshots the current surfaces with their native geometry, for
// session persistence. Surfaces whose native side is already gone are
// skipped.
func (s *SurfaceService) Layout() []LayoutEntry {
	s.mu.Lock()
	type pair struct {
		id  string
		url string
	}
	pairs := make([]pair, 0, len(s.records))
	for id, rec := range s.records {
		pairs = append(pairs, pair{id: id, url: rec.URL.String()})
	}
	s.mu.Unlock()

	entries := make([]LayoutEntry, 0, len(pairs))
	for _, p := range pairs {
		surface, ok := s.host.Surface(p.id)
		if !ok {
			continue
		}
		entries = append(entries, LayoutEntry{ID: p.id, URL: p.url, Geometry: surface.Bounds()})
	}
	return entries
}

// Cleanup destroys every registered surface.
func (s *SurfaceService) Cleanup() error {
	s.mu.Lock()
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		s.Destroy(id)
	}
	return nil
}

var _ Cleanable = (*SurfaceService)(nil)
