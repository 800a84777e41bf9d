package services

import (
	"context"

	"github.com/rs/zerolog"
)

// SessionStore persists the surface layout between runs.
type SessionStore interface {
	SaveLayout(ctx context.Context, entries []LayoutEntry) error
	LoadLayout(ctx context.Context) ([]LayoutEntry, error)
}

// SessionService snapshots the live surface layout on shutdown and replays
// it on startup. Restore goes through SurfaceService.Create, so every
// persisted destination is re-validated by the URL policy; entries that no
// longer pass are dropped, not errors.
type SessionService struct {
	store    SessionStore
	surfaces *SurfaceService
	log      zerolog.Logger
}

// NewSessionService creates the session persistence service.
func NewSessionService(store SessionStore, surfaces *SurfaceService, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:    store,
		surfaces: surfaces,
		log:      log.With().Str("component", "session").Logger(),
	}
}

// ServiceName returns the service name.
func (s *SessionService) ServiceName() string {
	return "SessionService"
}

// Save persists the current layout.
func (s *SessionService) Save(ctx context.Context) error {
	entries := s.surfaces.Layout()
	if err := s.store.SaveLayout(ctx, entries); err != nil {
		return err
	}
	s.log.Debug().Int("surfaces", len(entries)).Msg("session saved")
	return nil
}

// Restore recreates the persisted surfaces. Returns the number of surfaces
// actually restored.
func (s *SessionService) Restore(ctx context.Context) (int, error) {
	entries, err := s.store.LoadLayout(ctx)
	if err != nil {
		return 0, err
	}

	restored := 0
	for _, e := range entries {
		if _, err := s.surfaces.Create(ctx, e.ID, e.URL, e.Geometry); err != nil {
			s.log.Warn().Str("surface_id", e.ID).Str("url", e.URL).Err(err).Msg("skipping persisted surface")
			continue
		}
		restored++
	}
	return restored, nil
}
