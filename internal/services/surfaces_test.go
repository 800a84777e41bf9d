package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitty/infinitty/internal/application/port"
)

// fakeHost is an in-memory SurfaceHost. Surfaces can be killed behind the
// registry's back to simulate the user closing one directly.
type fakeHost struct {
	mu        sync.Mutex
	surfaces  map[string]*fakeSurface
	attachErr error
}

type fakeSurface struct {
	host      *fakeHost
	id        string
	url       string
	userAgent string
	geo       port.Geometry
	scripts   []string
	closed    bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{surfaces: make(map[string]*fakeSurface)}
}

func (h *fakeHost) Attach(_ context.Context, spec port.AttachSpec) error {
	if h.attachErr != nil {
		return h.attachErr
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.surfaces[spec.ID] = &fakeSurface{
		host:      h,
		id:        spec.ID,
		url:       spec.URL,
		userAgent: spec.UserAgent,
		geo:       spec.Geometry,
	}
	return nil
}

func (h *fakeHost) Surface(id string) (port.Surface, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.surfaces[id]
	if !ok || s.closed {
		return nil, false
	}
	return s, true
}

// kill closes a native surface without going through the service.
func (h *fakeHost) kill(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.surfaces, id)
}

func (s *fakeSurface) SetBounds(geo port.Geometry) error {
	s.geo = geo
	return nil
}

func (s *fakeSurface) Move(x, y float64) error {
	s.geo.X, s.geo.Y = x, y
	return nil
}

func (s *fakeSurface) Bounds() port.Geometry { return s.geo }

func (s *fakeSurface) Navigate(url string) error {
	s.url = url
	return nil
}

func (s *fakeSurface) RunScript(script string) error {
	s.scripts = append(s.scripts, script)
	return nil
}

func (s *fakeSurface) Close() error {
	s.host.mu.Lock()
	defer s.host.mu.Unlock()
	s.closed = true
	delete(s.host.surfaces, s.id)
	return nil
}

func newService(host port.SurfaceHost) *SurfaceService {
	return NewSurfaceService(host, nil, zerolog.Nop())
}

func TestCreateRegistersTrustedSurface(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	id, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{Width: 400, Height: 300})
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	rec, ok := svc.Record("p1")
	require.True(t, ok)
	assert.True(t, rec.Trusted)
	assert.Equal(t, "example.com", rec.URL.Host)

	native := host.surfaces["p1"]
	require.NotNil(t, native)
	assert.Contains(t, native.userAgent, "Chrome")
}

func TestCreateRejectedByPolicyLeavesNoState(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "http://10.0.0.5", port.Geometry{})
	require.Error(t, err)
	assert.Equal(t, "blocked private IP: 10.0.0.5", err.Error())

	_, ok := svc.Record("p1")
	assert.False(t, ok)
	assert.Empty(t, host.surfaces)
}

func TestCreateMalformedURL(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeHost())

	_, err := svc.Create(context.Background(), "p1", "http://exa mple.com", port.Geometry{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed url")
}

func TestCreateReplacesExistingID(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "https://one.example.com", port.Geometry{})
	require.NoError(t, err)
	first := host.surfaces["p1"]

	_, err = svc.Create(context.Background(), "p1", "https://two.example.com", port.Geometry{})
	require.NoError(t, err)

	assert.True(t, first.closed, "previous native surface closed on replace")
	rec, ok := svc.Record("p1")
	require.True(t, ok)
	assert.Equal(t, "two.example.com", rec.URL.Host)
}

func TestUpdateBoundsNotFound(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeHost())

	err := svc.UpdateBounds("ghost", port.Geometry{Width: 10, Height: 10})
	assert.ErrorIs(t, err, port.ErrSurfaceNotFound)
}

func TestNavigateValidationFailureLeavesRegistryUntouched(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{})
	require.NoError(t, err)

	err = svc.Navigate("p1", "http://10.0.0.5")
	require.Error(t, err)

	rec, _ := svc.Record("p1")
	assert.Equal(t, "example.com", rec.URL.Host)
	assert.Equal(t, "https://example.com", host.surfaces["p1"].url)
}

func TestNavigateUpdatesRegistryOnSuccess(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{})
	require.NoError(t, err)

	require.NoError(t, svc.Navigate("p1", "https://docs.example.com/page"))

	rec, _ := svc.Record("p1")
	assert.Equal(t, "docs.example.com", rec.URL.Host)
	assert.True(t, rec.Trusted, "trust is unchanged by navigation")
}

func TestNavigateNotFound(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeHost())
	err := svc.Navigate("ghost", "https://example.com")
	assert.ErrorIs(t, err, port.ErrSurfaceNotFound)
}

func TestDestroyIsIdempotent(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{})
	require.NoError(t, err)

	svc.Destroy("p1")
	svc.Destroy("p1")

	_, ok := svc.Record("p1")
	assert.False(t, ok)
}

func TestExecuteScriptUnknownIDGetsTrustDenial(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeHost())

	_, err := svc.ExecuteScript("never-created", "document.title")
	assert.ErrorIs(t, err, ErrNotTrusted)
}

func TestExecuteScriptSizeCeilingCheckedFirst(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeHost())

	// Even for an id that was never created, an oversized payload is
	// rejected as too large, before the trust check.
	script := strings.Repeat("a", 100_001)
	_, err := svc.ExecuteScript("never-created", script)
	assert.ErrorIs(t, err, ErrScriptTooLarge)
}

func TestExecuteScriptAtCeilingPasses(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{})
	require.NoError(t, err)

	result, err := svc.ExecuteScript("p1", strings.Repeat("a", 100_000))
	require.NoError(t, err)
	assert.Equal(t, "executed", result)
}

func TestExecuteScriptNativeGoneReportsNotFound(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{})
	require.NoError(t, err)

	// The user closes the native surface directly; the registry entry
	// survives and still passes the trust gate, but the final native
	// lookup reports not found.
	host.kill("p1")

	_, err = svc.ExecuteScript("p1", "document.title")
	assert.ErrorIs(t, err, port.ErrSurfaceNotFound)
}

func TestHideAllMovesOnlyRegisteredSurfaces(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{X: 5, Y: 5, Width: 100, Height: 100})
	require.NoError(t, err)

	// An orphaned native surface outside the registry.
	require.NoError(t, host.Attach(context.Background(), port.AttachSpec{
		ID: "orphan", URL: "https://example.org", Geometry: port.Geometry{X: 7, Y: 7},
	}))

	svc.HideAll()

	assert.Equal(t, -10000.0, host.surfaces["p1"].geo.X)
	assert.Equal(t, -10000.0, host.surfaces["p1"].geo.Y)
	assert.Equal(t, 100.0, host.surfaces["p1"].geo.Width, "size untouched")
	assert.Equal(t, 7.0, host.surfaces["orphan"].geo.X, "orphan unaffected")
}

func TestLifecycleScenario(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	id, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{Width: 400, Height: 300})
	require.NoError(t, err)
	require.Equal(t, "p1", id)

	rec, ok := svc.Record("p1")
	require.True(t, ok)
	require.True(t, rec.Trusted)

	err = svc.Navigate("p1", "http://10.0.0.5")
	require.Error(t, err)
	rec, _ = svc.Record("p1")
	require.Equal(t, "example.com", rec.URL.Host)

	result, err := svc.ExecuteScript("p1", "document.title")
	require.NoError(t, err)
	require.Equal(t, "executed", result)

	svc.Destroy("p1")

	_, err = svc.ExecuteScript("p1", "x")
	assert.ErrorIs(t, err, ErrNotTrusted)
}

func TestLayoutSkipsDeadNativeSurfaces(t *testing.T) {
	t.Parallel()
	host := newFakeHost()
	svc := newService(host)

	_, err := svc.Create(context.Background(), "p1", "https://example.com", port.Geometry{X: 1, Y: 2, Width: 3, Height: 4})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "p2", "https://example.org", port.Geometry{})
	require.NoError(t, err)

	host.kill("p2")

	entries := svc.Layout()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ID)
	assert.Equal(t, "https://example.com", entries[0].URL)
	assert.Equal(t, port.Geometry{X: 1, Y: 2, Width: 3, Height: 4}, entries[0].Geometry)
}
