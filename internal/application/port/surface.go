package port

import (
	"context"
	"errors"
)

// ErrSurfaceNotFound is returned when an operation targets a surface id
// with no live native counterpart. The native handle is owned by the host
// window and can disappear independently of any bookkeeping, so callers
// must treat this as an expected condition.
var ErrSurfaceNotFound = errors.New("webview not found")

// Geometry is a position and size in logical window coordinates.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// AttachSpec describes a new embedded surface.
type AttachSpec struct {
	ID        string
	URL       string
	UserAgent string
	Geometry  Geometry
}

// SurfaceHost owns native web surfaces attached to a host window.
//
// Implementations must tolerate Attach replacing an id whose previous
// surface was already closed, and Surface must report liveness at the
// moment of the call rather than cached state.
type SurfaceHost interface {
	// Attach creates a native surface and attaches it as a child of the
	// host window with auto-resize enabled.
	Attach(ctx context.Context, spec AttachSpec) error

	// Surface returns the live native surface for id, or false when it
	// does not exist or has been closed.
	Surface(id string) (Surface, bool)
}

// Surface is one live native web surface.
type Surface interface {
	// SetBounds repositions and resizes the surface.
	SetBounds(geo Geometry) error

	// Move repositions the surface without touching its size.
	Move(x, y float64) error

	// Bounds reports the current logical geometry.
	Bounds() Geometry

	// Navigate loads the given absolute URL.
	Navigate(url string) error

	// RunScript evaluates JavaScript inside the surface.
	RunScript(script string) error

	// Close destroys the native surface. Closing twice is not an error.
	Close() error
}
