// Package entity holds the domain records the shell keeps about its
// embedded surfaces.
package entity

import "net/url"

// SurfaceRecord is the bookkeeping entry for one live embedded surface.
// It does not own the native rendering surface; the host window does. The
// record can therefore outlive the native surface, and every operation has
// to re-check the native side at point of use.
type SurfaceRecord struct {
	// URL is the last destination that passed validation, parsed.
	URL *url.URL

	// Trusted marks the surface as eligible for script injection. It is
	// set only at creation time by the creating code path, never by
	// embedded content, and cannot be flipped back on a live record.
	Trusted bool
}
