// Package security holds the stateless policies that gate surface
// navigation and filesystem mutation.
//
// The URL policy is a best-effort, pre-connection check. It does not cover
// IPv6 private or link-local ranges, hostnames that resolve to private
// addresses, or redirects that happen inside a surface after the initial
// load. The path policy skips home-directory confinement entirely when the
// HOME environment variable is unset. Both gaps are accepted residual risk;
// callers must not treat a pass as proof that a destination is safe.
package security
