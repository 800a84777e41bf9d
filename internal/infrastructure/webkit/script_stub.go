//go:build !webkit_cgo

package webkit

// evaluate is a no-op without the webkit_cgo build tag. The gotk4 bindings do
// not expose webkit_web_view_evaluate_javascript, so script evaluation needs
// the cgo-backed variant.
func (s *surfaceView) evaluate(js string) error {
	_ = js
	return nil
}
