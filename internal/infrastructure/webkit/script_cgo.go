//go:build webkit_cgo

package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4
#include <stdlib.h>
#include <webkit/webkit.h>
*/
import "C"

import (
	"unsafe"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
)

func (s *surfaceView) evaluate(js string) error {
	wv := (*C.WebKitWebView)(unsafe.Pointer(coreglib.InternObject(s.view).Native()))

	cjs := C.CString(js)
	defer C.free(unsafe.Pointer(cjs))

	// Fire-and-forget evaluation.
	// length: -1 (NUL-terminated), world_name/source_uri: NULL.
	C.webkit_web_view_evaluate_javascript(
		wv,
		(*C.gchar)(cjs),
		C.gssize(-1),
		nil, // world_name
		nil, // source_uri
		nil, // cancellable
		nil, // callback
		nil, // user_data
	)
	return nil
}
