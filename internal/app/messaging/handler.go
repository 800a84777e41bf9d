// Package messaging dispatches requests from the UI layer to the services.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/infinitty/infinitty/internal/application/port"
	"github.com/infinitty/infinitty/internal/services"
)

// Message is one request from the UI layer.
type Message struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	URL  string `json:"url"`
	// Geometry
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Script execution
	Script string `json:"script"`
	// Filesystem operations
	Path        string `json:"path"`
	OldPath     string `json:"oldPath"`
	NewPath     string `json:"newPath"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	IsDirectory bool   `json:"isDirectory"`
	// Request tracking
	RequestID string `json:"requestId"`
}

// Result is the reply for one message. Error carries the failure text
// verbatim; the UI shows it to the user.
type Result struct {
	OK        bool   `json:"ok"`
	Value     string `json:"value,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Handler routes messages to the surface and filesystem services.
type Handler struct {
	surfaces *services.SurfaceService
	files    *services.FileService
	session  *services.SessionService
	vcs      port.VersionControl
	log      zerolog.Logger
}

// NewHandler creates a message handler.
func NewHandler(surfaces *services.SurfaceService, files *services.FileService, log zerolog.Logger) *Handler {
	return &Handler{
		surfaces: surfaces,
		files:    files,
		log:      log.With().Str("component", "messaging").Logger(),
	}
}

// SetSessionService enables the session_save and session_restore messages.
func (h *Handler) SetSessionService(session *services.SessionService) {
	h.session = session
}

// SetVersionControl enables version control messages.
func (h *Handler) SetVersionControl(vcs port.VersionControl) {
	h.vcs = vcs
}

// Handle decodes and dispatches one message. It always returns a Result;
// failures are reported in Result.Error rather than dropped.
func (h *Handler) Handle(ctx context.Context, payload []byte) Result {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		h.log.Error().Err(err).Msg("failed to unmarshal message")
		return Result{Error: fmt.Sprintf("malformed message: %v", err)}
	}
	return h.dispatch(ctx, msg)
}

// HandleJSON is Handle with the reply marshaled back to JSON.
func (h *Handler) HandleJSON(ctx context.Context, payload []byte) []byte {
	result := h.Handle(ctx, payload)
	out, err := json.Marshal(result)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to marshal result")
		return []byte(`{"ok":false,"error":"internal error"}`)
	}
	return out
}

func (h *Handler) dispatch(ctx context.Context, msg Message) Result {
	reply := func(value string, err error) Result {
		if err != nil {
			return Result{Error: err.Error(), RequestID: msg.RequestID}
		}
		return Result{OK: true, Value: value, RequestID: msg.RequestID}
	}
	geo := port.Geometry{X: msg.X, Y: msg.Y, Width: msg.Width, Height: msg.Height}

	switch msg.Type {
	case "create_webview":
		id, err := h.surfaces.Create(ctx, msg.ID, msg.URL, geo)
		return reply(id, err)
	case "update_webview_bounds":
		return reply("", h.surfaces.UpdateBounds(msg.ID, geo))
	case "navigate_webview":
		return reply("", h.surfaces.Navigate(msg.ID, msg.URL))
	case "destroy_webview":
		h.surfaces.Destroy(msg.ID)
		return reply("", nil)
	case "execute_script":
		value, err := h.surfaces.ExecuteScript(msg.ID, msg.Script)
		return reply(value, err)
	case "hide_all_webviews":
		h.surfaces.HideAll()
		return reply("", nil)
	case "show_all_webviews":
		h.surfaces.ShowAll()
		return reply("", nil)

	case "fs_create_file":
		return reply("", h.files.CreateFile(ctx, msg.Path))
	case "fs_create_directory":
		return reply("", h.files.CreateDirectory(ctx, msg.Path))
	case "fs_rename":
		return reply("", h.files.Rename(ctx, msg.OldPath, msg.NewPath))
	case "fs_delete":
		return reply("", h.files.Delete(ctx, msg.Path, msg.IsDirectory))
	case "fs_copy":
		return reply("", h.files.Copy(ctx, msg.Source, msg.Destination, msg.IsDirectory))
	case "fs_move":
		return reply("", h.files.Move(ctx, msg.Source, msg.Destination))

	case "session_save":
		if h.session == nil {
			return reply("", fmt.Errorf("session persistence is not enabled"))
		}
		return reply("", h.session.Save(ctx))
	case "session_restore":
		if h.session == nil {
			return reply("", fmt.Errorf("session persistence is not enabled"))
		}
		restored, err := h.session.Restore(ctx)
		return reply(fmt.Sprintf("%d", restored), err)

	case "vcs_status":
		if h.vcs == nil {
			return reply("", fmt.Errorf("version control is not enabled"))
		}
		status, err := h.vcs.Status(ctx, msg.Path)
		if err != nil {
			return reply("", err)
		}
		encoded, err := json.Marshal(status)
		if err != nil {
			return reply("", err)
		}
		return reply(string(encoded), nil)

	default:
		h.log.Warn().Str("type", msg.Type).Msg("unknown message type")
		return Result{Error: fmt.Sprintf("unknown message type: %s", msg.Type), RequestID: msg.RequestID}
	}
}
