package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	gio "github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/infinitty/infinitty/internal/app/messaging"
	"github.com/infinitty/infinitty/internal/application/port"
	"github.com/infinitty/infinitty/internal/config"
	"github.com/infinitty/infinitty/internal/infrastructure/filesystem"
	"github.com/infinitty/infinitty/internal/infrastructure/headless"
	"github.com/infinitty/infinitty/internal/infrastructure/persistence/sqlite"
	webkithost "github.com/infinitty/infinitty/internal/infrastructure/webkit"
	"github.com/infinitty/infinitty/internal/logging"
	"github.com/infinitty/infinitty/internal/services"
	"github.com/infinitty/infinitty/internal/ui/window"
)

const appID = "com.github.infinitty"

var headlessFlag bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the shell",
	Long: `Launch the shell. Messages from the UI layer are read as JSON
lines on stdin; replies are written as JSON lines on stdout.

With --headless (or headless: true in config.yaml) surfaces run in an
in-process JavaScript host instead of WebKitGTK.`,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().BoolVar(&headlessFlag, "headless", false, "run without a display server")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	manager, err := config.NewManager(configDir)
	if err != nil {
		return err
	}
	if err := manager.Load(); err != nil {
		return err
	}
	cfg := manager.Get()
	if headlessFlag {
		cfg.Headless = true
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := logging.New(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: time.RFC3339,
	})
	ctx := logging.WithContext(cmd.Context(), logger)

	manager.Watch()

	if cfg.Headless {
		return runHeadless(ctx, cfg, logger)
	}
	return runGUI(ctx, cfg, logger)
}

// openSession wires session persistence when a database path is configured.
// A failure to open the database disables persistence instead of blocking
// startup.
func openSession(ctx context.Context, cfg *config.Config, surfaces *services.SurfaceService, handler *messaging.Handler, logger zerolog.Logger) (*services.SessionService, func()) {
	if cfg.Session.Path == "" {
		return nil, func() {}
	}

	db, err := sqlite.NewConnection(ctx, cfg.Session.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("session persistence disabled")
		return nil, func() {}
	}

	session := services.NewSessionService(sqlite.NewSessionRepository(db), surfaces, logger)
	handler.SetSessionService(session)

	if cfg.Session.Restore {
		if restored, err := session.Restore(ctx); err != nil {
			logger.Warn().Err(err).Msg("session restore failed")
		} else if restored > 0 {
			logger.Info().Int("surfaces", restored).Msg("session restored")
		}
	}

	return session, func() { _ = sqlite.Close(db) }
}

func saveSession(ctx context.Context, session *services.SessionService, logger zerolog.Logger) {
	if session == nil {
		return
	}
	if err := session.Save(context.WithoutCancel(ctx)); err != nil {
		logger.Warn().Err(err).Msg("session save failed")
	}
}

func runHeadless(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := headless.NewHost(logger)
	surfaces := services.NewSurfaceService(host, cfg, logger)
	files := services.NewFileService(filesystem.New(), logger)
	handler := messaging.NewHandler(surfaces, files, logger)

	session, closeDB := openSession(ctx, cfg, surfaces, handler, logger)
	defer closeDB()

	logger.Info().Msg("headless shell ready")

	done := make(chan error, 1)
	go func() {
		done <- serveMessages(ctx, handler, os.Stdin, os.Stdout)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-done:
	}

	saveSession(ctx, session, logger)
	_ = surfaces.Cleanup()
	return serveErr
}

// serveMessages answers one JSON message per input line.
func serveMessages(ctx context.Context, handler *messaging.Handler, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Script payloads can approach the configured ceiling.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		reply := handler.HandleJSON(ctx, line)
		if _, err := fmt.Fprintf(out, "%s\n", reply); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runGUI(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	// GUI sessions usually have no terminal; keep runtime panics and GLib
	// warnings in the crash log.
	if dir, err := logging.DefaultCrashDir(); err == nil {
		if f, err := logging.RedirectStderrToCrashLog(dir); err == nil {
			defer func() { _ = f.Close() }()
		}
	}

	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	var (
		surfaces *services.SurfaceService
		session  *services.SessionService
		closeDB  = func() {}
	)

	app.ConnectActivate(func() {
		win := window.New(app, cfg.Window, logger)

		var host port.SurfaceHost = webkithost.NewHost(win.Canvas(), logger)
		surfaces = services.NewSurfaceService(host, cfg, logger)
		files := services.NewFileService(filesystem.New(), logger)
		handler := messaging.NewHandler(surfaces, files, logger)

		session, closeDB = openSession(ctx, cfg, surfaces, handler, logger)

		win.Present()
		logger.Info().Str("window", win.Label()).Msg("shell ready")

		go pumpMessages(ctx, handler, logger)
	})

	app.ConnectShutdown(func() {
		saveSession(ctx, session, logger)
		if surfaces != nil {
			_ = surfaces.Cleanup()
		}
		closeDB()
	})

	if code := app.Run(nil); code != 0 {
		return fmt.Errorf("application exited with code %d", code)
	}
	return nil
}

// pumpMessages reads JSON messages from stdin and dispatches them on the
// GTK main loop. WebKit calls are only safe there.
func pumpMessages(ctx context.Context, handler *messaging.Handler, logger zerolog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		payload := append([]byte(nil), line...)

		replyCh := make(chan []byte, 1)
		glib.IdleAdd(func() bool {
			replyCh <- handler.HandleJSON(ctx, payload)
			return false
		})
		reply := <-replyCh

		if _, err := fmt.Fprintf(os.Stdout, "%s\n", reply); err != nil {
			logger.Error().Err(err).Msg("failed to write reply")
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Msg("message pump stopped")
	}
}
