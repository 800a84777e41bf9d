package main

import (
	"runtime"

	"github.com/infinitty/infinitty/internal/cli/cmd"
	"github.com/infinitty/infinitty/internal/domain/build"
	"github.com/infinitty/infinitty/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	runtime.LockOSThread()
	enableCrashForensics()
	logging.SetupCrashHandler()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
