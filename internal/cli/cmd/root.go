// Package cmd provides the Cobra CLI commands for infinitty.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infinitty/infinitty/internal/domain/build"
)

var (
	buildInfo build.Info
	configDir string

	rootCmd = &cobra.Command{
		Use:   "infinitty",
		Short: "A desktop shell for embedded third-party web surfaces",
		Long: `Infinitty - a desktop shell that embeds third-party web surfaces
as absolutely positioned panes inside one host window.

Every surface is created, moved, navigated and scripted through a gated
registry: URLs pass an anti-SSRF policy, filesystem operations are
confined to the home directory, and script injection requires trust.

Use 'infinitty shell' to launch the graphical shell, or run with
--headless for the in-process JavaScript host.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default: XDG config)")
}

// SetBuildInfo stores the build information injected by main.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
