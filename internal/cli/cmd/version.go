package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/infinitty/infinitty/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		renderer := styles.NewAboutRenderer(styles.Default())
		fmt.Println(renderer.Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
