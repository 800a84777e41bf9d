package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/infinitty/infinitty/internal/cli/styles"
	"github.com/infinitty/infinitty/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(_ *cobra.Command, _ []string) error {
		m, err := config.NewManager(configDir)
		if err != nil {
			return err
		}
		path, err := m.WriteDefault(configDir)
		if err != nil {
			return err
		}
		theme := styles.Default()
		fmt.Println(theme.Success.Render("config written: " + path))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for config.yaml",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GenerateSchemaFile(configDir)
		if err != nil {
			return err
		}
		theme := styles.Default()
		fmt.Println(theme.Success.Render("schema written: " + path))
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		m, err := config.NewManager(configDir)
		if err != nil {
			return err
		}
		if err := m.Load(); err != nil {
			return err
		}
		cfg := m.Get()
		theme := styles.Default()
		fmt.Println(theme.Success.Render("config ok"))
		fmt.Printf("  window: %dx%d\n", cfg.Window.Width, cfg.Window.Height)
		fmt.Printf("  session restore: %v\n", cfg.Session.Restore)
		fmt.Printf("  headless: %v\n", cfg.Headless)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configSchemaCmd, configCheckCmd)
	rootCmd.AddCommand(configCmd)
}
