package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperlath/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  "Display the configuration after merging defaults, the config file and global flags",
	}
	showCmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintf(a.stdout, "# source: %s\n", sourceLabel(a.source))
		encoder := yaml.NewEncoder(a.stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(a.cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}

		return encoder.Close()
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
	}
	initCmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		path := config.DefaultFileName
		if len(args) == 1 {
			path = args[0]
		}
		if !force && fileExists(path) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Save(path, config.DefaultConfig()); err != nil {
			return err
		}
		a.logger.Info("config written", "path", path)

		return nil
	})
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(showCmd, initCmd)

	return configCmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
