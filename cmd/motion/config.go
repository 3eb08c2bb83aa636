package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/config"
)

var flagWriteConfig bool

var configCmd = &cobra.Command{
	Use:   "config <balls|platformer|walk>",
	Short: "Print a demo's default config",
	Long: `Print the default YAML config of a demo. Edit a copy and pass it to
'motion play --config', or place it in ~/.motion/configs/ to make it the
default.

Examples:
  motion config balls > my-balls.yaml
  motion config platformer --write`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"balls", "platformer", "walk"},
	RunE:      runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWriteConfig, "write", false, "Write the default into ~/.motion/configs instead of printing it")
}

func runConfig(_ *cobra.Command, args []string) error {
	name := args[0]
	data := config.GetDefaultYAML(name)
	if data == nil {
		return fmt.Errorf("no config for %q (expected balls, platformer or walk)", name)
	}

	if !flagWriteConfig {
		_, err := os.Stdout.Write(data)
		return err
	}

	dir := config.UserPath("configs")
	if dir == "" {
		return fmt.Errorf("cannot locate home directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(dir, name+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Println("Wrote", path)
	return nil
}
