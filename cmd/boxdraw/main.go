// Command boxdraw renders ASCII/Unicode box diagrams to SVG.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asciitosvg/boxdraw"
)

var (
	verbose     bool
	configPath  string
	textWidth   float64
	textHeight  float64
	noOptimize  bool
	noCompact   bool

	logger *appLogger
	config cliConfig
)

var rootCmd = &cobra.Command{
	Use:   "boxdraw",
	Short: "Render ASCII/Unicode box diagrams to SVG",
	Long: `boxdraw converts multiline ASCII or Unicode box-drawing diagrams
into SVG documents: lines, arcs, circles, and text placed from the
character grid.

It provides commands for:
  - render: convert a single file or stdin to SVG on stdout
  - batch:  convert every diagram in a directory to sibling .svg files`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		config = loaded
		logger = newLogger(verbose)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return logger.Sync()
		}
		return nil
	},
}

// Execute runs the root command. Called by main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a boxdraw.toml config file (default: ~/.config/boxdraw/config.toml)")
	rootCmd.PersistentFlags().Float64Var(&textWidth, "text-width", 0, "cell pixel width (overrides config; 0 uses default)")
	rootCmd.PersistentFlags().Float64Var(&textHeight, "text-height", 0, "cell pixel height (overrides config; 0 uses default)")
	rootCmd.PersistentFlags().BoolVar(&noOptimize, "no-optimize", false, "disable line/text fusion")
	rootCmd.PersistentFlags().BoolVar(&noCompact, "no-compact-path", false, "fuse lines but emit chains as separate primitives")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	Execute()
}

// settingsFromFlags builds a Settings value from the merged config file and
// command-line overrides, command-line flags winning when set.
func settingsFromFlags() boxdraw.Settings {
	settings := boxdraw.DefaultSettings()
	if config.TextWidth > 0 {
		settings.TextWidth = config.TextWidth
	}
	if config.TextHeight > 0 {
		settings.TextHeight = config.TextHeight
	}
	if textWidth > 0 {
		settings.TextWidth = textWidth
	}
	if textHeight > 0 {
		settings.TextHeight = textHeight
	}
	if noOptimize {
		settings.Optimize = false
		settings.CompactPath = false
	} else if noCompact {
		settings.CompactPath = false
	}
	return settings
}
