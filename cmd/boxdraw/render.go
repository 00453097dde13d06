package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/asciitosvg/boxdraw"
)

var renderFile string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one diagram to SVG on stdout",
	Long: `Render converts a single diagram to an SVG document.

Examples:
  boxdraw render --file diagram.txt > diagram.svg
  cat diagram.txt | boxdraw render > diagram.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var text []byte
		var err error
		if renderFile != "" {
			text, err = os.ReadFile(renderFile)
			if err != nil {
				return fmt.Errorf("reading %s: %w", renderFile, err)
			}
		} else {
			text, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
		}

		settings := settingsFromFlags()
		out := boxdraw.Render(string(text), settings)
		logger.Debug("rendered diagram", zapFields(renderFile, len(text), len(out))...)

		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "diagram file to render (default: stdin)")
}
