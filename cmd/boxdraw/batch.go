package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/asciitosvg/boxdraw"
)

var (
	batchDir    string
	batchExt    string
	batchQuiet  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render every diagram file in a directory to sibling .svg files",
	Long: `Batch walks a directory for files matching --ext, renders each one,
and writes the result alongside it with a .svg extension.

Example:
  boxdraw batch --dir diagrams --ext .txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(batchDir)
		if err != nil {
			return fmt.Errorf("reading %s: %w", batchDir, err)
		}

		var files []string
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), batchExt) {
				continue
			}
			files = append(files, e.Name())
		}
		if len(files) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no %s files found in %s\n", batchExt, batchDir)
			return nil
		}

		var sp *spinner.Spinner
		if !batchQuiet {
			sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = fmt.Sprintf(" rendering 0/%d", len(files))
			sp.Start()
			defer sp.Stop()
		}

		settings := settingsFromFlags()
		failed := 0
		for i, name := range files {
			if err := renderOne(batchDir, name, batchExt, settings); err != nil {
				logger.Warn("failed to render", zap.String("file", name), zap.Error(err))
				failed++
			}
			if sp != nil {
				sp.Suffix = fmt.Sprintf(" rendering %d/%d", i+1, len(files))
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "rendered %d/%d files\n", len(files)-failed, len(files))
		if failed > 0 {
			return fmt.Errorf("%d file(s) failed to render", failed)
		}
		return nil
	},
}

func renderOne(dir, name, ext string, settings boxdraw.Settings) error {
	src := filepath.Join(dir, name)
	text, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	out := boxdraw.Render(string(text), settings)
	logger.Debug("rendered diagram", zapFields(src, len(text), len(out))...)

	dst := strings.TrimSuffix(src, ext) + ".svg"
	if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", ".", "directory to scan for diagram files")
	batchCmd.Flags().StringVar(&batchExt, "ext", ".txt", "file extension identifying diagram files")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "suppress the progress spinner")
}
