package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rivertam/pants-off-podrick/internal/analyzer"
	"github.com/rivertam/pants-off-podrick/internal/data/watcher"
	"github.com/rivertam/pants-off-podrick/internal/util"
)

var (
	scoreInput  string
	scoreOutput string
	scoreFull   bool
	scoreWatch  bool

	scoreCmd = &cobra.Command{
		Use:   "score",
		Short: "Score an exported channel history offline",
		Long: `Computes the monthly compliance report from exported channel-history JSONL
files (one message per line: authorId, content, timestamp) without touching
Discord. Author ids are shown as-is since no identity lookup is available
offline.`,
		RunE: runScore,
	}
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "",
		"Export file or directory of .jsonl exports (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "table",
		"Output format (table, json)")
	scoreCmd.Flags().BoolVar(&scoreFull, "full", false,
		"Skip the summary-mode character budget (no row truncation)")
	scoreCmd.Flags().BoolVarP(&scoreWatch, "watch", "w", false,
		"Re-render whenever the export changes")
	scoreCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	a, err := analyzer.New(&analyzer.Config{Timezone: timezone})
	if err != nil {
		return err
	}

	if err := scoreOnce(a); err != nil {
		return err
	}
	if !scoreWatch {
		return nil
	}

	w, err := watcher.New([]string{scoreInput})
	if err != nil {
		return fmt.Errorf("watching %s: %w", scoreInput, err)
	}
	defer w.Close()

	util.LogInfo(fmt.Sprintf("Watching %s for changes", scoreInput))
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-w.Events():
			if !ok {
				return nil
			}
			util.LogDebug(fmt.Sprintf("Export changed: %s (%s)", event.Path, event.Operation))
			if err := scoreOnce(a); err != nil {
				util.LogError(fmt.Sprintf("Re-render failed: %v", err))
			}
		}
	}
}

func scoreOnce(a *analyzer.Analyzer) error {
	msgs, err := a.LoadExports(scoreInput)
	if err != nil {
		return err
	}

	var out string
	switch scoreOutput {
	case "table":
		out, err = a.ComputeReport(msgs, nil, scoreFull)
	case "json":
		out, err = a.ComputeJSON(msgs, nil)
	default:
		return fmt.Errorf("unknown output format: %s", scoreOutput)
	}
	if err != nil {
		return err
	}

	warnIfTooWide(out)
	fmt.Println(out)
	return nil
}

// warnIfTooWide flags tables that will wrap in the current terminal.
func warnIfTooWide(out string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > width {
			util.LogWarn(fmt.Sprintf("Table is wider than the terminal (%d > %d columns); output will wrap", len(line), width))
			return
		}
	}
}
