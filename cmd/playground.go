package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/ui/playground"
	"github.com/zjrosen/glimmer/internal/ui/styles"
	"github.com/zjrosen/glimmer/internal/watcher"
)

// sampleDoc is shown when the playground starts without a file or stdin.
const sampleDoc = `Hello @Henry. Why are you named @nobody
Because yes, and you @John. Btw Where @Bill is ?
Reach me at https://example.com or call 555 0123
`

var playgroundCmd = &cobra.Command{
	Use:   "playground [file]",
	Short: "Interactive playground for trying highlight patterns",
	Long: `Launch an interactive view of a document where the highlight pattern
can be edited live. With a file argument the document reloads when the
file changes on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	if cleanup := initLogging(); cleanup != nil {
		defer cleanup()
	}

	doc := sampleDoc
	filePath := ""
	if len(args) == 1 {
		filePath = args[0]
		data, err := os.ReadFile(filePath) //nolint:gosec // G304: path comes from the command line
		if err != nil {
			return fmt.Errorf("reading %s: %w", filePath, err)
		}
		doc = string(data)
	}

	var w *watcher.Watcher
	if filePath != "" && cfg.AutoReload {
		wcfg := watcher.DefaultConfig(filePath)
		wcfg.DebounceDur = time.Duration(cfg.AutoReloadDebounce) * time.Millisecond
		var err error
		w, err = watcher.New(wcfg)
		if err != nil {
			log.ErrorErr(log.CatWatcher, "creating watcher", err, "path", filePath)
			w = nil // run without auto-reload
		}
	}

	initialPattern := patternFlag
	matchStyle := styles.MatchStyle
	if initialPattern == "" && presetFlag != "" {
		if p, ok := cfg.Pattern(presetFlag); ok {
			initialPattern = p.Pattern
			matchStyle = styles.MatchStyleFor(p.Color)
		}
	}

	model := playground.New(doc, filePath, initialPattern, matchStyle, w)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("running playground: %w", err)
	}
	return nil
}
