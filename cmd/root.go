package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/glimmer/highlight"
	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version     string
	cfgFile     string
	cfg         config.Config
	patternFlag string
	presetFlag  string
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "glimmer [file...]",
	Short: "Highlight regex matches in terminal text",
	Long: `Reads text from files or stdin and writes it back with every pattern
match styled, like grep --color without the filtering. Patterns come from
--pattern or from named presets in the config file.`,
	Version: version,
	RunE:    runHighlight,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/glimmer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to glimmer.log")
	rootCmd.PersistentFlags().StringVarP(&patternFlag, "pattern", "e", "",
		"regular expression to highlight")
	rootCmd.PersistentFlags().StringVar(&presetFlag, "preset", "",
		"named pattern preset from the config file")
	rootCmd.PersistentFlags().String("color", "",
		"hex background color for matches (e.g. #3498DB)")

	// Bind flags to viper
	_ = viper.BindPFlag("theme.match", rootCmd.PersistentFlags().Lookup("color"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("auto_reload_debounce", defaults.AutoReloadDebounce)
	viper.SetDefault("patterns", defaults.Patterns)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .glimmer/config.yaml (current directory)
		// 2. ~/.config/glimmer/config.yaml (user config)
		if _, err := os.Stat(".glimmer/config.yaml"); err == nil {
			viper.SetConfigFile(".glimmer/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "glimmer"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - continue with defaults.
		// A file is only written once the user saves a preset.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
	styles.ApplyTheme(cfg.Theme.Match, cfg.Theme.Subtle, cfg.Theme.Error)
}

// initLogging enables the debug log when requested via --debug or
// GLIMMER_DEBUG. Returns a cleanup function, which may be nil.
func initLogging() func() {
	if !debugFlag && os.Getenv("GLIMMER_DEBUG") == "" {
		return nil
	}
	cleanup, err := log.Init("glimmer.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening debug log: %v\n", err)
		return nil
	}
	return cleanup
}

// resolvePattern picks the pattern from --pattern or --preset. The full
// preset is returned so a per-preset color override reaches the style.
func resolvePattern() (config.PatternConfig, error) {
	switch {
	case patternFlag != "" && presetFlag != "":
		return config.PatternConfig{}, fmt.Errorf("--pattern and --preset are mutually exclusive")
	case patternFlag != "":
		return config.PatternConfig{Pattern: patternFlag}, nil
	case presetFlag != "":
		p, ok := cfg.Pattern(presetFlag)
		if !ok {
			return config.PatternConfig{}, fmt.Errorf("unknown pattern preset %q", presetFlag)
		}
		return p, nil
	default:
		return config.PatternConfig{}, fmt.Errorf("no pattern given: use --pattern or --preset")
	}
}

func runHighlight(cmd *cobra.Command, args []string) error {
	if cleanup := initLogging(); cleanup != nil {
		defer cleanup()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	p, err := resolvePattern()
	if err != nil {
		return err
	}

	// Pattern is user input here, so invalid syntax is a normal error
	// rather than a panic.
	h, err := highlight.New(p.Pattern, styles.MatchStyleFor(p.Color))
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if len(args) == 0 {
		return highlightReader(cmd.OutOrStdout(), os.Stdin, h, "stdin")
	}
	for _, path := range args {
		f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		err = highlightReader(cmd.OutOrStdout(), f, h, path)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// highlightReader highlights everything from r and writes it to w.
func highlightReader(w io.Writer, r io.Reader, h *highlight.Highlighter, name string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	text := h.Text(string(data))
	log.Debug(log.CatHighlight, "highlighted input",
		"source", name, "lines", len(text), "matches", text.Matches())

	if _, err := fmt.Fprintln(w, text.Render()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
