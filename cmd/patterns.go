package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/glimmer/internal/config"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Manage named pattern presets",
}

var patternsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured pattern presets",
	RunE:  runPatternsList,
}

var patternsAddCmd = &cobra.Command{
	Use:   "add <name> <pattern>",
	Short: "Add or replace a pattern preset in the config file",
	Args:  cobra.ExactArgs(2),
	RunE:  runPatternsAdd,
}

func init() {
	patternsCmd.AddCommand(patternsListCmd)
	patternsCmd.AddCommand(patternsAddCmd)
	rootCmd.AddCommand(patternsCmd)
}

func runPatternsList(cmd *cobra.Command, args []string) error {
	if len(cfg.Patterns) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no pattern presets configured")
		return nil
	}
	for _, p := range cfg.Patterns {
		fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", p.Name, p.Pattern)
	}
	return nil
}

func runPatternsAdd(cmd *cobra.Command, args []string) error {
	name, pattern := args[0], args[1]

	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	// Replace an existing preset of the same name, otherwise append.
	patterns := make([]config.PatternConfig, 0, len(cfg.Patterns)+1)
	replaced := false
	for _, p := range cfg.Patterns {
		if p.Name == name {
			p.Pattern = pattern
			replaced = true
		}
		patterns = append(patterns, p)
	}
	if !replaced {
		patterns = append(patterns, config.PatternConfig{Name: name, Pattern: pattern})
	}

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		// No config file was loaded; create one with defaults first so
		// the preset lands in a commented file.
		configPath = ".glimmer/config.yaml"
		if err := config.WriteDefaultConfig(configPath); err != nil {
			return err
		}
	}

	if err := config.SavePatterns(configPath, patterns); err != nil {
		return fmt.Errorf("saving presets: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "saved preset %q to %s\n", name, configPath)
	return nil
}
