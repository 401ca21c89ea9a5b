// Package main provides the CLI entrypoint for ppm.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/ppm/internal/banner"
	"github.com/verte-zerg/ppm/internal/config"
	"github.com/verte-zerg/ppm/internal/generator"
	"github.com/verte-zerg/ppm/internal/model"
	"github.com/verte-zerg/ppm/internal/session"
	"github.com/verte-zerg/ppm/internal/tui"
	"github.com/verte-zerg/ppm/internal/wordlist"
)

const (
	defaultWords    = 50
	defaultMaxWidth = 200
)

var (
	testWordList string
	testMaxWidth int
	testSeed     int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ppm [palavras]",
		Short:         "Terminal typing speed test",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().StringVar(&testWordList, "wordlist", "", "custom word list, one word per line")
	rootCmd.Flags().IntVar(&testMaxWidth, "width", defaultMaxWidth, "maximum text width in columns")
	rootCmd.Flags().Int64Var(&testSeed, "seed", 0, "seed for word sampling (default: random)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "wordlist", &testWordList, fileCfg.Test.WordList)
	applyIntConfig(cmd, "width", &testMaxWidth, fileCfg.Test.Width)

	fallbackWords := defaultWords
	if fileCfg.Test.Words != nil {
		fallbackWords = *fileCfg.Test.Words
	}
	words, err := parseWordCount(args, fallbackWords)
	if err != nil {
		return err
	}

	cfg := model.Config{
		Words:        words,
		WordListPath: testWordList,
		MaxWidth:     testMaxWidth,
		Seed:         testSeed,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	corpus, err := loadCorpus(cfg.WordListPath)
	if err != nil {
		return err
	}

	if err := tui.CheckTerminal(os.Stdout); err != nil {
		return err
	}

	gen := generator.New()
	if cmd.Flags().Changed("seed") {
		gen = generator.NewWithSeed(cfg.Seed)
	}
	s := session.New(gen.Sample(corpus, cfg.Words))

	program := tea.NewProgram(tui.NewModel(s, cfg.MaxWidth), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	m, ok := final.(*tui.Model)
	if !ok || m.Result() == nil {
		return nil
	}
	if err := banner.Render(os.Stdout, *m.Result(), s.Words()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func parseWordCount(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid word count %q: must be a positive integer", args[0])
	}
	return n, nil
}

func loadCorpus(path string) ([]string, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	typable := wordlist.Filter(words, wordlist.Typable)
	if dropped := len(words) - len(typable); dropped > 0 {
		logErrf("skipping %d words with characters that cannot be typed\n", dropped)
	}
	if len(typable) == 0 {
		return nil, fmt.Errorf("word list %s has no typable words", path)
	}
	return typable, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# ppm config
# Command-line arguments override config values.

[test]
# words = %d              # Words per test
# wordlist = ""           # Custom word list, one word per line
# width = %d             # Maximum text width in columns
`,
		defaultWords,
		defaultMaxWidth,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("word count must be > 0")
	}
	if cfg.MaxWidth <= 0 {
		return fmt.Errorf("--width must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
