// Package main provides the CLI entrypoint for recall.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thtahamid/active-recall-test/internal/config"
	"github.com/thtahamid/active-recall-test/internal/model"
	"github.com/thtahamid/active-recall-test/internal/quiz"
	"github.com/thtahamid/active-recall-test/internal/session"
	"github.com/thtahamid/active-recall-test/internal/words"
)

const (
	defaultStudySeconds    = 15
	defaultDistractSeconds = 15
)

var (
	quizStudySeconds    int
	quizDistractSeconds int
	quizCustomWords     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "recall",
		Short:         "TUI memory recall quiz",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runQuizCmd,
	}

	rootCmd.Flags().IntVar(&quizStudySeconds, "study", defaultStudySeconds, "study phase length in seconds")
	rootCmd.Flags().IntVar(&quizDistractSeconds, "distract", defaultDistractSeconds, "distraction phase length in seconds")
	rootCmd.Flags().BoolVar(&quizCustomWords, "custom-words", false, "load word banks from the config words directory")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "study", &quizStudySeconds, fileCfg.Quiz.StudySeconds)
	applyIntConfig(cmd, "distract", &quizDistractSeconds, fileCfg.Quiz.DistractSeconds)
	applyBoolConfig(cmd, "custom-words", &quizCustomWords, fileCfg.Quiz.CustomWords)

	cfg := model.Config{
		StudySeconds:    quizStudySeconds,
		DistractSeconds: quizDistractSeconds,
		CustomWords:     quizCustomWords,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	banks, err := loadBanks(cfg)
	if err != nil {
		return err
	}

	ctrl := session.New(cfg, banks, nil)
	program := tea.NewProgram(quiz.NewModel(ctrl), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func loadBanks(cfg model.Config) (words.Banks, error) {
	if cfg.CustomWords {
		banks, err := words.LoadBanks(config.DefaultWordsDir())
		if err != nil {
			return words.Banks{}, wordBanksLoadError(err)
		}
		return banks, nil
	}
	banks := words.Builtin()
	if err := banks.Validate(); err != nil {
		return words.Banks{}, fmt.Errorf("invalid built-in banks: %w", err)
	}
	return banks, nil
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

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the active word banks",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().BoolVar(&quizCustomWords, "custom-words", false, "load word banks from the config words directory")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "custom-words", &quizCustomWords, fileCfg.Quiz.CustomWords)

	banks, err := loadBanks(model.Config{CustomWords: quizCustomWords})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, "Targets:"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, w := range banks.Targets {
		if _, err := fmt.Fprintf(out, "%3d. %s (%s)\n", w.Position, w.Text, w.Language); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintln(out, "Decoys:"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, d := range banks.Decoys {
		if _, err := fmt.Fprintf(out, "     %s (%s)\n", d.Text, d.Language); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# recall configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# study-seconds = %d      # Study phase length in seconds
# distract-seconds = %d   # Distraction phase length in seconds
# custom-words = false    # Load word banks from %s
`,
		defaultStudySeconds,
		defaultDistractSeconds,
		config.DefaultWordsDir(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.StudySeconds <= 0 {
		return fmt.Errorf("--study must be > 0")
	}
	if cfg.DistractSeconds <= 0 {
		return fmt.Errorf("--distract must be > 0")
	}
	return nil
}

func wordBanksLoadError(err error) error {
	dir := config.DefaultWordsDir()
	lines := []string{
		fmt.Sprintf("failed to load custom word banks: %v", err),
		fmt.Sprintf("expected files in: %s", dir),
		fmt.Sprintf("  %s, %s, %s, %s",
			words.FileTargetsEnglish, words.FileTargetsSpanish,
			words.FileDecoysEnglish, words.FileDecoysSpanish),
		"Each file lists one word per line; targets and decoys must not overlap.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
