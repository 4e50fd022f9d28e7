package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/roundtable/internal/agent"
	"github.com/Iron-Ham/roundtable/internal/config"
	"github.com/Iron-Ham/roundtable/internal/event"
	"github.com/Iron-Ham/roundtable/internal/logging"
	"github.com/Iron-Ham/roundtable/internal/project"
	"github.com/Iron-Ham/roundtable/internal/runner"
	"github.com/Iron-Ham/roundtable/internal/session"
	"github.com/Iron-Ham/roundtable/internal/transcript"
	"github.com/Iron-Ham/roundtable/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a discussion session",
	Long: `Start a discussion session in the TUI. Probes for installed agent
CLIs, loads project context files from the working directory, and waits
for you to kick off the first round.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringP("topic", "t", "", "discussion topic")
	startCmd.Flags().IntP("rounds", "r", 0, "number of discussion rounds")
	_ = viper.BindPFlag("discussion.topic", startCmd.Flags().Lookup("topic"))
	_ = viper.BindPFlag("discussion.rounds", startCmd.Flags().Lookup("rounds"))
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "config error: %s\n", e)
		}
		return fmt.Errorf("invalid configuration")
	}

	var logger *logging.Logger
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Close()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	roster := agent.Roster(cfg.Agents)
	available, found := agent.FilterAvailable(roster, agent.LookPathProbe)
	var missing []string
	for _, a := range roster {
		if !found[a.Name()] {
			missing = append(missing, a.DisplayName())
		}
	}

	projectCtx := project.NewSupplier(cwd, cfg.Context.Files).Load()

	store := transcript.NewStore()
	feed := event.NewFeed()
	run := runner.New(cfg.Discussion.TurnTimeout(), cwd, logger)
	sess := session.New(store, feed, run, logger)

	app := tui.New(cfg, sess, store, feed, available, missing, projectCtx)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
