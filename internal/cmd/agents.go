package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/roundtable/internal/agent"
	"github.com/Iron-Ham/roundtable/internal/config"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List agent CLIs and their availability",
	RunE:  runAgents,
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}

func runAgents(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	roster := agent.Roster(cfg.Agents)
	_, found := agent.FilterAvailable(roster, agent.LookPathProbe)

	for _, a := range roster {
		state := "not found"
		if found[a.Name()] {
			state = "ok"
		}
		fmt.Printf("%-12s %-10s %s\n", a.DisplayName(), state, a.Command())
	}

	available := 0
	for _, ok := range found {
		if ok {
			available++
		}
	}
	if available < 2 {
		fmt.Println("\nAt least 2 CLIs must be installed to hold a discussion.")
	}
	return nil
}
