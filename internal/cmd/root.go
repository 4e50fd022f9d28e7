package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/roundtable/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "roundtable",
	Short: "Multi-agent AI architecture discussions in your terminal",
	Long: `Roundtable runs a turn-based discussion between the AI coding CLIs
installed on your machine (Claude Code, Gemini CLI, Codex). Agents take
turns responding to a topic over several rounds, then each delivers a
consensus position. The transcript can be exported to markdown.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/roundtable/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/roundtable")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ROUNDTABLE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., ROUNDTABLE_DISCUSSION_ROUNDS for discussion.rounds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
