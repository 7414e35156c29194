package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/socratiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "socratiq",
	Short: "Socratic math tutor for the terminal",
	Long:  "Socratiq — a terminal tutor that never gives the answer, only the next question.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTutor(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for API keys; absence is not an error.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOCRATIQ_DB env var)")

	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SOCRATIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
