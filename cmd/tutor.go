package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/socratiq/internal/analytics"
	"github.com/abhisek/socratiq/internal/app"
	"github.com/abhisek/socratiq/internal/engine"
	"github.com/abhisek/socratiq/internal/llm"
	"github.com/abhisek/socratiq/internal/store"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Start a tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTutor(cmd)
	},
}

// runTutor opens the store, builds dependencies, and launches the TUI.
func runTutor(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	svc := analytics.NewService(eventRepo, st.SnapshotRepo())

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with canned questions only.")
		provider = llm.NewMockProvider()
	}

	prof, err := svc.UpdateProfile(ctx)
	if err != nil {
		return fmt.Errorf("load student profile: %w", err)
	}

	seed := uint64(time.Now().UnixNano())
	eng := engine.New(provider, eventRepo, prof, rand.New(rand.NewPCG(seed, seed)))

	return app.Run(app.Options{Engine: eng, Analytics: svc})
}
