package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/socratiq/internal/analytics"
	"github.com/abhisek/socratiq/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		svc := analytics.NewService(st.EventRepo(), st.SnapshotRepo())
		rep, err := svc.Report(context.Background(), days)
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}

		if rep.SessionsAnalyzed == 0 {
			fmt.Println("No sessions recorded yet. Run `socratiq tutor` to start one.")
			return nil
		}

		fmt.Printf("Sessions analyzed   %d\n", rep.SessionsAnalyzed)
		fmt.Printf("Success rate        %.0f%%\n", rep.SuccessRate*100)
		fmt.Printf("Learning velocity   %+.2f\n", rep.LearningVelocity)
		fmt.Printf("Learning style      %s\n", rep.LearningStyle)
		if rep.DirectAnswerLeaks > 0 {
			fmt.Printf("Answer leaks        %d tutor slips caught\n", rep.DirectAnswerLeaks)
		}
		fmt.Printf("Difficulty          %s", rep.Difficulty.CurrentLevel)
		if rep.Difficulty.RecommendedLevel != rep.Difficulty.CurrentLevel {
			fmt.Printf(" → %s recommended", rep.Difficulty.RecommendedLevel)
		}
		fmt.Println()

		if len(rep.KnowledgeGaps) > 0 {
			fmt.Printf("Knowledge gaps      %s\n", strings.Join(rep.KnowledgeGaps, ", "))
		}
		if len(rep.Strengths) > 0 {
			fmt.Printf("Strengths           %s\n", strings.Join(rep.Strengths, ", "))
		}

		if len(rep.DailyTrends) > 0 {
			fmt.Printf("\nLast %d days\n", days)
			for _, d := range rep.DailyTrends {
				bar := strings.Repeat("█", int(d.Mastery*20))
				fmt.Printf("  %s  %-20s %.0f%% (%d sessions)\n",
					d.Day.Format("Jan 02"), bar, d.Mastery*100, d.Sessions)
			}
		}

		if len(rep.Recommendations) > 0 {
			fmt.Println("\nRecommendations")
			for _, r := range rep.Recommendations {
				fmt.Printf("  - %s\n", r.Text)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("days", 14, "Day window for daily trends")
}
