package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/verdure/internal/models"
	"github.com/LavenderBridge/verdure/internal/store"
)

const historyRows = 10

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your study progress",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer st.Close()

		p, err := st.LoadProgress()
		if err != nil && !errors.Is(err, store.ErrCorruptRecord) {
			fmt.Println("❌ Error loading progress:", err)
			return
		}

		fmt.Println("\n📊 Progress Overview")
		fmt.Println("====================")
		fmt.Printf("Plants studied:   %d\n", p.PlantsStudied)
		fmt.Printf("Current streak:   %d day(s)\n", p.Streak)
		fmt.Printf("Quiz questions:   %d\n", p.QuizTotalQuestions)
		fmt.Printf("Quiz correct:     %d\n", p.QuizCorrectAnswers)
		fmt.Printf("Quiz accuracy:    %.0f%%\n", p.Accuracy())
		if p.LastStudyDate != nil {
			fmt.Printf("Last studied:     %s\n", p.LastStudyDate.Format("2006-01-02"))
		}

		if len(p.History) == 0 {
			fmt.Println("\nNo sessions yet. Try 'verdure cycle' to get started.")
			return
		}

		fmt.Printf("\n🗓  Recent sessions (last %d)\n", historyRows)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Date\tKind\tScore")
		fmt.Fprintln(w, "----\t----\t-----")

		start := len(p.History) - historyRows
		if start < 0 {
			start = 0
		}
		for _, s := range p.History[start:] {
			score := "-"
			if s.Kind == models.KindQuiz && s.Score != nil {
				score = fmt.Sprintf("%d/3", *s.Score)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Date.Format("2006-01-02"), s.Kind, score)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
