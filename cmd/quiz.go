package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/verdure/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a three-question quiz",
	Long: `Take a three-question quiz: match a scientific name, pick a light
requirement, and name a plant from its photo. The first answer per
question counts; results are added to your cumulative quiz stats.`,
	Run: func(cmd *cobra.Command, args []string) {
		st, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer st.Close()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		qz, err := session.NewQuiz(rng, mergedCatalog(st))
		if err != nil {
			fmt.Println("❌ Cannot start quiz:", err)
			return
		}

		reader := bufio.NewReader(os.Stdin)
		finished := false

		for qz.State() == session.StateActive {
			q := qz.Current()

			fmt.Printf("\nQuestion %d/%d: %s\n", qz.Index()+1, qz.QuestionCount(), q.Prompt)
			if q.Image != "" {
				fmt.Printf("🖼  Photo: %s\n", describeImage(q.Image))
			}
			for i, opt := range q.Options {
				fmt.Printf("  %d) %s\n", i+1, opt)
			}

			fmt.Print("Your answer: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println("\n⚠️  Quiz abandoned, nothing recorded.")
				return
			}

			choice, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				fmt.Println("⚠️  Enter the number of an option.")
				continue
			}

			correct, accepted := qz.Answer(choice - 1)
			if !accepted {
				fmt.Println("⚠️  Enter the number of an option.")
				continue
			}
			if correct {
				fmt.Println("✅ Correct!")
			} else {
				fmt.Printf("❌ Not quite. The answer is: %s\n", q.Answer)
			}

			finished = qz.Next()
		}

		if !finished {
			return
		}

		p, err := st.RecordQuizCompletion(qz.Score(), qz.QuestionCount(), time.Now())
		if err != nil {
			fmt.Println("❌ Error saving progress:", err)
			return
		}
		fmt.Printf("\n🎉 Quiz complete! Score: %d/%d | Overall accuracy: %.0f%%\n",
			qz.Score(), qz.QuestionCount(), p.Accuracy())
	},
}

// describeImage keeps photo prompts terminal-friendly: URLs are printed,
// codec blobs are summarized rather than dumped.
func describeImage(ref string) string {
	if strings.HasPrefix(ref, "data:") {
		return "(your custom photo)"
	}
	return ref
}

func init() {
	rootCmd.AddCommand(quizCmd)
}
