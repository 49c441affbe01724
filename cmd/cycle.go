package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/verdure/internal/session"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Start a timed study cycle",
	Long: `Start a timed study cycle: a small random sample of plants and a
countdown. Study each card, reveal details, move on. The cycle finishes
when the timer runs out or when you finish it yourself; either way your
progress and streak are updated exactly once.`,
	Run: func(cmd *cobra.Command, args []string) {
		st, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer st.Close()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		cyc, err := session.NewCycle(rng, mergedCatalog(st), cfg.Cycle.Plants, cfg.Cycle.DurationSeconds)
		if err != nil {
			fmt.Println("❌ Cannot start cycle:", err)
			return
		}

		fmt.Printf("🌿 Study cycle started — %d plants, %d seconds on the clock.\n", cyc.PlantCount(), cyc.Remaining())
		fmt.Println("Commands: d = toggle details, n = next plant, f = finish")
		printCyclePlant(cyc)

		// Stdin lines and timer ticks feed one select loop, so session
		// state only ever changes on a single goroutine.
		input := make(chan string)
		go func() {
			reader := bufio.NewReader(os.Stdin)
			for {
				line, err := reader.ReadString('\n')
				if err != nil {
					close(input)
					return
				}
				input <- strings.TrimSpace(strings.ToLower(line))
			}
		}()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for cyc.State() == session.StateActive {
			select {
			case <-ticker.C:
				if cyc.Tick() {
					fmt.Println("\n⏰ Time is up!")
				}
			case line, ok := <-input:
				if !ok {
					cyc.Finish()
					break
				}
				switch line {
				case "d":
					cyc.ToggleDetails()
					printCyclePlant(cyc)
				case "n":
					if cyc.Advance() {
						printCyclePlant(cyc)
					} else {
						fmt.Println("⚠️  Last plant already. Type f to finish.")
					}
				case "f":
					cyc.Finish()
				default:
					fmt.Println("Commands: d = details, n = next, f = finish")
				}
			}
		}

		p, err := st.RecordCycleCompletion(cyc.PlantCount(), time.Now())
		if err != nil {
			fmt.Println("❌ Error saving progress:", err)
			return
		}
		fmt.Printf("\n🎉 Cycle complete! Plants studied: %d | Streak: %d day(s)\n", p.PlantsStudied, p.Streak)
	},
}

func printCyclePlant(cyc *session.Cycle) {
	p := cyc.Current()

	fmt.Println("\n========================================")
	fmt.Printf("Plant [%d/%d] — %ds left\n", cyc.Index()+1, cyc.PlantCount(), cyc.Remaining())
	fmt.Printf("🌱 %s\n", p.CommonName)
	if cyc.DetailsShown() {
		fmt.Printf("Scientific name: %s\n", p.ScientificName)
		fmt.Printf("Light:           %s\n", p.Light.Label())
		fmt.Printf("Category:        %s\n", p.Category)
		fmt.Printf("Trivia:          %s\n", p.Trivia)
	} else {
		fmt.Println("(type d to reveal details)")
	}
	fmt.Println("========================================")
}

func init() {
	rootCmd.AddCommand(cycleCmd)
}
