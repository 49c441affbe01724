package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var studyPlantID string

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Browse the plant catalog",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer st.Close()

		plants := mergedCatalog(st)

		if studyPlantID != "" {
			for _, p := range plants {
				if p.ID == studyPlantID {
					fmt.Printf("\n🌱 %s (%s)\n", p.CommonName, p.ScientificName)
					fmt.Printf("Light:    %s\n", p.Light.Label())
					fmt.Printf("Category: %s\n", p.Category)
					fmt.Printf("Trivia:   %s\n", p.Trivia)
					fmt.Printf("Photo:    %s\n", describeImage(p.Image))
					return
				}
			}
			fmt.Println("❌ Unknown plant id:", studyPlantID)
			return
		}

		fmt.Printf("📚 Plant catalog (%d plants):\n\n", len(plants))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCommon Name\tScientific Name\tLight\tCategory\tPhoto")
		fmt.Fprintln(w, "--\t-----------\t---------------\t-----\t--------\t-----")

		for _, p := range plants {
			photo := "base"
			if strings.HasPrefix(p.Image, "data:") {
				photo = "custom"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.CommonName, p.ScientificName, p.Light.Label(), p.Category, photo)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(studyCmd)
	studyCmd.Flags().StringVarP(&studyPlantID, "plant", "p", "", "Show details for one plant id")
}
