package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/verdure/internal/catalog"
	"github.com/LavenderBridge/verdure/internal/imaging"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Manage custom plant photos",
}

var imageSetCmd = &cobra.Command{
	Use:   "set [plant-id] [file]",
	Short: "Attach your own photo to a plant",
	Long: `Attach your own photo to a plant. The image is downscaled to at
most 600px wide and re-encoded before it is stored, so any decodable
image file works.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		plantID, path := args[0], args[1]

		if _, ok := catalog.ByID(plantID); !ok {
			fmt.Println("❌ Unknown plant id:", plantID)
			return
		}

		f, err := os.Open(path)
		if err != nil {
			fmt.Println("❌ Cannot open file:", err)
			return
		}
		defer f.Close()

		blob, err := imaging.Reencode(f)
		if err != nil {
			if errors.Is(err, imaging.ErrDecode) {
				fmt.Println("❌ That file is not a readable image. Try a different photo.")
			} else {
				fmt.Println("❌ Error encoding image:", err)
			}
			return
		}

		st, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer st.Close()

		if err := st.SetCustomImage(plantID, blob); err != nil {
			fmt.Println("❌ Error saving image:", err)
			return
		}
		fmt.Printf("✅ Photo set for '%s' (%d KB stored)\n", plantID, len(blob)/1024)
	},
}

var imageResetCmd = &cobra.Command{
	Use:   "reset [plant-id]",
	Short: "Remove a custom photo and revert to the base image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plantID := args[0]

		if _, ok := catalog.ByID(plantID); !ok {
			fmt.Println("❌ Unknown plant id:", plantID)
			return
		}

		st, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer st.Close()

		if err := st.ResetCustomImage(plantID); err != nil {
			fmt.Println("❌ Error resetting image:", err)
			return
		}
		fmt.Printf("✅ Photo reset for '%s'\n", plantID)
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.AddCommand(imageSetCmd)
	imageCmd.AddCommand(imageResetCmd)
}
