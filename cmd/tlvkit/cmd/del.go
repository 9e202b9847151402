package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// delCmd represents the del command
var delCmd = &cobra.Command{
	Use:   "del <id> [tag]",
	Short: "Delete a record or a whole buffer",
	Long: `Delete one record from a buffer by tag, or delete the entire
buffer when no tag is given.

Example:
  tlvkit del 2a4f1c 5A
  tlvkit del 2a4f1c`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		bufferStore, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		if len(args) == 1 {
			if err := bufferStore.Delete(args[0]); err != nil {
				fmt.Printf("Error deleting buffer: %v\n", err)
				return
			}
			fmt.Printf("Deleted buffer %s\n", args[0])
			return
		}

		tag, err := parseTag(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		buf, err := bufferStore.Get(args[0])
		if err != nil {
			fmt.Printf("Error getting buffer: %v\n", err)
			return
		}
		if !buf.Delete(tag) {
			fmt.Printf("Tag %X not found\n", uint16(tag))
			return
		}
		if err := bufferStore.Put(args[0], buf); err != nil {
			fmt.Printf("Error saving buffer: %v\n", err)
			return
		}

		fmt.Printf("Deleted tag %X\n", uint16(tag))
	},
}

func init() {
	rootCmd.AddCommand(delCmd)
}
