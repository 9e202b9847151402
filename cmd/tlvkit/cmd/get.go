package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emvkit/tlvkit/pkg/tlv"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <id> <tag>",
	Short: "Get a record's value by tag",
	Long: `Get the value of a record from a buffer, printed as hex.
With --deep, constructed records are searched recursively.

Example:
  tlvkit get 2a4f1c 5A
  tlvkit get 2a4f1c 9F02 --deep`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		tag, err := parseTag(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		deep, _ := cmd.Flags().GetBool("deep")

		bufferStore, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		buf, err := bufferStore.Get(args[0])
		if err != nil {
			fmt.Printf("Error getting buffer: %v\n", err)
			return
		}

		var rec tlv.Record
		var found bool
		if deep {
			rec, found = buf.FindDeep(tag)
		} else {
			rec, found = buf.Find(tag)
		}
		if !found {
			fmt.Printf("Tag %X not found\n", uint16(tag))
			return
		}

		fmt.Printf("%s\n", strings.ToUpper(hex.EncodeToString(rec.Value)))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().Bool("deep", false, "Search inside constructed records")
}
