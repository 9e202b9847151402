package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <id> <tag> <value-hex>",
	Short: "Add or replace a record",
	Long: `Add a record to a buffer. The value is hex-encoded. The --policy
flag controls what happens when the tag already exists:

  reject     fail on a duplicate tag (default)
  overwrite  delete the old record, then append the new one
  skip       keep the old record untouched
  append     always append, allowing duplicates

Example:
  tlvkit set 2a4f1c 5A 414243
  tlvkit set 2a4f1c 5A 515253 --policy=overwrite`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		tag, err := parseTag(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		value, err := hex.DecodeString(args[2])
		if err != nil {
			fmt.Printf("Error: value must be hex: %v\n", err)
			return
		}
		policyName, _ := cmd.Flags().GetString("policy")
		policy, err := parseOverwritePolicy(policyName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

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

		if _, err := buf.Add(tag, value, policy); err != nil {
			fmt.Printf("Error adding record: %v\n", err)
			return
		}
		if err := bufferStore.Put(args[0], buf); err != nil {
			fmt.Printf("Error saving buffer: %v\n", err)
			return
		}

		fmt.Printf("Set tag %X (%d bytes)\n", uint16(tag), len(value))
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().String("policy", "reject", "Duplicate handling: reject, overwrite, skip, append")
}
