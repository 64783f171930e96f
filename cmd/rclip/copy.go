package main

import (
	"github.com/matsen/rclip/internal/command"
	"github.com/spf13/cobra"
)

var copyByKey bool

func init() {
	copyCmd.Flags().BoolVarP(&copyByKey, "by-key", "k", false, "Match the argument against record keys instead of ids")
	rootCmd.AddCommand(copyCmd)
}

var copyCmd = &cobra.Command{
	Use:   "copy <key_or_id>",
	Short: "Copy a stored value to the clipboard",
	Long: `Copy the value of a record to the system clipboard.

Resolution is the same as get. Fails when no clipboard tool (pbcopy,
wl-copy, xclip, xsel, clip) is installed.

Examples:
  rclip copy 3
  rclip copy pass -k`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, command.Command{Kind: command.Copy, Target: args[0], ByKey: copyByKey})
	},
}
