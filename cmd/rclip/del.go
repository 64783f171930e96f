package main

import (
	"github.com/matsen/rclip/internal/command"
	"github.com/spf13/cobra"
)

var delByKey bool

func init() {
	delCmd.Flags().BoolVarP(&delByKey, "by-key", "k", false, "Match the argument against record keys instead of ids")
	rootCmd.AddCommand(delCmd)
}

var delCmd = &cobra.Command{
	Use:   "del <key_or_id>",
	Short: "Delete a record",
	Long: `Delete one record. Prints (integer) 1 if a record was removed,
(integer) 0 otherwise.

With --by-key only the lowest-id record carrying the key is removed.

Examples:
  rclip del 3
  rclip del user --by-key`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, command.Command{Kind: command.Del, Target: args[0], ByKey: delByKey})
	},
}
