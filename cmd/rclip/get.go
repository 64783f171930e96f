package main

import (
	"github.com/matsen/rclip/internal/command"
	"github.com/spf13/cobra"
)

var getByKey bool

func init() {
	getCmd.Flags().BoolVarP(&getByKey, "by-key", "k", false, "Match the argument against record keys instead of ids")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key_or_id>",
	Short: "Print a stored value",
	Long: `Print the value of a record, or (nil) if there is none.

The argument is a numeric id unless --by-key is given. When several
records share a key, the one with the lowest id is used.

Examples:
  rclip get 3
  rclip get user --by-key`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, command.Command{Kind: command.Get, Target: args[0], ByKey: getByKey})
	},
}
