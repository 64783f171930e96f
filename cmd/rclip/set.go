package main

import (
	"github.com/matsen/rclip/internal/command"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a new record",
	Long: `Store a new record and print its id.

set never updates: storing an existing key adds another record with the
next id.

Example:
  rclip set user alice`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, command.Command{Kind: command.Set, Key: args[0], Value: args[1]})
	},
}
