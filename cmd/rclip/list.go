package main

import (
	"github.com/matsen/rclip/internal/command"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records",
	Long: `List every record as "<id> => (<key> => <value>)", ascending by id.
Prints nothing when the database is empty.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, command.Command{Kind: command.List})
	},
}
