package main

import (
	"fmt"

	"noteboard/internal/config"
	"noteboard/internal/seed"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [seed-file]",
	Short: "Validate a seed file without opening the board",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ExpandPath(cfg.SeedPath)
		if len(args) == 1 {
			path = args[0]
		}
		notes, err := seed.Load(path)
		if err != nil {
			return err
		}
		images := 0
		for _, n := range notes {
			if n.HasImage() {
				images++
			}
		}
		name := path
		if name == "" {
			name = "built-in seed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d notes, %d with images\n", name, len(notes), images)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
