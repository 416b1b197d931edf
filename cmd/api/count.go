package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCountCmd prints the stored visitor count without incrementing it
func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the current visitor count",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, cleanup, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			count, err := container.VisitorService.CurrentVisitorCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}
