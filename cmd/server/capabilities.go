package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/versten1uk/new-arch-spike/internal/capability"
)

func newCapabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "List the capability names a complete host binds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range capability.All() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
