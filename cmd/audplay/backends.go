// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/audplay/backend"
	"github.com/spf13/cobra"
)

// backendsCmd lists the compiled-in backends
var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available backends",
	Long:  "List the backends compiled into this binary. The first one is the default.",
	Run: func(cmd *cobra.Command, args []string) {
		for i, name := range backend.Names() {
			if i == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", name)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
