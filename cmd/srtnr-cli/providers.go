package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List shortening providers",
	Long:  `List the supported providers with their selector index, ID and credential requirement.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tID\tNAME\tAUTH\tCONFIGURED")
		for i, p := range newRegistry().List() {
			configured := "yes"
			if p.Auth.Missing() {
				configured = "no"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, p.ID, p.Name, p.Auth.Kind, configured)
		}
		return w.Flush()
	},
}
