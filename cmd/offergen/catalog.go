package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/offerkit/pkg/layout"
	"github.com/dmitrymomot/offerkit/pkg/theme"
)

func newVariationsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "variations",
		Short: "List color variations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, bold("ID")+"\t"+bold("NAME")+"\t"+bold("PRIMARY")+"\t"+bold("CATEGORY"))
			for _, o := range theme.DropdownOptions() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Value, o.Label, o.Variation.PrimaryColor, o.Variation.Category)
			}
			return tw.Flush()
		},
	}
}

func newLayoutsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List layout templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, bold("ID")+"\t"+bold("NAME")+"\t"+bold("DESCRIPTION"))
			for _, t := range layout.Templates() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, t.Description)
			}
			return tw.Flush()
		},
	}
}
