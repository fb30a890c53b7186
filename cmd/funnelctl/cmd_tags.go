package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"conversation-funnel-service/internal/funnel/core/domain"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the message tag taxonomy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTags(cmd.OutOrStdout())
	},
}

func printTags(out io.Writer) error {
	conversion := map[string]bool{}
	for _, cat := range domain.FunnelCategories {
		for _, tag := range domain.ConversionTags(cat) {
			conversion[tag] = true
		}
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tCATEGORY\tLABEL\tCONVERSION")
	for _, tag := range domain.AllTags() {
		cat := domain.CategoryOf(tag)
		catLabel := "-"
		if cat != domain.CategoryNone {
			catLabel = domain.CategoryLabel(cat)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", tag, catLabel, domain.TagLabel(tag), conversion[tag])
	}
	return w.Flush()
}
