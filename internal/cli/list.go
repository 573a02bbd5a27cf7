package cli

import (
	"github.com/comalice/algotrace/internal/drivers"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the runnable structure/operation pairs",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			tbl := tablewriter.NewWriter(cmd.OutOrStdout())
			tbl.SetHeader([]string{"Structure", "Operation", "Target", "Description"})
			tbl.SetAutoWrapText(false)
			for _, op := range drivers.Operations() {
				target := ""
				if op.UsesTarget {
					target = "yes"
				}
				tbl.Append([]string{string(op.Structure), op.Name, target, op.Summary})
			}
			tbl.Render()
		},
	}
}
