package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/production"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	// Columns taken by everything but the description in the summary table.
	summaryChrome = 72
	plotHeight    = 10
)

func newInspectCommand(a *app) *cobra.Command {
	var archiveID string
	var width int
	var plot bool
	var outputDir string
	cmd := &cobra.Command{
		Use:   "inspect [steps-file]",
		Short: "Print an exported trace or an archived run as a table",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 0 {
				width = terminalWidth()
			}
			exporter := a.cfg.Exporter()
			if outputDir != "" {
				exporter.Dir = outputDir
			}
			out := cmd.OutOrStdout()
			if archiveID != "" {
				if len(args) > 0 {
					return errors.Mark(errors.New("give either a steps file or --archive-id, not both"), errUsage)
				}
				p, err := production.NewPersister(a.cfg.ArchiveFormat, a.archiveDir(exporter.Dir))
				if err != nil {
					return err
				}
				archive, err := p.Load(cmd.Context(), archiveID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "run %s: %s/%s recorded %s",
					archive.RunID, archive.Config.StructureType, archive.Config.Operation,
					archive.Timestamp.Format("2006-01-02 15:04:05 MST"))
				if archive.Dropped > 0 {
					fmt.Fprintf(out, " (%d steps dropped)", archive.Dropped)
				}
				fmt.Fprintln(out)
				production.WriteSummary(out, archive.Trace, width)
				return plotFinal(out, archive.Trace, plot)
			}

			fn := exporter.StepsPath()
			if len(args) == 1 {
				fn = args[0]
			}
			doc, err := production.ReadTraceDocument(fn)
			if err != nil {
				return err
			}
			production.WriteSummary(out, doc, width)
			return plotFinal(out, doc, plot)
		},
	}
	cmd.Flags().StringVar(&archiveID, "archive-id", "", "inspect an archived run instead of a steps file")
	cmd.Flags().IntVar(&width, "width", -1, "clip descriptions to this many characters (0 disables, default fits the terminal)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory the run exported to (overrides output_dir)")
	cmd.Flags().BoolVar(&plot, "plot", false, "also chart the values of the final step")
	return cmd
}

// plotFinal charts the data of the last step, one point per value.
func plotFinal(w io.Writer, doc production.TraceDocument, enabled bool) error {
	if !enabled || len(doc.Steps) == 0 {
		return nil
	}
	last := doc.Steps[len(doc.Steps)-1]
	if len(last.Data) == 0 {
		fmt.Fprintf(w, "%s: no values to plot\n", last.Action)
		return nil
	}
	values := make([]float64, len(last.Data))
	for i, v := range last.Data {
		values[i] = float64(v)
	}
	_, err := fmt.Fprintln(w, asciigraph.Plot(values,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(last.Action)))
	return err
}

// terminalWidth returns the description width that fits stdout, or 0 when stdout
// is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= summaryChrome {
		return 0
	}
	return w - summaryChrome
}
