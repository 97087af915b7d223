package cmd

import (
	"bytes"
	"fmt"

	"concatlist/pkg/combine"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCombine scans the working directory and prints a summary of the run.
func runCombine(cmd *cobra.Command, logger *zap.Logger) error {
	out := cmd.OutOrStdout()

	summary, err := combine.Execute(logger, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s", renderSummaryTable(summary))
	fmt.Fprintf(out, "\nDone: %s\n", summary.ProjectName)
	return nil
}

// renderSummaryTable lays out the two outputs, their sizes in KB and the counts.
func renderSummaryTable(s *combine.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Output", "Size (KB)", "Details"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	table.Append([]string{
		s.Output,
		formatKB(s.OutputSize),
		fmt.Sprintf("%d included, %d excluded", s.Included, s.Excluded),
	})
	table.Append([]string{
		s.Manifest,
		formatKB(s.ManifestSize),
		fmt.Sprintf("%d entries", s.Entries),
	})

	table.Render()
	return tableBuffer.String()
}

func formatKB(size int64) string {
	return fmt.Sprintf("%.2f", float64(size)/1024)
}
