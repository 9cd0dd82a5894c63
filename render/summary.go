// Package render turns demo results into human-readable terminal output.
package render

import (
	"fmt"
	"io"

	"type-lab/services"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Header prints a section banner, colorized when enabled.
func Header(out io.Writer, title string, colours bool) {
	header := fmt.Sprintf("  ====== %s ======", title)
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(out, header)
}

// Summary renders one row per demo report.
func Summary(out io.Writer, reports []services.Report) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Demo", "Duration", "Lines"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, r := range reports {
		table.Append([]string{
			r.Name,
			r.Duration.String(),
			fmt.Sprintf("%d", r.Lines),
		})
	}
	table.Render()
}
