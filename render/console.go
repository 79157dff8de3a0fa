package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/utils"
)

// ConsoleRenderer lays the report out as aligned text tables. Terminals do
// not run the bidirectional algorithm, so every cell is shaped here: numerals
// converted to the Eastern Arabic script, then reordered into visual order.
type ConsoleRenderer struct {
	Out io.Writer
}

func NewConsoleRenderer() *ConsoleRenderer {
	return &ConsoleRenderer{Out: os.Stdout}
}

func (r *ConsoleRenderer) Render(title string, sections []TableSection) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	sectionColor := color.New(color.FgYellow, color.Bold)
	headerColor := color.New(color.Bold)

	if _, err := titleColor.Fprintln(r.Out, utils.DisplayRTL(title)); err != nil {
		return fmt.Errorf("failed to render report title: %w", err)
	}

	for _, section := range sections {
		if _, err := fmt.Fprintln(r.Out); err != nil {
			return fmt.Errorf("failed to render section break: %w", err)
		}
		if _, err := sectionColor.Fprintln(r.Out, utils.DisplayRTL(section.Title)); err != nil {
			return fmt.Errorf("failed to render section title: %w", err)
		}

		tw := tabwriter.NewWriter(r.Out, 2, 4, 2, ' ', 0)
		if _, err := headerColor.Fprintln(tw, shapeLine(section.Headers)); err != nil {
			return fmt.Errorf("failed to render table headers: %w", err)
		}
		for _, row := range section.Rows {
			if _, err := fmt.Fprintln(tw, shapeLine(row)); err != nil {
				return fmt.Errorf("failed to render table row: %w", err)
			}
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to flush table: %w", err)
		}
	}
	return nil
}

func shapeLine(cells []string) string {
	shaped := make([]string, len(cells))
	for i, cell := range cells {
		shaped[i] = utils.ShapeCell(cell)
	}
	return strings.Join(shaped, "\t")
}
