package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/admonition"
	"github.com/gorewood/admonitions/internal/output"
)

// scanBlock is one row of scan output.
type scanBlock struct {
	Form     string   `json:"form"`
	Type     string   `json:"type"`
	Title    string   `json:"title,omitempty"`
	HasTitle bool     `json:"has_title"`
	Lines    []string `json:"lines"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
}

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file|-]",
		Short: "List the admonition blocks in a document",
		Long: `List the admonition blocks in a document without converting them.

Shows each block's form, lowercased type, title, body line count and byte
offsets. Useful for checking what a backend will see.

Examples:
  admonitions scan docs/index.md
  admonitions scan docs/index.md --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	name, text, err := readInput(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	blocks := []scanBlock{}
	for m := range admonition.Scan(text) {
		block, err := admonition.BlockFromMatch(m)
		if err != nil {
			err = output.NewUserError("block at offset %d: %v", m.Start, err)
			printer.Error(err)
			return err
		}
		blocks = append(blocks, scanBlock{
			Form:     block.Form.String(),
			Type:     block.Type,
			Title:    block.Title,
			HasTitle: block.HasTitle,
			Lines:    block.Lines,
			Start:    m.Start,
			End:      m.End,
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"source": name,
			"count":  len(blocks),
			"blocks": blocks,
		})
	}

	if len(blocks) == 0 {
		printer.Println("No admonitions in " + name)
		return nil
	}

	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, []string{
			b.Form,
			printer.Accent(admonition.AsideClass(b.Type), b.Type),
			b.Title,
			strconv.Itoa(len(b.Lines)),
			fmt.Sprintf("%d-%d", b.Start, b.End),
		})
	}
	printer.Section(fmt.Sprintf("%d admonitions in %s", len(blocks), name))
	printer.Table([]string{"FORM", "TYPE", "TITLE", "LINES", "BYTES"}, rows)
	return nil
}
