package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/admonition"
)

var backendDescriptions = map[admonition.Backend]string{
	admonition.BackendPandoc: "blockquote with a bold header line",
	admonition.BackendSlate:  "<aside> element, types folded onto slate classes",
	admonition.BackendHugo:   "{{% admonition %}} shortcode with form, type and title",
}

type backendInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Configured  bool   `json:"configured"`
}

// newBackendsCmd creates the backends command.
func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List supported backends",
		Args:  cobra.NoArgs,
		RunE:  runBackends,
	}
}

func runBackends(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	rt, err := loadRuntime(cmd, false)
	if err != nil {
		printer.Error(err)
		return err
	}

	infos := make([]backendInfo, 0, len(admonition.Backends()))
	for _, b := range admonition.Backends() {
		infos = append(infos, backendInfo{
			Name:        string(b),
			Description: backendDescriptions[b],
			Configured:  string(b) == rt.cfg.Backend,
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"backends": infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		mark := ""
		if info.Configured {
			mark = "*"
		}
		rows = append(rows, []string{mark, info.Name, info.Description})
	}
	printer.Table([]string{"", "BACKEND", "OUTPUT"}, rows)
	return nil
}
