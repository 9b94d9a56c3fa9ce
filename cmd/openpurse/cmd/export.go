package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openpurse/go-openpurse/internal/exporter"
)

var (
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the message model as an OpenAPI 3.0.0 specification",
		RunE:  runExport,
	}
	exportCmdFormat = "format"
	exportCmdOut    = "out"
)

func runExport(ccmd *cobra.Command, args []string) error {
	format, _ := ccmd.Flags().GetString(exportCmdFormat)
	out, _ := ccmd.Flags().GetString(exportCmdOut)

	switch format {
	case "json":
		if out == "" {
			return exporter.WriteJSON(ccmd.OutOrStdout())
		}
		return exporter.ExportJSON(out)
	case "yaml", "yml":
		if out == "" {
			return exporter.WriteYAML(ccmd.OutOrStdout())
		}
		return exporter.ExportYAML(out)
	}

	return fmt.Errorf("unsupported export format: %s", format)
}
