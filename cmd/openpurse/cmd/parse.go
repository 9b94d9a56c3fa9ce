package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openpurse/go-openpurse/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a message file and print its JSON summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(ccmd *cobra.Command, args []string) error {
	data, err := readMessageFile(args[0])
	if err != nil {
		return err
	}

	msg := parser.New(data).ParseDetailed()
	out, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	fmt.Fprintln(ccmd.OutOrStdout(), string(out))

	return nil
}
