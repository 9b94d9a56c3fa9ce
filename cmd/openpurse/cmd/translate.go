package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openpurse/go-openpurse/internal/parser"
	"github.com/openpurse/go-openpurse/internal/translator"
)

var (
	translateCmd = &cobra.Command{
		Use:     "translate <file>",
		Short:   "Translate a message file to another wire format",
		Example: "openpurse translate payment.xml -t mt103",
		Args:    cobra.ExactArgs(1),
		RunE:    runTranslate,
	}
	translateCmdTarget = "to"
)

func runTranslate(ccmd *cobra.Command, args []string) error {
	target, _ := ccmd.Flags().GetString(translateCmdTarget)

	data, err := readMessageFile(args[0])
	if err != nil {
		return err
	}
	msg := parser.New(data).ParseDetailed()

	tr := translator.New()
	var out []byte
	switch {
	case strings.HasPrefix(strings.ToLower(target), "mt"):
		out, err = tr.ToMT(msg, strings.TrimPrefix(strings.ToLower(target), "mt"))
	default:
		out, err = tr.ToMX(msg, strings.ToLower(target))
	}
	if err != nil {
		return fmt.Errorf("translate to %s: %w", target, err)
	}
	fmt.Fprintln(ccmd.OutOrStdout(), string(out))

	return nil
}
