package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openpurse/go-openpurse/internal/anonymizer"
)

var anonymizeCmd = &cobra.Command{
	Use:   "anonymize <file>",
	Short: "Scrub personally identifiable information from a message file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnonymize,
}

func runAnonymize(ccmd *cobra.Command, args []string) error {
	data, err := readMessageFile(args[0])
	if err != nil {
		return err
	}

	anon := anonymizer.New(anonymizer.WithSalt(cfg.Anonymizer.Salt))

	var out []byte
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{1:")) {
		out = anon.AnonymizeMT(data)
	} else {
		out = anon.AnonymizeXML(data)
	}
	fmt.Fprintln(ccmd.OutOrStdout(), string(out))

	return nil
}
