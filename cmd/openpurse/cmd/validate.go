package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openpurse/go-openpurse/internal/parser"
	"github.com/openpurse/go-openpurse/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Run structural and business validation on a message file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(ccmd *cobra.Command, args []string) error {
	data, err := readMessageFile(args[0])
	if err != nil {
		return err
	}

	schemaValidator := validator.NewSchemaValidator(
		validator.WithSchemaDir(cfg.SchemaDir),
		validator.WithLogger(log),
	)
	report := schemaValidator.ValidateSchema(data)
	if !report.Valid {
		fmt.Fprintln(ccmd.OutOrStdout(), "Schema validation failed:")
		for _, e := range report.Errors {
			fmt.Fprintf(ccmd.OutOrStdout(), "  - %s\n", e)
		}
		return errors.New("schema validation failed")
	}

	msg := parser.New(data).ParseDetailed()
	report = validator.Validate(msg)
	if !report.Valid {
		fmt.Fprintln(ccmd.OutOrStdout(), "Structure OK, but data validation failed:")
		for _, e := range report.Errors {
			fmt.Fprintf(ccmd.OutOrStdout(), "  - %s\n", e)
		}
		return errors.New("data validation failed")
	}

	fmt.Fprintln(ccmd.OutOrStdout(), "Validation successful: message is valid and compliant.")

	return nil
}
