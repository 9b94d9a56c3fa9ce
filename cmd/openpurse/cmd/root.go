// Package cmd wires the openpurse command line: parsing, validation,
// translation, anonymization, schema export and database persistence.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openpurse/go-openpurse/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "openpurse",
	Short: "Financial message processing tool for ISO 20022 and SWIFT MT",
	Long:  ``,

	SilenceUsage: true,
}

var (
	configPath string
	cfg        config.Config
	log        *zap.Logger
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initApp)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(anonymizeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(persistCmd)

	translateCmd.Flags().StringP(translateCmdTarget, "t", "", "target format (mt103, mt940, pacs.008, ...)")
	translateCmd.MarkFlagRequired(translateCmdTarget)

	exportCmd.Flags().StringP(exportCmdFormat, "f", "json", "output format (json or yaml)")
	exportCmd.Flags().StringP(exportCmdOut, "o", "", "output file (stdout when empty)")

	persistCmd.Flags().String(persistCmdDBURL, "", "PostgreSQL connection string")
	persistCmd.MarkFlagRequired(persistCmdDBURL)
}

func initApp() {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.App.Env == "local" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
}

func readMessageFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
