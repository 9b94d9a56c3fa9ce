package cmd

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openpurse/go-openpurse/internal/parser"
	"github.com/openpurse/go-openpurse/internal/repositories"
)

var (
	persistCmd = &cobra.Command{
		Use:     "persist <file>",
		Short:   "Parse a message file and save it to a database",
		Example: "openpurse persist payment.xml --db-url 'host=localhost dbname=openpurse'",
		Args:    cobra.ExactArgs(1),
		RunE:    runPersist,
	}
	persistCmdDBURL = "db-url"
)

func runPersist(ccmd *cobra.Command, args []string) error {
	dbURL, _ := ccmd.Flags().GetString(persistCmdDBURL)
	if dbURL == "" {
		dbURL = cfg.Postgres.Write.DSN()
	}

	data, err := readMessageFile(args[0])
	if err != nil {
		return err
	}
	msg := parser.New(data).ParseDetailed()

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := ccmd.Context()
	repo := repositories.NewSQLRepository(db, db, log).GetMessageRepository()
	if err := repo.CreateSchema(ctx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	record, err := repo.Save(ctx, msg)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}

	log.Info("message persisted",
		zap.Int64("id", record.ID),
		zap.Stringp("message_id", record.MessageID),
	)
	fmt.Fprintf(ccmd.OutOrStdout(), "Successfully persisted message (record id %d).\n", record.ID)

	return nil
}
