package cli

import (
	"fmt"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/tabular/sqlstore"
	"github.com/spf13/cobra"
)

func newStoreCommand(a *app) *cobra.Command {
	var input, table string
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Store records in a database table",
		Example: `  tabulate store --input contacts.json --dsn log.db
  tabulate store -i contacts.yaml --driver postgres --dsn postgres://localhost/log`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const op errors.Op = "cli.store"
			if a.cfg.Database.DSN == "" {
				return errors.New(op).Msg("a data source name is required (--dsn or database.dsn)")
			}
			t, err := a.loadTable(input, table, cmd.InOrStdin())
			if err != nil {
				return err
			}

			store, err := sqlstore.Open(cmd.Context(), a.cfg.Database.Driver, a.cfg.Database.DSN, sqlstore.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			n, err := store.Save(cmd.Context(), t)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stored %d rows in %s\n", n, t.Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input file (.json, .yaml or .yml; - for stdin)")
	cmd.Flags().StringVar(&table, "table", "", "Table name (default: input file name)")
	cmd.Flags().String("driver", "", "Database driver (sqlite|postgres)")
	cmd.Flags().String("dsn", "", "Data source name, a file path for sqlite")
	return cmd
}
