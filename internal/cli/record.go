package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"xrplview/internal/store"
)

var recordDBPath string

var recordCmd = &cobra.Command{
	Use:   "record <file.json>...",
	Short: "Interpret transactions and record their balance effects",
	Long: `Interprets each transaction document and inserts its per-address
balance-change rows into the history store, keyed by hash and compact
transaction identifier. Re-recording the same transaction is a no-op.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&recordDBPath, "db", "", "history store path (default: configured database_path)")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	net, err := cfg.NetworkContext()
	if err != nil {
		return err
	}

	dbPath := recordDBPath
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, path := range args {
		tx, err := parseDocument(path, net)
		if err != nil {
			return err
		}

		var records []store.ChangeRecord
		for address, changes := range tx.Meta().BalanceChanges(net.NativeAsset) {
			for _, change := range changes {
				records = append(records, store.ChangeRecord{
					Hash:     tx.Hash(),
					CTID:     tx.CTID(),
					Account:  address,
					Currency: change.Currency,
					Issuer:   change.Issuer,
					Value:    change.Value,
					Action:   string(change.Action),
				})
			}
		}
		if err := db.InsertChanges(cmd.Context(), records); err != nil {
			return fmt.Errorf("recording %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d change rows\n", path, len(records))
	}
	return nil
}
