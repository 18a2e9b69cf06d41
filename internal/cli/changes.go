package cli

import (
	"github.com/spf13/cobra"
)

var changesObserver string

var changesCmd = &cobra.Command{
	Use:   "changes <file.json>",
	Short: "Show an observer's balance and owner-count changes",
	Long: `Interprets a transaction document's execution metadata and
prints what the observer sent and received (after fee adjustment when
the observer signed the transaction) plus their owner-count deltas.
The observer defaults to the transaction's signing account.`,
	Args: cobra.ExactArgs(1),
	RunE: runChanges,
}

func init() {
	changesCmd.Flags().StringVar(&changesObserver, "observer", "", "observer address (default: signing account)")
	rootCmd.AddCommand(changesCmd)
}

func runChanges(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	net, err := cfg.NetworkContext()
	if err != nil {
		return err
	}

	tx, err := parseDocument(args[0], net)
	if err != nil {
		return err
	}

	observer := changesObserver
	if observer == "" {
		observer = tx.Account()
	}

	balance := tx.BalanceChanges(observer)
	view := map[string]any{
		"observer": observer,
	}
	if balance.Sent != nil {
		view["sent"] = balance.Sent
	}
	if balance.Received != nil {
		view["received"] = balance.Received
	}
	if owners := tx.OwnerCountChanges(observer); len(owners) > 0 {
		view["ownerCountChanges"] = owners
	}
	if hooks := tx.HookExecutions(); len(hooks) > 0 {
		view["hookExecutions"] = hooks
	}

	return printJSON(cmd, view)
}
