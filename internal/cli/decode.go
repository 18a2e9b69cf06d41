package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xrplview/internal/entity"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file.json>",
	Short: "Decode a transaction document into its typed view",
	Long: `Reads a {"tx": ..., "meta": ...} JSON document (or a bare
transaction with embedded metaData) and prints the interpreted view:
common fields, decoded flags, the compact transaction identifier, and
the metadata-reported result.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
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

	view := map[string]any{
		"transactionType": tx.TransactionType(),
		"account":         tx.Account(),
		"fee":             tx.Fee(),
		"flags":           setFlagNames(tx.Flags()),
		"pseudo":          tx.IsPseudo(),
	}
	if hash := tx.Hash(); hash != "" {
		view["hash"] = hash
	}
	if ctid := tx.CTID(); ctid != "" {
		view["ctid"] = ctid
	}
	if seq := tx.Sequence(); seq != nil {
		view["sequence"] = *seq
	}
	if result := tx.Meta().TransactionResult; result != "" {
		view["result"] = result
	}
	if xapp := tx.XappIdentifier(); xapp != "" {
		view["xappIdentifier"] = xapp
	}

	return printJSON(cmd, view)
}

// parseDocument reads and interprets one transaction document file.
func parseDocument(path string, net entity.NetworkContext) (entity.TxEntity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	tx, err := entity.ParseJSON(data, net)
	if err != nil {
		return nil, fmt.Errorf("interpreting %s: %w", path, err)
	}
	return tx, nil
}

// setFlagNames reduces a decoded flag map to the names that are set.
func setFlagNames(decoded map[string]bool) []string {
	var names []string
	for name, set := range decoded {
		if set {
			names = append(names, name)
		}
	}
	return names
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
