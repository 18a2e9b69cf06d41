package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"xrplview/internal/ctid"
)

var ctidCmd = &cobra.Command{
	Use:   "ctid",
	Short: "Encode and decode compact transaction identifiers",
}

var ctidEncodeCmd = &cobra.Command{
	Use:   "encode <ledgerSeq> <txnIndex> [networkID]",
	Short: "Encode a ledger position into a compact transaction identifier",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runCTIDEncode,
}

var ctidDecodeCmd = &cobra.Command{
	Use:   "decode <ctid>",
	Short: "Decode a compact transaction identifier into its ledger position",
	Args:  cobra.ExactArgs(1),
	RunE:  runCTIDDecode,
}

func init() {
	ctidCmd.AddCommand(ctidEncodeCmd)
	ctidCmd.AddCommand(ctidDecodeCmd)
	rootCmd.AddCommand(ctidCmd)
}

func runCTIDEncode(cmd *cobra.Command, args []string) error {
	ledgerSeq, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid ledger sequence %q: %w", args[0], err)
	}
	txnIndex, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return fmt.Errorf("invalid transaction index %q: %w", args[1], err)
	}

	var networkID uint64
	if len(args) == 3 {
		networkID, err = strconv.ParseUint(args[2], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid network id %q: %w", args[2], err)
		}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		profile, err := cfg.Active()
		if err != nil {
			return err
		}
		networkID = uint64(uint16(profile.NetworkID))
	}

	encoded, err := ctid.Encode(uint32(ledgerSeq), uint16(txnIndex), uint16(networkID))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}

func runCTIDDecode(cmd *cobra.Command, args []string) error {
	ledgerSeq, txnIndex, networkID, err := ctid.Decode(args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, map[string]any{
		"ledgerSeq": ledgerSeq,
		"txnIndex":  txnIndex,
		"networkID": networkID,
	})
}
