// Package ctid encodes and decodes compact transaction identifiers.
//
// Layout (64 bits, rendered as 16 uppercase hex characters):
//
//	bits 60-63: 0xC marker
//	bits 32-59: ledger sequence (28 bits)
//	bits 16-31: transaction index within the ledger (16 bits)
//	bits  0-15: network id (16 bits)
package ctid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Common errors
var (
	ErrLedgerSeqTooLarge = errors.New("ledger sequence exceeds 28 bits")
	ErrInvalidCTID       = errors.New("invalid compact transaction identifier")
)

const maxLedgerSeq = 0x0FFFFFFF

// Encode builds a compact transaction identifier from its components.
func Encode(ledgerSeq uint32, txnIndex uint16, networkID uint16) (string, error) {
	if ledgerSeq > maxLedgerSeq {
		return "", fmt.Errorf("%w: %d", ErrLedgerSeqTooLarge, ledgerSeq)
	}
	v := uint64(0xC)<<60 |
		uint64(ledgerSeq)<<32 |
		uint64(txnIndex)<<16 |
		uint64(networkID)
	return fmt.Sprintf("%016X", v), nil
}

// Decode splits a compact transaction identifier into its components.
func Decode(ctid string) (ledgerSeq uint32, txnIndex uint16, networkID uint16, err error) {
	ctid = strings.ToUpper(strings.TrimSpace(ctid))
	if len(ctid) != 16 {
		return 0, 0, 0, fmt.Errorf("%w: expected 16 characters, got %d", ErrInvalidCTID, len(ctid))
	}
	if ctid[0] != 'C' {
		return 0, 0, 0, fmt.Errorf("%w: must start with 'C'", ErrInvalidCTID)
	}
	v, perr := strconv.ParseUint(ctid, 16, 64)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrInvalidCTID, perr)
	}
	ledgerSeq = uint32((v >> 32) & maxLedgerSeq)
	txnIndex = uint16((v >> 16) & 0xFFFF)
	networkID = uint16(v & 0xFFFF)
	return ledgerSeq, txnIndex, networkID, nil
}

// IsWellFormed reports whether s parses as a compact transaction identifier.
func IsWellFormed(s string) bool {
	_, _, _, err := Decode(s)
	return err == nil
}
