package entity

import "strconv"

// DefaultBaseFeeDrops is the open-ledger base fee assumed when the caller
// supplies none.
const DefaultBaseFeeDrops int64 = 12

// FeeCalculator is implemented by every transaction view. Types with
// special fee rules (EscrowFinish, AccountDelete) override the default.
type FeeCalculator interface {
	CalculateFee(baseFeeDrops int64) string
}

// CalculateFee returns the fee in whole drops for this transaction at the
// given network base fee.
func (t *Transaction) CalculateFee(baseFeeDrops int64) string {
	if baseFeeDrops <= 0 {
		baseFeeDrops = DefaultBaseFeeDrops
	}
	return strconv.FormatInt(baseFeeDrops, 10)
}
