package entity

import (
	"strconv"
	"time"
)

// EscrowCreate locks native-asset value until a time or condition is met.
type EscrowCreate struct {
	Transaction
}

// Amount is the escrowed amount.
func (e *EscrowCreate) Amount() *Amount {
	return e.getAmount("Amount")
}

// Destination is the account the escrow releases to.
func (e *EscrowCreate) Destination() *Destination {
	return e.destination()
}

// Condition is the crypto-condition hex that must be fulfilled, empty for
// time-only escrows.
func (e *EscrowCreate) Condition() string {
	return e.getString("Condition")
}

// CancelAfter returns the cancellation time as ISO-8601, empty when unset.
func (e *EscrowCreate) CancelAfter() string {
	return e.getDateISO("CancelAfter")
}

// FinishAfter returns the earliest finish time as ISO-8601, empty when
// unset.
func (e *EscrowCreate) FinishAfter() string {
	return e.getDateISO("FinishAfter")
}

// IsExpired reports whether the escrow's cancel-after time has passed.
func (e *EscrowCreate) IsExpired(now time.Time) bool {
	return e.isExpiredAt(e.getDateEpoch("CancelAfter"), now)
}

// CanFinish reports whether the escrow can be finished at now: it must
// not be expired and any finish-after constraint must have passed.
func (e *EscrowCreate) CanFinish(now time.Time) bool {
	if e.IsExpired(now) {
		return false
	}
	finishAfter := e.getDateEpoch("FinishAfter")
	if finishAfter == nil {
		return true
	}
	return e.isExpiredAt(finishAfter, now)
}

// EscrowFinish releases an escrow, optionally proving a crypto-condition.
type EscrowFinish struct {
	Transaction
}

// Owner is the account that created the escrow.
func (e *EscrowFinish) Owner() string {
	return e.getString("Owner")
}

// OfferSequence identifies the escrow by its creation sequence.
func (e *EscrowFinish) OfferSequence() *uint32 {
	return e.getUint32("OfferSequence")
}

// Condition is the crypto-condition hex being fulfilled.
func (e *EscrowFinish) Condition() string {
	return e.getString("Condition")
}

// Fulfillment is the hex fulfillment of the condition.
func (e *EscrowFinish) Fulfillment() string {
	return e.getString("Fulfillment")
}

// CalculateFee scales the base fee by the fulfillment size: base fee
// times (fulfillment bytes / 16 + 33) when a fulfillment is present.
func (e *EscrowFinish) CalculateFee(baseFeeDrops int64) string {
	if baseFeeDrops <= 0 {
		baseFeeDrops = DefaultBaseFeeDrops
	}
	fulfillment := e.Fulfillment()
	if fulfillment == "" {
		return strconv.FormatInt(baseFeeDrops, 10)
	}
	byteLen := int64(len(fulfillment) / 2)
	return strconv.FormatInt(baseFeeDrops*(byteLen/16+33), 10)
}

// EscrowCancel returns an expired escrow's funds to the creator.
type EscrowCancel struct {
	Transaction
}

// Owner is the account that created the escrow.
func (e *EscrowCancel) Owner() string {
	return e.getString("Owner")
}

// OfferSequence identifies the escrow by its creation sequence.
func (e *EscrowCancel) OfferSequence() *uint32 {
	return e.getUint32("OfferSequence")
}
