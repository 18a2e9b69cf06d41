package entity

import (
	"time"

	"xrplview/internal/codec/ledgertime"
	"xrplview/internal/meta"
)

// OfferCreate places an order on the decentralized exchange.
type OfferCreate struct {
	Transaction
}

// TakerGets is what the offer owner is selling.
func (o *OfferCreate) TakerGets() *Amount {
	return o.getAmount("TakerGets")
}

// TakerPays is what the offer owner wants in return.
func (o *OfferCreate) TakerPays() *Amount {
	return o.getAmount("TakerPays")
}

// Expiration returns the offer's expiration as ISO-8601, empty when the
// offer does not expire.
func (o *OfferCreate) Expiration() string {
	return o.getDateISO("Expiration")
}

// OfferSequence is the sequence of an earlier offer this one replaces.
func (o *OfferCreate) OfferSequence() *uint32 {
	return o.getUint32("OfferSequence")
}

// Executed reports whether the order book matched this offer: a modified
// Offer node in the metadata means it crossed an existing order.
func (o *OfferCreate) Executed() bool {
	return o.meta.OfferExecuted()
}

// Rate is the offer's price as a plain ratio of taker-pays to taker-gets,
// inverted when the taker-pays side is the native asset so the rate is
// always quoted in issued currency per native unit. A display ratio, not
// a monetary amount.
func (o *OfferCreate) Rate() float64 {
	return amountRate(o.TakerGets(), o.TakerPays())
}

// TakerGot is what the owner actually gave up, from the metadata. Distinct
// from the requested TakerGets.
func (o *OfferCreate) TakerGot() *Amount {
	return o.BalanceChanges(o.Account()).Sent
}

// TakerPaid is what the owner actually received, from the metadata.
// Distinct from the requested TakerPays.
func (o *OfferCreate) TakerPaid() *Amount {
	return o.BalanceChanges(o.Account()).Received
}

// OfferStatus resolves what happened to this offer, using the offer node
// when present and the trustline heuristic otherwise.
func (o *OfferCreate) OfferStatus(ledgerIndex string) meta.OfferStatus {
	return o.meta.OfferStatusChange(o.Account(), ledgerIndex)
}

// OfferCancel withdraws an existing offer.
type OfferCancel struct {
	Transaction
}

// OfferSequence identifies the offer being cancelled.
func (o *OfferCancel) OfferSequence() *uint32 {
	return o.getUint32("OfferSequence")
}

// amountRate computes pays/gets, flipped when pays is the native side.
func amountRate(gets, pays *Amount) float64 {
	if gets == nil || pays == nil {
		return 0
	}
	gv, err := gets.Decimal()
	if err != nil || gv.IsZero() {
		return 0
	}
	pv, err := pays.Decimal()
	if err != nil {
		return 0
	}
	if pays.IsNative() && !gets.IsNative() {
		if pv.IsZero() {
			return 0
		}
		rate, _ := gv.Div(pv).Float64()
		return rate
	}
	rate, _ := pv.Div(gv).Float64()
	return rate
}

// isExpiredAt implements the shared ledger-date expiry check.
func (e *base) isExpiredAt(epoch *uint32, now time.Time) bool {
	if epoch == nil {
		return false
	}
	expiry := time.UnixMilli(ledgertime.ToUnixMillis(int64(*epoch)))
	return !expiry.After(now)
}
