package entity

import "time"

// OfferObject is a resting order on the decentralized exchange.
type OfferObject struct {
	LedgerObject
}

// TakerGets is what the offer owner is selling.
func (o *OfferObject) TakerGets() *Amount {
	return o.getAmount("TakerGets")
}

// TakerPays is what the offer owner wants in return.
func (o *OfferObject) TakerPays() *Amount {
	return o.getAmount("TakerPays")
}

// Sequence is the sequence the offer was placed with.
func (o *OfferObject) Sequence() *uint32 {
	return o.getUint32("Sequence")
}

// Expiration returns the offer's expiration as ISO-8601, empty when the
// offer does not expire.
func (o *OfferObject) Expiration() string {
	return o.getDateISO("Expiration")
}

// IsExpired reports whether the offer's expiration has passed.
func (o *OfferObject) IsExpired(now time.Time) bool {
	return o.isExpiredAt(o.getDateEpoch("Expiration"), now)
}

// Rate is the offer's price as a plain display ratio, quoted the same way
// as OfferCreate.Rate.
func (o *OfferObject) Rate() float64 {
	return amountRate(o.TakerGets(), o.TakerPays())
}

// EscrowObject is a held native-asset payment.
type EscrowObject struct {
	LedgerObject
}

// Amount is the escrowed amount.
func (e *EscrowObject) Amount() *Amount {
	return e.getAmount("Amount")
}

// Destination is the account the escrow releases to.
func (e *EscrowObject) Destination() *Destination {
	return e.destination()
}

// Condition is the crypto-condition hex, empty for time-only escrows.
func (e *EscrowObject) Condition() string {
	return e.getString("Condition")
}

// CancelAfter returns the cancellation time as ISO-8601, empty when unset.
func (e *EscrowObject) CancelAfter() string {
	return e.getDateISO("CancelAfter")
}

// FinishAfter returns the earliest finish time as ISO-8601, empty when
// unset.
func (e *EscrowObject) FinishAfter() string {
	return e.getDateISO("FinishAfter")
}

// IsExpired reports whether the escrow's cancel-after time has passed.
func (e *EscrowObject) IsExpired(now time.Time) bool {
	return e.isExpiredAt(e.getDateEpoch("CancelAfter"), now)
}

// CanFinish reports whether the escrow can be finished at now.
func (e *EscrowObject) CanFinish(now time.Time) bool {
	if e.IsExpired(now) {
		return false
	}
	finishAfter := e.getDateEpoch("FinishAfter")
	if finishAfter == nil {
		return true
	}
	return e.isExpiredAt(finishAfter, now)
}

// destination reads a ledger object's Destination/DestinationTag pair.
func (o *LedgerObject) destination() *Destination {
	address := o.getString("Destination")
	if address == "" {
		return nil
	}
	return &Destination{
		Address: address,
		Tag:     o.getUint32("DestinationTag"),
	}
}

// CheckObject is an uncashed deferred payment.
type CheckObject struct {
	LedgerObject
}

// SendMax caps what cashing the check can pull from its sender.
func (c *CheckObject) SendMax() *Amount {
	return c.getAmount("SendMax")
}

// Destination is the account that may cash the check.
func (c *CheckObject) Destination() *Destination {
	return c.destination()
}

// Expiration returns the check's expiration as ISO-8601, empty when the
// check does not expire.
func (c *CheckObject) Expiration() string {
	return c.getDateISO("Expiration")
}

// InvoiceID links the check to an invoice, empty when unset.
func (c *CheckObject) InvoiceID() string {
	return c.getString("InvoiceID")
}

// IsExpired reports whether the check's expiration has passed.
func (c *CheckObject) IsExpired(now time.Time) bool {
	return c.isExpiredAt(c.getDateEpoch("Expiration"), now)
}

// TicketObject is a set-aside sequence number.
type TicketObject struct {
	LedgerObject
}

// TicketSequence is the sequence this ticket stands in for.
func (t *TicketObject) TicketSequence() *uint32 {
	return t.getUint32("TicketSequence")
}

// PayChannelObject is an open payment channel.
type PayChannelObject struct {
	LedgerObject
}

// Amount is the channel's total funding.
func (p *PayChannelObject) Amount() *Amount {
	return p.getAmount("Amount")
}

// Balance is the total already paid out of the channel.
func (p *PayChannelObject) Balance() *Amount {
	return p.getAmount("Balance")
}

// Destination is the channel's payee.
func (p *PayChannelObject) Destination() *Destination {
	return p.destination()
}

// SettleDelay is the close delay in seconds.
func (p *PayChannelObject) SettleDelay() *uint32 {
	return p.getUint32("SettleDelay")
}

// PublicKey is the channel's claim-signing key.
func (p *PayChannelObject) PublicKey() string {
	return p.getString("PublicKey")
}

// Expiration returns the channel's mutable expiration as ISO-8601, empty
// when unset.
func (p *PayChannelObject) Expiration() string {
	return p.getDateISO("Expiration")
}

// IsExpired reports whether the channel's expiration has passed.
func (p *PayChannelObject) IsExpired(now time.Time) bool {
	return p.isExpiredAt(p.getDateEpoch("Expiration"), now)
}

// NFTokenOfferObject is a resting buy or sell offer for a token.
type NFTokenOfferObject struct {
	LedgerObject
}

// NFTokenID identifies the token the offer is for.
func (n *NFTokenOfferObject) NFTokenID() string {
	return n.getString("NFTokenID")
}

// Amount is the offered price.
func (n *NFTokenOfferObject) Amount() *Amount {
	return n.getAmount("Amount")
}

// Owner is the account that placed the offer.
func (n *NFTokenOfferObject) Owner() string {
	return n.getString("Owner")
}

// Destination restricts who may accept the offer.
func (n *NFTokenOfferObject) Destination() *Destination {
	return n.destination()
}

// Expiration returns the offer's expiration as ISO-8601, empty when the
// offer does not expire.
func (n *NFTokenOfferObject) Expiration() string {
	return n.getDateISO("Expiration")
}

// IsExpired reports whether the offer's expiration has passed.
func (n *NFTokenOfferObject) IsExpired(now time.Time) bool {
	return n.isExpiredAt(n.getDateEpoch("Expiration"), now)
}
