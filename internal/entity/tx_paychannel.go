package entity

import "xrplview/internal/meta"

// PaymentChannelCreate opens a unidirectional native-asset channel.
type PaymentChannelCreate struct {
	Transaction
}

// Amount is the channel's initial funding.
func (p *PaymentChannelCreate) Amount() *Amount {
	return p.getAmount("Amount")
}

// Destination is the channel's payee.
func (p *PaymentChannelCreate) Destination() *Destination {
	return p.destination()
}

// SettleDelay is the close delay in seconds.
func (p *PaymentChannelCreate) SettleDelay() *uint32 {
	return p.getUint32("SettleDelay")
}

// PublicKey is the key that signs channel claims.
func (p *PaymentChannelCreate) PublicKey() string {
	return p.getString("PublicKey")
}

// CancelAfter returns the channel's immutable expiration as ISO-8601,
// empty when unset.
func (p *PaymentChannelCreate) CancelAfter() string {
	return p.getDateISO("CancelAfter")
}

// ChannelID is the ledger index of the channel this transaction created,
// scanned from the metadata's created PayChannel node.
func (p *PaymentChannelCreate) ChannelID() string {
	for _, node := range p.meta.NodesOfType("PayChannel") {
		if node.DiffType == meta.DiffCreated {
			return node.LedgerIndex
		}
	}
	return ""
}

// PaymentChannelFund adds value or extends an open channel.
type PaymentChannelFund struct {
	Transaction
}

// Channel identifies the channel being funded.
func (p *PaymentChannelFund) Channel() string {
	return p.getString("Channel")
}

// Amount is the additional funding.
func (p *PaymentChannelFund) Amount() *Amount {
	return p.getAmount("Amount")
}

// Expiration returns the new mutable expiration as ISO-8601, empty when
// unset.
func (p *PaymentChannelFund) Expiration() string {
	return p.getDateISO("Expiration")
}

// PaymentChannelClaim redeems a claim against or closes a channel.
type PaymentChannelClaim struct {
	Transaction
}

// Channel identifies the channel being claimed against.
func (p *PaymentChannelClaim) Channel() string {
	return p.getString("Channel")
}

// Balance is the total delivered after this claim.
func (p *PaymentChannelClaim) Balance() *Amount {
	return p.getAmount("Balance")
}

// Amount is the claim's authorized amount.
func (p *PaymentChannelClaim) Amount() *Amount {
	return p.getAmount("Amount")
}

// Signature is the claim signature, empty when the signer owns the
// channel.
func (p *PaymentChannelClaim) Signature() string {
	return p.getString("Signature")
}

// PublicKey is the channel's claim-signing key.
func (p *PaymentChannelClaim) PublicKey() string {
	return p.getString("PublicKey")
}
