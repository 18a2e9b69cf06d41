package entity

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"xrplview/internal/codec/addresscodec"
)

// NFTokenMint issues a new non-fungible token.
type NFTokenMint struct {
	Transaction
}

// NFTokenTaxon is the minter-chosen token grouping value.
func (n *NFTokenMint) NFTokenTaxon() uint32 {
	if v := n.getUint32("NFTokenTaxon"); v != nil {
		return *v
	}
	return 0
}

// Issuer is the account minted on behalf of, empty when the signer mints
// for itself.
func (n *NFTokenMint) Issuer() string {
	return n.getString("Issuer")
}

// TransferFee is the resale fee in units of 1/100,000, nil when unset.
func (n *NFTokenMint) TransferFee() *uint32 {
	return n.getUint32("TransferFee")
}

// URI is the hex-encoded token URI, empty when unset.
func (n *NFTokenMint) URI() string {
	return n.getString("URI")
}

// NFTokenID reconstructs the minted token's ID from the metadata. The
// token sequence is the minter's MintedNFTokens counter before this mint;
// a first-ever mint, which records no previous counter, is sequence 0.
func (n *NFTokenMint) NFTokenID() string {
	minter := n.Issuer()
	if minter == "" {
		minter = n.Account()
	}
	issuerID, err := addresscodec.DecodeAccountID(minter)
	if err != nil {
		return ""
	}

	tokenSeq, ok := n.mintSequence(minter)
	if !ok {
		return ""
	}

	var mask uint32
	if v := n.getUint32("Flags"); v != nil {
		mask = *v
	}
	var transferFee uint16
	if v := n.TransferFee(); v != nil {
		transferFee = uint16(*v)
	}

	id := generateNFTokenID(issuerID, n.NFTokenTaxon(), tokenSeq, uint16(mask), transferFee)
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

// mintSequence finds the minter's AccountRoot node and returns the
// pre-mint MintedNFTokens counter.
func (n *NFTokenMint) mintSequence(minter string) (uint32, bool) {
	for _, node := range n.meta.NodesOfType("AccountRoot") {
		state := node.FinalFields
		if state == nil {
			state = node.NewFields
		}
		if account, _ := state["Account"].(string); account != minter {
			continue
		}
		// previous counter absent on the very first mint
		if prev, ok := uint32FieldOf(node.PreviousFields, "MintedNFTokens"); ok {
			return prev, true
		}
		if _, ok := uint32FieldOf(state, "MintedNFTokens"); ok {
			return 0, true
		}
	}
	return 0, false
}

// cipheredTaxon scrambles the taxon with the token sequence so taxon
// values cannot be enumerated from token IDs.
func cipheredTaxon(tokenSeq, taxon uint32) uint32 {
	return taxon ^ ((tokenSeq ^ 384160001) * 2357503715)
}

// generateNFTokenID assembles the 32-byte token ID:
//
//	bytes  0-1:  flags
//	bytes  2-3:  transfer fee
//	bytes  4-23: issuer account ID
//	bytes 24-27: ciphered taxon
//	bytes 28-31: token sequence
func generateNFTokenID(issuer [20]byte, taxon, sequence uint32, flags, transferFee uint16) [32]byte {
	var tokenID [32]byte
	binary.BigEndian.PutUint16(tokenID[0:2], flags)
	binary.BigEndian.PutUint16(tokenID[2:4], transferFee)
	copy(tokenID[4:24], issuer[:])
	binary.BigEndian.PutUint32(tokenID[24:28], cipheredTaxon(sequence, taxon))
	binary.BigEndian.PutUint32(tokenID[28:32], sequence)
	return tokenID
}

// NFTokenBurn destroys a token.
type NFTokenBurn struct {
	Transaction
}

// NFTokenID identifies the token being burned.
func (n *NFTokenBurn) NFTokenID() string {
	return n.getString("NFTokenID")
}

// Owner is the token holder when burning on behalf of another account.
func (n *NFTokenBurn) Owner() string {
	return n.getString("Owner")
}

// NFTokenCreateOffer offers to buy or sell a token.
type NFTokenCreateOffer struct {
	Transaction
}

// NFTokenID identifies the token the offer is for.
func (n *NFTokenCreateOffer) NFTokenID() string {
	return n.getString("NFTokenID")
}

// Amount is the offered price.
func (n *NFTokenCreateOffer) Amount() *Amount {
	return n.getAmount("Amount")
}

// Owner is the token holder, required on buy offers.
func (n *NFTokenCreateOffer) Owner() string {
	return n.getString("Owner")
}

// Destination restricts who may accept the offer.
func (n *NFTokenCreateOffer) Destination() *Destination {
	return n.destination()
}

// Expiration returns the offer's expiration as ISO-8601, empty when the
// offer does not expire.
func (n *NFTokenCreateOffer) Expiration() string {
	return n.getDateISO("Expiration")
}

// IsExpired reports whether the offer's expiration has passed.
func (n *NFTokenCreateOffer) IsExpired(now time.Time) bool {
	return n.isExpiredAt(n.getDateEpoch("Expiration"), now)
}

// NFTokenCancelOffer withdraws token offers.
type NFTokenCancelOffer struct {
	Transaction
}

// NFTokenOffers lists the offer ledger indexes being cancelled.
func (n *NFTokenCancelOffer) NFTokenOffers() []string {
	list, ok := n.raw["NFTokenOffers"].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// NFTokenAcceptOffer accepts a buy or sell offer, optionally brokering
// both at once.
type NFTokenAcceptOffer struct {
	Transaction
}

// NFTokenSellOffer is the sell offer being accepted, empty when unset.
func (n *NFTokenAcceptOffer) NFTokenSellOffer() string {
	return n.getString("NFTokenSellOffer")
}

// NFTokenBuyOffer is the buy offer being accepted, empty when unset.
func (n *NFTokenAcceptOffer) NFTokenBuyOffer() string {
	return n.getString("NFTokenBuyOffer")
}

// NFTokenBrokerFee is the broker's cut in brokered mode.
func (n *NFTokenAcceptOffer) NFTokenBrokerFee() *Amount {
	return n.getAmount("NFTokenBrokerFee")
}

// uint32FieldOf mirrors the meta package's integer field read for maps
// held by this package.
func uint32FieldOf(m map[string]any, key string) (uint32, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return uint32(v), true
	case int:
		return uint32(v), true
	case int64:
		return uint32(v), true
	case uint32:
		return v, true
	case uint64:
		return uint32(v), true
	default:
		return 0, false
	}
}
