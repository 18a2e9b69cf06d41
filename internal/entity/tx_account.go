package entity

import (
	"strconv"

	"xrplview/internal/codec/flags"
)

// AccountSet adjusts account-level settings.
type AccountSet struct {
	Transaction
}

// SetFlagIndex is the asf flag index being enabled, nil when unset.
func (a *AccountSet) SetFlagIndex() *uint32 {
	return a.getUint32("SetFlag")
}

// ClearFlagIndex is the asf flag index being disabled, nil when unset.
func (a *AccountSet) ClearFlagIndex() *uint32 {
	return a.getUint32("ClearFlag")
}

// SetFlagName resolves SetFlag through the asf index table, empty when
// unset or unknown.
func (a *AccountSet) SetFlagName() string {
	return a.indexName(a.SetFlagIndex())
}

// ClearFlagName resolves ClearFlag through the asf index table, empty
// when unset or unknown.
func (a *AccountSet) ClearFlagName() string {
	return a.indexName(a.ClearFlagIndex())
}

func (a *AccountSet) indexName(v *uint32) string {
	if v == nil {
		return ""
	}
	name, err := flags.IndexName("AccountSet", *v)
	if err != nil {
		return ""
	}
	return name
}

// Domain is the hex-encoded domain the account claims, empty when unset.
func (a *AccountSet) Domain() string {
	return a.getString("Domain")
}

// EmailHash is the account's avatar hash, empty when unset.
func (a *AccountSet) EmailHash() string {
	return a.getString("EmailHash")
}

// MessageKey is the account's messaging public key, empty when unset.
func (a *AccountSet) MessageKey() string {
	return a.getString("MessageKey")
}

// TransferRate is the issuer transfer fee in billionths, nil when unset.
func (a *AccountSet) TransferRate() *uint32 {
	return a.getUint32("TransferRate")
}

// TickSize is the order book tick size, nil when unset.
func (a *AccountSet) TickSize() *uint32 {
	return a.getUint32("TickSize")
}

// NFTokenMinter is the authorized third-party minter, empty when unset.
func (a *AccountSet) NFTokenMinter() string {
	return a.getString("NFTokenMinter")
}

// AccountDelete removes an account and sends its remaining balance to the
// destination.
type AccountDelete struct {
	Transaction
}

// Destination receives the deleted account's remaining balance.
func (a *AccountDelete) Destination() *Destination {
	return a.destination()
}

// Amount is the balance actually delivered to the destination, which only
// the metadata knows.
func (a *AccountDelete) Amount() *Amount {
	return a.deliveredAmount(nil)
}

// CalculateFee charges the full owner reserve instead of the base fee:
// deleting an account burns its reserve.
func (a *AccountDelete) CalculateFee(baseFeeDrops int64) string {
	return strconv.FormatInt(a.net.OwnerReserveDrops, 10)
}

// SetRegularKey assigns or removes the account's regular key pair.
type SetRegularKey struct {
	Transaction
}

// RegularKey is the new regular key address, empty when clearing.
func (s *SetRegularKey) RegularKey() string {
	return s.getString("RegularKey")
}
