// Package entity provides typed views over raw ledger transactions and
// ledger objects. Each concrete type exposes strongly-typed accessors over
// its wire fields, decoding through the amount, date, and flag codecs, and
// derives metadata-dependent facts (delivered amounts, minted token IDs,
// offer fill status) through the meta interpreter.
package entity

import (
	"errors"
	"fmt"

	"xrplview/internal/codec/flags"
	"xrplview/internal/codec/ledgertime"
	"xrplview/internal/ctid"
	"xrplview/internal/meta"
)

// Common errors
var (
	ErrMissingTransactionType = errors.New("missing TransactionType field")
	ErrMissingLedgerEntryType = errors.New("missing LedgerEntryType field")
	ErrUnknownEntityType      = errors.New("unknown entity type")
	ErrSignedImmutable        = errors.New("cannot mutate a signed transaction")
)

// NetworkContext carries the network facts the entity layer needs to
// decode amounts and compute fees. Supplied by the caller at construction;
// the entity layer never queries the network itself.
type NetworkContext struct {
	// NativeAsset is the network's native currency symbol, e.g. XRP
	NativeAsset string

	// NetworkID identifies the connected network (0 for mainnet)
	NetworkID uint32

	// BaseReserveDrops is the account base reserve in drops
	BaseReserveDrops int64

	// OwnerReserveDrops is the per-owned-object reserve in drops
	OwnerReserveDrops int64
}

func (c NetworkContext) withDefaults() NetworkContext {
	if c.NativeAsset == "" {
		c.NativeAsset = "XRP"
	}
	return c
}

// base is the shared raw-field storage behind every entity view.
// Raw fields are read on demand; set accessors write back into the map
// while the transaction is still being built for signing.
type base struct {
	raw  map[string]any
	meta *meta.Meta
	net  NetworkContext

	memo *memoCells
}

func newBase(raw map[string]any, m *meta.Meta, net NetworkContext) base {
	if raw == nil {
		raw = make(map[string]any)
	}
	if m == nil {
		m = &meta.Meta{}
	}
	return base{raw: raw, meta: m, net: net.withDefaults(), memo: newMemoCells()}
}

// Meta exposes the parsed execution metadata.
func (e *base) Meta() *meta.Meta {
	return e.meta
}

// NativeAsset is the connected network's native currency symbol.
func (e *base) NativeAsset() string {
	return e.net.NativeAsset
}

// Raw returns the underlying wire record. Callers must treat it as
// read-only; mutation goes through the set accessors.
func (e *base) Raw() map[string]any {
	return e.raw
}

// getString returns a wire string field, empty when absent.
func (e *base) getString(key string) string {
	s, _ := e.raw[key].(string)
	return s
}

// getUint32 returns a wire integer field, nil when absent.
func (e *base) getUint32(key string) *uint32 {
	switch v := e.raw[key].(type) {
	case float64:
		u := uint32(v)
		return &u
	case int:
		u := uint32(v)
		return &u
	case int64:
		u := uint32(v)
		return &u
	case uint32:
		u := v
		return &u
	case uint64:
		u := uint32(v)
		return &u
	default:
		return nil
	}
}

// getAmount decodes a wire amount field, nil when absent or malformed.
func (e *base) getAmount(key string) *Amount {
	v, ok := e.raw[key]
	if !ok {
		return nil
	}
	return e.decodeAmount(v)
}

// getDateISO decodes a ledger-epoch date field to ISO-8601, empty when
// absent or malformed.
func (e *base) getDateISO(key string) string {
	v, ok := e.raw[key]
	if !ok {
		return ""
	}
	iso, err := ledgertime.ToISO8601(v)
	if err != nil {
		return ""
	}
	return iso
}

// getDateEpoch returns a ledger-epoch date field, nil when absent.
func (e *base) getDateEpoch(key string) *uint32 {
	return e.getUint32(key)
}

func (e *base) setField(key string, value any) {
	e.raw[key] = value
}

func (e *base) clearField(key string) {
	delete(e.raw, key)
}

// Transaction is the typed view over a raw ledger transaction. Concrete
// transaction types embed it.
type Transaction struct {
	base
}

// LedgerObject is the typed view over a persistent ledger entry. Concrete
// object types embed it.
type LedgerObject struct {
	base
}

// TransactionType returns the wire transaction type name.
func (t *Transaction) TransactionType() string {
	return t.getString("TransactionType")
}

// Account is the transaction's signing account address.
func (t *Transaction) Account() string {
	return t.getString("Account")
}

// Fee is the declared network fee in drops, empty when unset.
func (t *Transaction) Fee() string {
	return t.getString("Fee")
}

// Sequence returns the account sequence, nil when unset.
func (t *Transaction) Sequence() *uint32 {
	return t.getUint32("Sequence")
}

// TicketSequence returns the consumed ticket sequence, nil when unset.
func (t *Transaction) TicketSequence() *uint32 {
	return t.getUint32("TicketSequence")
}

// LastLedgerSequence returns the expiry ledger, nil when unset.
func (t *Transaction) LastLedgerSequence() *uint32 {
	return t.getUint32("LastLedgerSequence")
}

// NetworkID returns the declared network id, nil when unset.
func (t *Transaction) NetworkID() *uint32 {
	return t.getUint32("NetworkID")
}

// SigningPubKey returns the signing public key hex, empty when unset.
func (t *Transaction) SigningPubKey() string {
	return t.getString("SigningPubKey")
}

// SignedBlob returns the signed transaction blob, empty until signed.
func (t *Transaction) SignedBlob() string {
	return t.getString("SignedBlob")
}

// Hash returns the transaction hash, empty until known.
func (t *Transaction) Hash() string {
	return t.getString("hash")
}

// IsSigned reports whether a signed blob has been attached.
func (t *Transaction) IsSigned() bool {
	return t.SignedBlob() != ""
}

// IsPseudo reports whether this is a network pseudo-transaction, which
// has no signing account of its own.
func (t *Transaction) IsPseudo() bool {
	switch t.TransactionType() {
	case "EnableAmendment", "SetFee", "UNLModify", "EmitFailure":
		return true
	default:
		return false
	}
}

// Flags decodes the bitmask flag field through this transaction type's
// flag table. An absent field decodes as all-false.
func (t *Transaction) Flags() map[string]bool {
	var mask uint32
	if v := t.getUint32("Flags"); v != nil {
		mask = *v
	}
	return flags.Parse(t.TransactionType(), mask)
}

// SetFlag ORs a named flag into the transaction's flag field.
func (t *Transaction) SetFlag(name string) error {
	if t.IsSigned() {
		return ErrSignedImmutable
	}
	var current uint32
	if v := t.getUint32("Flags"); v != nil {
		current = *v
	}
	mask, err := flags.Set(t.TransactionType(), name, current)
	if err != nil {
		return err
	}
	t.setField("Flags", mask)
	return nil
}

// CTID returns the compact transaction identifier: the wire value
// verbatim when present, otherwise computed from the validated ledger
// index, the transaction's index within that ledger, and the network id.
func (t *Transaction) CTID() string {
	if v := t.getString("ctid"); v != "" {
		return v
	}
	ledgerSeq := t.getUint32("ledger_index")
	if ledgerSeq == nil {
		ledgerSeq = t.getUint32("inLedger")
	}
	if ledgerSeq == nil {
		return ""
	}
	encoded, err := ctid.Encode(*ledgerSeq, uint16(t.meta.TransactionIndex), uint16(t.net.NetworkID))
	if err != nil {
		return ""
	}
	return encoded
}

// Memos returns the transaction's memo list.
func (t *Transaction) Memos() []Memo {
	list, ok := t.raw["Memos"].([]any)
	if !ok {
		return nil
	}
	var out []Memo
	for _, entry := range list {
		wrapper, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		inner, ok := wrapper["Memo"].(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Memo{
			MemoType:   stringField(inner, "MemoType"),
			MemoData:   stringField(inner, "MemoData"),
			MemoFormat: stringField(inner, "MemoFormat"),
		})
	}
	return out
}

// Signers returns the multi-signature signer list.
func (t *Transaction) Signers() []Signer {
	list, ok := t.raw["Signers"].([]any)
	if !ok {
		return nil
	}
	var out []Signer
	for _, entry := range list {
		wrapper, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		inner, ok := wrapper["Signer"].(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Signer{
			Account:       stringField(inner, "Account"),
			SigningPubKey: stringField(inner, "SigningPubKey"),
			TxnSignature:  stringField(inner, "TxnSignature"),
		})
	}
	return out
}

// Set accessors used while building a transaction for signing. All reject
// mutation once a signed blob is attached.

func (t *Transaction) SetAccount(address string) error   { return t.set("Account", address) }
func (t *Transaction) SetFee(drops string) error         { return t.set("Fee", drops) }
func (t *Transaction) SetSequence(seq uint32) error      { return t.set("Sequence", seq) }
func (t *Transaction) SetSigningPubKey(hex string) error { return t.set("SigningPubKey", hex) }
func (t *Transaction) SetNetworkID(id uint32) error      { return t.set("NetworkID", id) }
func (t *Transaction) SetLastLedgerSequence(s uint32) error {
	return t.set("LastLedgerSequence", s)
}

// AttachSignature records the signer collaborator's output. Allowed
// exactly once.
func (t *Transaction) AttachSignature(signedBlob, signerPubKey, txID string) error {
	if t.IsSigned() {
		return ErrSignedImmutable
	}
	t.setField("SignedBlob", signedBlob)
	t.setField("SigningPubKey", signerPubKey)
	if txID != "" {
		t.setField("hash", txID)
	}
	return nil
}

func (t *Transaction) set(key string, value any) error {
	if t.IsSigned() {
		return fmt.Errorf("%w: %s", ErrSignedImmutable, key)
	}
	t.setField(key, value)
	return nil
}

// LedgerEntryType returns the wire ledger entry type name.
func (o *LedgerObject) LedgerEntryType() string {
	return o.getString("LedgerEntryType")
}

// Account is the entry's owning account, when the entry type has one.
func (o *LedgerObject) Account() string {
	return o.getString("Account")
}

// Flags decodes the entry's bitmask flag field through its type's table.
func (o *LedgerObject) Flags() map[string]bool {
	var mask uint32
	if v := o.getUint32("Flags"); v != nil {
		mask = *v
	}
	return flags.Parse(o.LedgerEntryType(), mask)
}

// Memo is one memo attached to a transaction.
type Memo struct {
	MemoType   string
	MemoData   string
	MemoFormat string
}

// Signer is one signer of a multi-signed transaction.
type Signer struct {
	Account       string
	SigningPubKey string
	TxnSignature  string
}

// Destination is a payment target: an address plus optional tag.
type Destination struct {
	Address string
	Tag     *uint32
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
