package entity

import (
	"encoding/json"
	"fmt"

	"xrplview/internal/meta"
)

// TxEntity is the capability surface every transaction view provides.
type TxEntity interface {
	FeeCalculator

	TransactionType() string
	Account() string
	Fee() string
	Sequence() *uint32
	TicketSequence() *uint32
	LastLedgerSequence() *uint32
	NetworkID() *uint32
	SigningPubKey() string
	SignedBlob() string
	Hash() string
	Flags() map[string]bool
	Memos() []Memo
	Signers() []Signer
	CTID() string
	IsPseudo() bool
	IsSigned() bool
	Meta() *meta.Meta
	Raw() map[string]any

	BalanceChanges(observer string) BalanceChangeView
	OwnerCountChanges(observer string) []meta.OwnerCountChange
	HookExecutions() []meta.HookExecution
	XappIdentifier() string

	SetAccount(string) error
	SetFee(string) error
	SetSequence(uint32) error
	SetSigningPubKey(string) error
	SetNetworkID(uint32) error
	SetLastLedgerSequence(uint32) error
	SetFlag(string) error
	AttachSignature(signedBlob, signerPubKey, txID string) error
}

// ObjEntity is the capability surface every ledger-object view provides.
type ObjEntity interface {
	LedgerEntryType() string
	Account() string
	Flags() map[string]bool
	Raw() map[string]any
}

// GenericTransaction is the fallback view for transaction types without a
// dedicated view, including network pseudo-transactions. The common
// accessors and mutation capabilities all still apply.
type GenericTransaction struct {
	Transaction
}

// GenericObject is the fallback view for ledger entry types without a
// dedicated view.
type GenericObject struct {
	LedgerObject
}

// ParseTransaction builds the typed view for a raw transaction and its
// optional execution metadata.
func ParseTransaction(rawTx, rawMeta map[string]any, net NetworkContext) (TxEntity, error) {
	if rawTx == nil {
		return nil, ErrMissingTransactionType
	}
	typeName, _ := rawTx["TransactionType"].(string)
	if typeName == "" {
		return nil, ErrMissingTransactionType
	}

	m, err := meta.Parse(rawMeta)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	tx := Transaction{newBase(rawTx, m, net)}

	switch typeName {
	case "Payment":
		return &Payment{tx}, nil
	case "OfferCreate":
		return &OfferCreate{tx}, nil
	case "OfferCancel":
		return &OfferCancel{tx}, nil
	case "EscrowCreate":
		return &EscrowCreate{tx}, nil
	case "EscrowFinish":
		return &EscrowFinish{tx}, nil
	case "EscrowCancel":
		return &EscrowCancel{tx}, nil
	case "CheckCreate":
		return &CheckCreate{tx}, nil
	case "CheckCash":
		return &CheckCash{tx}, nil
	case "CheckCancel":
		return &CheckCancel{tx}, nil
	case "TrustSet":
		return &TrustSet{tx}, nil
	case "Clawback":
		return &Clawback{tx}, nil
	case "AccountSet":
		return &AccountSet{tx}, nil
	case "AccountDelete":
		return &AccountDelete{tx}, nil
	case "SetRegularKey":
		return &SetRegularKey{tx}, nil
	case "SignerListSet":
		return &SignerListSet{tx}, nil
	case "DepositPreauth":
		return &DepositPreauth{tx}, nil
	case "TicketCreate":
		return &TicketCreate{tx}, nil
	case "PaymentChannelCreate":
		return &PaymentChannelCreate{tx}, nil
	case "PaymentChannelFund":
		return &PaymentChannelFund{tx}, nil
	case "PaymentChannelClaim":
		return &PaymentChannelClaim{tx}, nil
	case "NFTokenMint":
		return &NFTokenMint{tx}, nil
	case "NFTokenBurn":
		return &NFTokenBurn{tx}, nil
	case "NFTokenCreateOffer":
		return &NFTokenCreateOffer{tx}, nil
	case "NFTokenCancelOffer":
		return &NFTokenCancelOffer{tx}, nil
	case "NFTokenAcceptOffer":
		return &NFTokenAcceptOffer{tx}, nil
	case "Import":
		return &Import{tx}, nil
	default:
		return &GenericTransaction{tx}, nil
	}
}

// ParseLedgerObject builds the typed view for a raw ledger entry.
func ParseLedgerObject(rawObj map[string]any, net NetworkContext) (ObjEntity, error) {
	if rawObj == nil {
		return nil, ErrMissingLedgerEntryType
	}
	typeName, _ := rawObj["LedgerEntryType"].(string)
	if typeName == "" {
		return nil, ErrMissingLedgerEntryType
	}

	obj := LedgerObject{newBase(rawObj, nil, net)}

	switch typeName {
	case "Offer":
		return &OfferObject{obj}, nil
	case "Escrow":
		return &EscrowObject{obj}, nil
	case "Check":
		return &CheckObject{obj}, nil
	case "Ticket":
		return &TicketObject{obj}, nil
	case "PayChannel":
		return &PayChannelObject{obj}, nil
	case "NFTokenOffer":
		return &NFTokenOfferObject{obj}, nil
	default:
		return &GenericObject{obj}, nil
	}
}

// Parse dispatches on the raw record's shape: a TransactionType field
// yields a transaction view, a LedgerEntryType field a ledger-object view.
func Parse(raw, rawMeta map[string]any, net NetworkContext) (any, error) {
	if raw == nil {
		return nil, ErrUnknownEntityType
	}
	if _, ok := raw["TransactionType"].(string); ok {
		return ParseTransaction(raw, rawMeta, net)
	}
	if _, ok := raw["LedgerEntryType"].(string); ok {
		return ParseLedgerObject(raw, net)
	}
	return nil, ErrUnknownEntityType
}

// ParseJSON decodes a {"tx": ..., "meta": ...} JSON document into a typed
// transaction view. A bare transaction object without the wrapper is also
// accepted.
func ParseJSON(data []byte, net NetworkContext) (TxEntity, error) {
	var wrapper struct {
		Tx   map[string]any `json:"tx"`
		Meta map[string]any `json:"meta"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding transaction document: %w", err)
	}
	if wrapper.Tx != nil {
		return ParseTransaction(wrapper.Tx, wrapper.Meta, net)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding transaction document: %w", err)
	}
	var rawMeta map[string]any
	if m, ok := raw["meta"].(map[string]any); ok {
		rawMeta = m
		delete(raw, "meta")
	} else if m, ok := raw["metaData"].(map[string]any); ok {
		rawMeta = m
		delete(raw, "metaData")
	}
	return ParseTransaction(raw, rawMeta, net)
}
