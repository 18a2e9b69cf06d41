// Package meta interprets a transaction's execution metadata: the list of
// created, modified, and deleted ledger entries recorded when the
// transaction was applied. From those before/after snapshots it derives
// facts the transaction body alone cannot supply, such as actual balance
// deltas, owner-count changes, and offer fill status.
package meta

import (
	"errors"
)

// ErrInvalidMetadata is returned when the raw blob does not carry an
// affected-node list in the expected shape.
var ErrInvalidMetadata = errors.New("invalid transaction metadata")

// deliveredUnavailable is the wire sentinel for "the delivered amount was
// not recorded for this old transaction"; it must decode as absent.
const deliveredUnavailable = "unavailable"

// Meta is the normalized view of one transaction's execution metadata.
type Meta struct {
	// AffectedNodes is the normalized diff list, wire order preserved
	AffectedNodes []AffectedNode

	// TransactionIndex is the transaction's position within its ledger
	TransactionIndex uint32

	// TransactionResult is the engine result code, e.g. tesSUCCESS
	TransactionResult string

	// deliveredAmount holds the raw DeliveredAmount/delivered_amount value
	deliveredAmount any

	hookExecutions []HookExecution
}

// Parse normalizes a raw metadata blob. A nil map yields an empty Meta so
// freshly built, unsubmitted transactions can share the same code paths.
func Parse(raw map[string]any) (*Meta, error) {
	m := &Meta{}
	if raw == nil {
		return m, nil
	}

	if nodes, ok := raw["AffectedNodes"]; ok {
		list, ok := nodes.([]any)
		if !ok {
			return nil, ErrInvalidMetadata
		}
		for _, entry := range list {
			wrapper, ok := entry.(map[string]any)
			if !ok {
				return nil, ErrInvalidMetadata
			}
			node, ok := normalizeNode(wrapper)
			if !ok {
				return nil, ErrInvalidMetadata
			}
			m.AffectedNodes = append(m.AffectedNodes, node)
		}
	}

	if idx, ok := uint32Field(raw, "TransactionIndex"); ok {
		m.TransactionIndex = idx
	}
	m.TransactionResult = str(raw, "TransactionResult")

	if v, ok := raw["DeliveredAmount"]; ok {
		m.deliveredAmount = v
	} else if v, ok := raw["delivered_amount"]; ok {
		m.deliveredAmount = v
	}

	m.hookExecutions = parseHookExecutions(raw)

	return m, nil
}

// DeliveredAmount returns the metadata-recorded delivered amount. The
// second return is false when no delivered amount was recorded at all,
// including the "unavailable" sentinel written for historic transactions.
func (m *Meta) DeliveredAmount() (any, bool) {
	if m.deliveredAmount == nil {
		return nil, false
	}
	if s, ok := m.deliveredAmount.(string); ok && s == deliveredUnavailable {
		return nil, false
	}
	return m.deliveredAmount, true
}

// DeliveredAmountRecorded reports whether the metadata carried any
// delivered-amount value at all, including the "unavailable" sentinel.
// Callers use this to distinguish "not recorded, fall back to the
// requested amount" from "recorded but unavailable".
func (m *Meta) DeliveredAmountRecorded() bool {
	return m.deliveredAmount != nil
}

// NodesOfType returns the affected nodes with the given ledger entry type,
// wire order preserved.
func (m *Meta) NodesOfType(entryType string) []AffectedNode {
	var out []AffectedNode
	for _, n := range m.AffectedNodes {
		if n.EntryType == entryType {
			out = append(out, n)
		}
	}
	return out
}

// TicketSequences collects the ticket sequence of every Ticket entry this
// transaction created.
func (m *Meta) TicketSequences() []uint32 {
	var out []uint32
	for _, n := range m.AffectedNodes {
		if n.DiffType != DiffCreated || n.EntryType != "Ticket" {
			continue
		}
		if seq, ok := uint32Field(n.NewFields, "TicketSequence"); ok {
			out = append(out, seq)
		}
	}
	return out
}
