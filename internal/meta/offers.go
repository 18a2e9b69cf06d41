package meta

// OfferStatus describes what happened to an offer during a transaction.
type OfferStatus string

const (
	OfferCreated         OfferStatus = "CREATED"
	OfferPartiallyFilled OfferStatus = "PARTIALLY_FILLED"
	OfferFilled          OfferStatus = "FILLED"
	OfferCancelled       OfferStatus = "CANCELLED"
	OfferKilled          OfferStatus = "KILLED"
	OfferStatusUnknown   OfferStatus = "UNKNOWN"
)

// OfferStatusOf classifies a single Offer node. A deleted node that still
// carried a previous TakerPays was fully consumed before removal; one
// without was cancelled.
func OfferStatusOf(n AffectedNode) OfferStatus {
	switch n.DiffType {
	case DiffCreated:
		return OfferCreated
	case DiffModified:
		return OfferPartiallyFilled
	case DiffDeleted:
		if _, ok := n.PreviousFields["TakerPays"]; ok {
			return OfferFilled
		}
		return OfferCancelled
	default:
		return OfferStatusUnknown
	}
}

// OfferStatusChange resolves the outcome of the owner's offer with the
// given ledger index.
//
// When the direct node lookup is inconclusive it falls back to a
// best-effort heuristic: a modified trustline naming the owner implies the
// offer executed at least partially, its absence implies the offer was
// killed outright. Transactions that consume several offers at once can be
// misclassified by this heuristic; callers must treat the answer as
// advisory.
func (m *Meta) OfferStatusChange(owner, ledgerIndex string) OfferStatus {
	status := OfferStatusUnknown
	for _, n := range m.AffectedNodes {
		if n.EntryType == "Offer" && n.LedgerIndex == ledgerIndex {
			status = OfferStatusOf(n)
			break
		}
	}

	crossed := m.hasModifiedTrustlineFor(owner)
	switch {
	case status == OfferStatusUnknown && crossed:
		return OfferFilled
	case status == OfferCreated && crossed:
		return OfferPartiallyFilled
	case status == OfferStatusUnknown && !crossed:
		return OfferKilled
	default:
		return status
	}
}

// hasModifiedTrustlineFor reports whether any modified RippleState node
// names the address as either trustline party.
func (m *Meta) hasModifiedTrustlineFor(address string) bool {
	for _, n := range m.AffectedNodes {
		if n.DiffType != DiffModified || n.EntryType != "RippleState" {
			continue
		}
		state := n.fields()
		low := objField(state, "LowLimit")
		high := objField(state, "HighLimit")
		if str(low, "issuer") == address || str(high, "issuer") == address {
			return true
		}
	}
	return false
}

// OfferExecuted reports whether this transaction crossed an existing
// offer; a modified Offer node means the order book matched.
func (m *Meta) OfferExecuted() bool {
	for _, n := range m.AffectedNodes {
		if n.EntryType == "Offer" && n.DiffType == DiffModified {
			return true
		}
	}
	return false
}
