package meta

// DiffType identifies what a transaction did to a ledger entry.
type DiffType string

const (
	DiffCreated  DiffType = "CreatedNode"
	DiffModified DiffType = "ModifiedNode"
	DiffDeleted  DiffType = "DeletedNode"
)

// AffectedNode is a ledger entry touched by a transaction, flattened out
// of the single-key wrapper the wire format uses.
type AffectedNode struct {
	// DiffType is CreatedNode, ModifiedNode, or DeletedNode
	DiffType DiffType

	// EntryType is the ledger entry type, e.g. AccountRoot or RippleState
	EntryType string

	// LedgerIndex is the key of the entry
	LedgerIndex string

	// NewFields contains the created state (for Created)
	NewFields map[string]any

	// FinalFields contains the final state (for Modified/Deleted)
	FinalFields map[string]any

	// PreviousFields contains the prior values of changed fields (for Modified/Deleted)
	PreviousFields map[string]any
}

// normalizeNode flattens one raw affected-node wrapper. Returns false when
// the wrapper does not carry a recognized diff type.
func normalizeNode(raw map[string]any) (AffectedNode, bool) {
	for _, diff := range []DiffType{DiffCreated, DiffModified, DiffDeleted} {
		inner, ok := raw[string(diff)].(map[string]any)
		if !ok {
			continue
		}
		return AffectedNode{
			DiffType:       diff,
			EntryType:      str(inner, "LedgerEntryType"),
			LedgerIndex:    str(inner, "LedgerIndex"),
			NewFields:      objField(inner, "NewFields"),
			FinalFields:    objField(inner, "FinalFields"),
			PreviousFields: objField(inner, "PreviousFields"),
		}, true
	}
	return AffectedNode{}, false
}

// fields returns the node's effective state: NewFields for created
// entries, FinalFields otherwise.
func (n AffectedNode) fields() map[string]any {
	if n.DiffType == DiffCreated {
		return n.NewFields
	}
	return n.FinalFields
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func objField(m map[string]any, key string) map[string]any {
	o, _ := m[key].(map[string]any)
	return o
}

func uint32Field(m map[string]any, key string) (uint32, bool) {
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
