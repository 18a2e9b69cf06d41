package meta

import (
	"github.com/shopspring/decimal"

	"xrplview/internal/codec/amount"
)

// Action is the direction of a derived change.
type Action string

const (
	ActionInc Action = "INC"
	ActionDec Action = "DEC"
)

// BalanceChange is one signed, currency-aware balance delta for one
// address. Value is a non-negative decimal string; Action carries the sign.
type BalanceChange struct {
	Address  string
	Currency string
	Issuer   string
	Value    string
	Action   Action
}

// OwnerCountChange is a derived owner-count delta for one address. Value
// is the absolute magnitude; Action carries the sign.
type OwnerCountChange struct {
	Address string
	Value   uint32
	Action  Action
}

// BalanceChanges replays the diff list into per-address balance deltas.
//
// AccountRoot entries yield native-asset deltas. RippleState (trustline)
// entries are stored from the low account's perspective, so each one
// yields two records: the delta as written for the low account, and its
// negation for the high account. Within an address, records sharing the
// same action and currency are summed, which consolidates multi-path
// payments that cross the same currency more than once.
func (m *Meta) BalanceChanges(nativeAsset string) map[string][]BalanceChange {
	var records []BalanceChange
	for _, n := range m.AffectedNodes {
		switch n.EntryType {
		case "AccountRoot":
			if rec, ok := accountRootChange(n, nativeAsset); ok {
				records = append(records, rec)
			}
		case "RippleState":
			records = append(records, rippleStateChanges(n)...)
		}
	}
	return groupChanges(records)
}

// accountRootChange derives the native-balance delta of one AccountRoot
// node. A delta of exactly zero produces no record.
func accountRootChange(n AffectedNode, nativeAsset string) (BalanceChange, bool) {
	state := n.fields()
	address := str(state, "Account")
	if address == "" {
		return BalanceChange{}, false
	}

	final, err := amount.Parse(state["Balance"], true)
	if err != nil {
		return BalanceChange{}, false
	}

	var previous decimal.Decimal
	if n.DiffType != DiffCreated {
		prev, ok := n.PreviousFields["Balance"]
		if !ok {
			// balance untouched by this transaction
			return BalanceChange{}, false
		}
		previous, err = amount.Parse(prev, true)
		if err != nil {
			return BalanceChange{}, false
		}
	}

	delta := final.Sub(previous)
	if delta.IsZero() {
		return BalanceChange{}, false
	}

	return BalanceChange{
		Address:  address,
		Currency: nativeAsset,
		Value:    amount.FormatDerived(amount.DropsToNative(delta.Abs())),
		Action:   actionOf(delta),
	}, true
}

// rippleStateChanges derives both perspectives of one trustline delta.
// The wire records the balance relative to the low account; the high
// account's actual change is the exact negation.
func rippleStateChanges(n AffectedNode) []BalanceChange {
	state := n.fields()

	balance, ok := state["Balance"].(map[string]any)
	if !ok {
		return nil
	}
	currency := str(balance, "currency")

	low, ok := state["LowLimit"].(map[string]any)
	if !ok {
		return nil
	}
	high, ok := state["HighLimit"].(map[string]any)
	if !ok {
		return nil
	}
	lowAddr := str(low, "issuer")
	highAddr := str(high, "issuer")

	final, err := amount.Parse(balance["value"], false)
	if err != nil {
		return nil
	}

	var previous decimal.Decimal
	if n.DiffType != DiffCreated {
		prevBalance, ok := n.PreviousFields["Balance"].(map[string]any)
		if !ok {
			return nil
		}
		previous, err = amount.Parse(prevBalance["value"], false)
		if err != nil {
			return nil
		}
	}

	delta := final.Sub(previous)
	if delta.IsZero() {
		return nil
	}

	value := amount.FormatDerived(delta.Abs())
	return []BalanceChange{
		{
			Address:  lowAddr,
			Currency: currency,
			Issuer:   highAddr,
			Value:    value,
			Action:   actionOf(delta),
		},
		{
			Address:  highAddr,
			Currency: currency,
			Issuer:   lowAddr,
			Value:    value,
			Action:   actionOf(delta.Neg()),
		},
	}
}

// groupChanges buckets records by address and sums duplicates sharing the
// same action, currency, and issuer, so a later record never overwrites
// an earlier one.
func groupChanges(records []BalanceChange) map[string][]BalanceChange {
	grouped := make(map[string][]BalanceChange)
	for _, rec := range records {
		merged := false
		for i, existing := range grouped[rec.Address] {
			if existing.Action != rec.Action || existing.Currency != rec.Currency || existing.Issuer != rec.Issuer {
				continue
			}
			a, _ := amount.Parse(existing.Value, false)
			b, _ := amount.Parse(rec.Value, false)
			grouped[rec.Address][i].Value = amount.FormatDerived(a.Add(b))
			merged = true
			break
		}
		if !merged {
			grouped[rec.Address] = append(grouped[rec.Address], rec)
		}
	}
	return grouped
}

// OwnerCountChanges derives owner-count deltas from AccountRoot nodes
// that carry both a previous and a final OwnerCount. A zero delta is
// omitted entirely.
func (m *Meta) OwnerCountChanges() []OwnerCountChange {
	var out []OwnerCountChange
	for _, n := range m.AffectedNodes {
		if n.EntryType != "AccountRoot" {
			continue
		}
		final, okFinal := uint32Field(n.FinalFields, "OwnerCount")
		previous, okPrev := uint32Field(n.PreviousFields, "OwnerCount")
		if !okFinal || !okPrev || final == previous {
			continue
		}

		change := OwnerCountChange{Address: str(n.FinalFields, "Account")}
		if final > previous {
			change.Value = final - previous
			change.Action = ActionInc
		} else {
			change.Value = previous - final
			change.Action = ActionDec
		}
		out = append(out, change)
	}
	return out
}

func actionOf(delta decimal.Decimal) Action {
	if delta.Sign() < 0 {
		return ActionDec
	}
	return ActionInc
}
