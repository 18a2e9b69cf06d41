package entity

import (
	"encoding/hex"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"xrplview/internal/codec/amount"
	"xrplview/internal/meta"
)

// BalanceChangeView is the fee-adjusted view of what one observer sent
// and received in a transaction. Either side may be absent.
type BalanceChangeView struct {
	Sent     *Amount
	Received *Amount
}

// observerCacheSize bounds the per-entity memoization caches. A single
// transaction is rarely inspected from more than a handful of addresses.
const observerCacheSize = 16

// memoCells holds the per-entity derived-fact caches. They are
// compute-on-first-read and never invalidated: entities are immutable once
// their metadata is fixed, so recomputation can never produce a different
// answer. The singleflight group collapses the read-check-then-write race
// when concurrent callers hit a cold slot.
type memoCells struct {
	group   singleflight.Group
	balance *lru.Cache[string, BalanceChangeView]
	owners  *lru.Cache[string, []meta.OwnerCountChange]
}

func newMemoCells() *memoCells {
	balance, _ := lru.New[string, BalanceChangeView](observerCacheSize)
	owners, _ := lru.New[string, []meta.OwnerCountChange](observerCacheSize)
	return &memoCells{balance: balance, owners: owners}
}

// BalanceChanges returns what the observer sent and received, after fee
// adjustment. An empty observer means the transaction's own signing
// account. Results are memoized per observer.
func (t *Transaction) BalanceChanges(observer string) BalanceChangeView {
	if observer == "" {
		observer = t.Account()
	}
	if cached, ok := t.memo.balance.Get(observer); ok {
		return cached
	}
	v, _, _ := t.memo.group.Do("balance:"+observer, func() (any, error) {
		view := t.computeBalanceChanges(observer)
		t.memo.balance.Add(observer, view)
		return view, nil
	})
	return v.(BalanceChangeView)
}

func (t *Transaction) computeBalanceChanges(observer string) BalanceChangeView {
	var view BalanceChangeView

	records := t.meta.BalanceChanges(t.net.NativeAsset)[observer]
	for _, rec := range records {
		amt := &Amount{Currency: rec.Currency, Issuer: rec.Issuer, Value: rec.Value}
		switch rec.Action {
		case meta.ActionDec:
			if view.Sent == nil {
				view.Sent = amt
			}
		case meta.ActionInc:
			if view.Received == nil {
				view.Received = amt
			}
		}
	}

	// Fee adjustment applies only to the signing account's own view: the
	// metadata's native delta includes the fee, which is not part of the
	// amount actually moved.
	if observer != t.Account() {
		return view
	}
	feeDrops, err := amount.Parse(t.Fee(), true)
	if err != nil || feeDrops.IsZero() {
		return view
	}
	feeNative := amount.DropsToNative(feeDrops)

	switch {
	case view.Sent != nil && view.Sent.IsNative():
		v, err := view.Sent.Decimal()
		if err != nil {
			return view
		}
		remainder := v.Sub(feeNative)
		switch {
		case remainder.IsZero():
			// the fee consumed the entire outflow
			view.Sent = nil
		case remainder.Sign() < 0:
			// only reachable for NFTokenAcceptOffer, where the signer nets
			// a native gain after the fee: flip the direction
			view.Sent = nil
			view.Received = &Amount{
				Currency: t.net.NativeAsset,
				Value:    amount.FormatDerived(remainder.Abs()),
			}
		default:
			view.Sent = &Amount{
				Currency: view.Sent.Currency,
				Value:    amount.FormatDerived(remainder),
			}
		}
	case view.Received != nil && view.Received.IsNative():
		v, err := view.Received.Decimal()
		if err != nil {
			return view
		}
		remainder := v.Sub(feeNative)
		if remainder.Sign() <= 0 {
			view.Received = nil
		} else {
			view.Received = &Amount{
				Currency: view.Received.Currency,
				Value:    amount.FormatDerived(remainder),
			}
		}
	}
	return view
}

// OwnerCountChanges returns the observer's owner-count deltas. An empty
// observer means the transaction's own signing account. Memoized per
// observer.
func (t *Transaction) OwnerCountChanges(observer string) []meta.OwnerCountChange {
	if observer == "" {
		observer = t.Account()
	}
	if cached, ok := t.memo.owners.Get(observer); ok {
		return cached
	}
	v, _, _ := t.memo.group.Do("owners:"+observer, func() (any, error) {
		var out []meta.OwnerCountChange
		for _, change := range t.meta.OwnerCountChanges() {
			if change.Address == observer {
				out = append(out, change)
			}
		}
		t.memo.owners.Add(observer, out)
		return out, nil
	})
	return v.([]meta.OwnerCountChange)
}

// HookExecutions returns the transaction's hook execution records. No
// per-observer keying: the list is transaction-global.
func (t *Transaction) HookExecutions() []meta.HookExecution {
	return t.meta.HookExecutions()
}

// xappMarker is the memo type that tags a memo as carrying an xApp
// identifier, and xappIdentifierPattern is the accepted identifier
// grammar.
const xappMarker = "xumm/xapp"

var xappIdentifierPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9\-._]+$`)

// XappIdentifier scans the memos for a recognized xApp marker memo with a
// validly formatted payload and returns the first match, or empty.
func (t *Transaction) XappIdentifier() string {
	for _, m := range t.Memos() {
		memoType, err := hex.DecodeString(m.MemoType)
		if err != nil || string(memoType) != xappMarker {
			continue
		}
		data, err := hex.DecodeString(m.MemoData)
		if err != nil {
			continue
		}
		if xappIdentifierPattern.MatchString(string(data)) {
			return string(data)
		}
	}
	return ""
}
