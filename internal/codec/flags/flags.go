// Package flags translates between bitmask flag fields and named boolean
// maps, per concrete transaction or ledger-entry type. A separate integer
// index namespace covers AccountSet-style SetFlag/ClearFlag values.
package flags

import (
	"errors"
	"fmt"
)

// Common errors. "No flags set" is a valid empty result; these errors are
// reserved for genuinely invalid inputs.
var (
	ErrUnsupportedType = errors.New("unsupported type for flags")
	ErrUnknownFlag     = errors.New("unknown flag name")
)

// Universal transaction flags, applied to every transaction type.
const tfFullyCanonicalSig uint32 = 0x80000000

var universal = map[string]uint32{
	"tfFullyCanonicalSig": tfFullyCanonicalSig,
}

// Transaction flag tables. Bit values follow rippled's TxFlags.h.
var (
	paymentFlags = map[string]uint32{
		"tfNoRippleDirect": 0x00010000,
		"tfPartialPayment": 0x00020000,
		"tfLimitQuality":   0x00040000,
	}

	accountSetFlags = map[string]uint32{
		"tfRequireDestTag":  0x00010000,
		"tfOptionalDestTag": 0x00020000,
		"tfRequireAuth":     0x00040000,
		"tfOptionalAuth":    0x00080000,
		"tfDisallowXRP":     0x00100000,
		"tfAllowXRP":        0x00200000,
	}

	offerCreateFlags = map[string]uint32{
		"tfPassive":           0x00010000,
		"tfImmediateOrCancel": 0x00020000,
		"tfFillOrKill":        0x00040000,
		"tfSell":              0x00080000,
	}

	trustSetFlags = map[string]uint32{
		"tfSetfAuth":      0x00010000,
		"tfSetNoRipple":   0x00020000,
		"tfClearNoRipple": 0x00040000,
		"tfSetFreeze":     0x00100000,
		"tfClearFreeze":   0x00200000,
	}

	paymentChannelClaimFlags = map[string]uint32{
		"tfRenew": 0x00010000,
		"tfClose": 0x00020000,
	}

	nftokenMintFlags = map[string]uint32{
		"tfBurnable":     0x00000001,
		"tfOnlyXRP":      0x00000002,
		"tfTrustLine":    0x00000004,
		"tfTransferable": 0x00000008,
	}

	nftokenCreateOfferFlags = map[string]uint32{
		"tfSellNFToken": 0x00000001,
	}

	clawBackFlags = map[string]uint32{}

	enableAmendmentFlags = map[string]uint32{
		"tfGotMajority":  0x00010000,
		"tfLostMajority": 0x00020000,
	}
)

// Ledger-entry flag tables (lsf namespace).
var (
	accountRootFlags = map[string]uint32{
		"lsfPasswordSpent":  0x00010000,
		"lsfRequireDestTag": 0x00020000,
		"lsfRequireAuth":    0x00040000,
		"lsfDisallowXRP":    0x00080000,
		"lsfDisableMaster":  0x00100000,
		"lsfNoFreeze":       0x00200000,
		"lsfGlobalFreeze":   0x00400000,
		"lsfDefaultRipple":  0x00800000,
		"lsfDepositAuth":    0x01000000,
	}

	offerEntryFlags = map[string]uint32{
		"lsfPassive": 0x00010000,
		"lsfSell":    0x00020000,
	}

	rippleStateFlags = map[string]uint32{
		"lsfLowReserve":   0x00010000,
		"lsfHighReserve":  0x00020000,
		"lsfLowAuth":      0x00040000,
		"lsfHighAuth":     0x00080000,
		"lsfLowNoRipple":  0x00100000,
		"lsfHighNoRipple": 0x00200000,
		"lsfLowFreeze":    0x00400000,
		"lsfHighFreeze":   0x00800000,
	}

	signerListFlags = map[string]uint32{
		"lsfOneOwnerCount": 0x00010000,
	}

	nftokenOfferFlags = map[string]uint32{
		"lsfSellNFToken": 0x00000001,
	}
)

// AccountSet SetFlag/ClearFlag integer values (asf namespace). These are
// indices, not bit values, and are a distinct namespace from the bitmask
// tables above.
var accountSetIndices = map[string]uint32{
	"asfRequireDest":                  1,
	"asfRequireAuth":                  2,
	"asfDisallowXRP":                  3,
	"asfDisableMaster":                4,
	"asfAccountTxnID":                 5,
	"asfNoFreeze":                     6,
	"asfGlobalFreeze":                 7,
	"asfDefaultRipple":                8,
	"asfDepositAuth":                  9,
	"asfAuthorizedNFTokenMinter":      10,
	"asfDisallowIncomingNFTokenOffer": 12,
	"asfDisallowIncomingCheck":        13,
	"asfDisallowIncomingPayChan":      14,
	"asfDisallowIncomingTrustline":    15,
	"asfAllowTrustLineClawback":       16,
}

// Inner-object flag tables, scoped to nested structures rather than whole
// transactions or ledger entries.
var remarkFlags = map[string]uint32{
	"tfImmutable": 0x00000001,
}

// tableFor returns the bitmask table for a concrete type. The boolean
// distinguishes "type has no table" from "type has an empty table".
func tableFor(kind string) (map[string]uint32, bool) {
	switch kind {
	case "Payment":
		return merged(paymentFlags), true
	case "AccountSet":
		return merged(accountSetFlags), true
	case "OfferCreate":
		return merged(offerCreateFlags), true
	case "TrustSet":
		return merged(trustSetFlags), true
	case "PaymentChannelClaim":
		return merged(paymentChannelClaimFlags), true
	case "NFTokenMint":
		return merged(nftokenMintFlags), true
	case "NFTokenCreateOffer":
		return merged(nftokenCreateOfferFlags), true
	case "Clawback":
		return merged(clawBackFlags), true
	case "EnableAmendment":
		return merged(enableAmendmentFlags), true
	case "AccountRoot":
		return accountRootFlags, true
	case "Offer":
		return offerEntryFlags, true
	case "RippleState":
		return rippleStateFlags, true
	case "SignerList":
		return signerListFlags, true
	case "NFTokenOffer":
		return nftokenOfferFlags, true
	default:
		return nil, false
	}
}

// merged unions a transaction flag table with the universal flags.
func merged(table map[string]uint32) map[string]uint32 {
	out := make(map[string]uint32, len(table)+len(universal))
	for name, bit := range universal {
		out[name] = bit
	}
	for name, bit := range table {
		out[name] = bit
	}
	return out
}

// indexTableFor returns the integer-index table for a concrete type.
func indexTableFor(kind string) (map[string]uint32, bool) {
	switch kind {
	case "AccountSet":
		return accountSetIndices, true
	default:
		return nil, false
	}
}

func innerTableFor(kind string) (map[string]uint32, bool) {
	switch kind {
	case "Remark":
		return remarkFlags, true
	default:
		return nil, false
	}
}

// Parse decodes a bitmask into a named boolean map for the given type.
// An unknown type yields an empty map, not an error: callers treat it the
// same as a type that defines no flags.
func Parse(kind string, bitmask uint32) map[string]bool {
	table, ok := tableFor(kind)
	if !ok {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(table))
	for name, bit := range table {
		out[name] = bitmask&bit != 0
	}
	return out
}

// Set ORs the named flag into current and returns the new bitmask. The
// result is an unsigned 32-bit value regardless of any signed intermediate
// the caller may have carried.
func Set(kind, name string, current uint32) (uint32, error) {
	table, ok := tableFor(kind)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
	}
	bit, ok := table[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q for type %q", ErrUnknownFlag, name, kind)
	}
	return current | bit, nil
}

// SetIndex resolves a flag name in the integer-index namespace.
func SetIndex(kind, name string) (uint32, error) {
	table, ok := indexTableFor(kind)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
	}
	v, ok := table[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q for type %q", ErrUnknownFlag, name, kind)
	}
	return v, nil
}

// IndexName resolves an integer-index value back to its flag name.
func IndexName(kind string, value uint32) (string, error) {
	table, ok := indexTableFor(kind)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
	}
	for name, v := range table {
		if v == value {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: no name for value %d on type %q", ErrUnknownFlag, value, kind)
}

// ParseInner decodes a nested object's own flag field.
func ParseInner(kind string, bitmask uint32) map[string]bool {
	table, ok := innerTableFor(kind)
	if !ok {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(table))
	for name, bit := range table {
		out[name] = bitmask&bit != 0
	}
	return out
}

// SetInner ORs a nested object's named flag into current.
func SetInner(kind, name string, current uint32) (uint32, error) {
	table, ok := innerTableFor(kind)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
	}
	bit, ok := table[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q for inner type %q", ErrUnknownFlag, name, kind)
	}
	return current | bit, nil
}
