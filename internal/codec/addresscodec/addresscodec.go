// Package addresscodec encodes and decodes classic ledger addresses
// (base58check with the ripple alphabet) and derives account IDs from
// signing public keys.
package addresscodec

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// Common errors
var (
	ErrInvalidAddress  = errors.New("invalid classic address")
	ErrInvalidChecksum = errors.New("invalid address checksum")
)

// rippleAlphabet is the base58 dictionary used for ledger addresses; note
// it differs from the bitcoin alphabet.
const rippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// accountIDPrefix is the type prefix for account IDs (address version 0).
const accountIDPrefix = 0x00

// AccountIDLength is the byte length of a decoded account ID.
const AccountIDLength = 20

// DecodeAccountID decodes a classic address into its 20-byte account ID,
// verifying the 4-byte double-sha256 checksum.
func DecodeAccountID(address string) ([AccountIDLength]byte, error) {
	var id [AccountIDLength]byte

	decoded, err := base58Decode(address)
	if err != nil {
		return id, err
	}
	// prefix + accountID + checksum
	if len(decoded) != 1+AccountIDLength+4 {
		return id, fmt.Errorf("%w: wrong payload length %d", ErrInvalidAddress, len(decoded))
	}
	if decoded[0] != accountIDPrefix {
		return id, fmt.Errorf("%w: wrong type prefix 0x%02x", ErrInvalidAddress, decoded[0])
	}

	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	if !bytes.Equal(checksum, checksumOf(payload)) {
		return id, ErrInvalidChecksum
	}

	copy(id[:], payload[1:])
	return id, nil
}

// EncodeAccountID encodes a 20-byte account ID as a classic address.
func EncodeAccountID(id [AccountIDLength]byte) string {
	payload := make([]byte, 0, 1+AccountIDLength+4)
	payload = append(payload, accountIDPrefix)
	payload = append(payload, id[:]...)
	payload = append(payload, checksumOf(payload)...)
	return base58Encode(payload)
}

// IsValidAddress reports whether address decodes as a classic address.
func IsValidAddress(address string) bool {
	_, err := DecodeAccountID(address)
	return err == nil
}

// AccountIDFromPublicKey derives the 20-byte account ID from a hex-encoded
// compressed signing public key: RIPEMD160(SHA256(pubkey)).
func AccountIDFromPublicKey(pubKeyHex string) ([AccountIDLength]byte, error) {
	var id [AccountIDLength]byte

	raw, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return id, fmt.Errorf("invalid public key hex: %w", err)
	}
	sha := sha256.Sum256(raw)
	h := ripemd160.New()
	h.Write(sha[:])
	copy(id[:], h.Sum(nil))
	return id, nil
}

// AddressFromPublicKey derives the classic address for a hex-encoded
// compressed signing public key.
func AddressFromPublicKey(pubKeyHex string) (string, error) {
	id, err := AccountIDFromPublicKey(pubKeyHex)
	if err != nil {
		return "", err
	}
	return EncodeAccountID(id), nil
}

func checksumOf(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}

var base58Radix = big.NewInt(58)

func base58Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidAddress)
	}

	n := new(big.Int)
	for _, c := range s {
		idx := bytes.IndexRune([]byte(rippleAlphabet), c)
		if idx < 0 {
			return nil, fmt.Errorf("%w: character %q not in alphabet", ErrInvalidAddress, c)
		}
		n.Mul(n, base58Radix)
		n.Add(n, big.NewInt(int64(idx)))
	}

	out := n.Bytes()

	// leading alphabet-zero characters encode leading zero bytes
	for _, c := range s {
		if byte(c) != rippleAlphabet[0] {
			break
		}
		out = append([]byte{0x00}, out...)
	}
	return out, nil
}

func base58Encode(payload []byte) string {
	n := new(big.Int).SetBytes(payload)
	mod := new(big.Int)

	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, base58Radix, mod)
		out = append(out, rippleAlphabet[mod.Int64()])
	}
	for _, b := range payload {
		if b != 0x00 {
			break
		}
		out = append(out, rippleAlphabet[0])
	}

	// digits were produced least-significant first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
