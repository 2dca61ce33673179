// Package addresscodec implements the XRPL base58check encoding of classic
// addresses. It is the full, checksum-verifying counterpart of the
// shape-only types.Account validator.
package addresscodec

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // the ledger's address scheme requires ripemd160
)

// XRPL's base58 alphabet: same scheme as Bitcoin's, reordered so account
// addresses start with r.
var xrpAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

const (
	// AccountAddressLength is the account ID size in bytes.
	AccountAddressLength = 20
	// AccountPublicKeyLength is the compressed public key size in bytes.
	AccountPublicKeyLength = 33

	// AccountAddressPrefix is the type prefix of classic addresses.
	AccountAddressPrefix = 0x00
	// ED25519Prefix marks ed25519 public keys.
	ED25519Prefix = 0xED
)

var (
	ErrChecksum      = errors.New("checksum mismatch")
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)

// checksum: first four bytes of sha256^2.
func checksum(input []byte) (cksum [4]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(cksum[:], h2[:4])
	return cksum
}

// CheckEncode prepends the type prefix, appends the four-byte checksum and
// encodes with the XRPL base58 alphabet.
func CheckEncode(input []byte, prefix ...byte) string {
	b := make([]byte, 0, len(prefix)+len(input)+4)
	b = append(b, prefix...)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return base58.EncodeAlphabet(b, xrpAlphabet)
}

// CheckDecode decodes a CheckEncode string and verifies the checksum.
func CheckDecode(input string) ([]byte, error) {
	decoded, err := base58.DecodeAlphabet(input, xrpAlphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(decoded) < 5 {
		return nil, ErrInvalidFormat
	}
	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		return nil, ErrChecksum
	}
	return decoded[:len(decoded)-4], nil
}

// EncodeAccountID returns the classic address of a 20-byte account ID.
func EncodeAccountID(accountID []byte) (string, error) {
	if len(accountID) != AccountAddressLength {
		return "", fmt.Errorf("account ID must be %d bytes, got %d", AccountAddressLength, len(accountID))
	}
	return CheckEncode(accountID, AccountAddressPrefix), nil
}

// DecodeClassicAddress returns the 20-byte account ID of a classic address.
func DecodeClassicAddress(address string) ([]byte, error) {
	decoded, err := CheckDecode(address)
	if err != nil {
		return nil, err
	}
	if len(decoded) != AccountAddressLength+1 || decoded[0] != AccountAddressPrefix {
		return nil, fmt.Errorf("%w: wrong type prefix or payload length", ErrInvalidFormat)
	}
	return decoded[1:], nil
}

// IsValidClassicAddress reports whether the address carries the account
// prefix and a valid checksum.
func IsValidClassicAddress(address string) bool {
	_, err := DecodeClassicAddress(address)
	return err == nil
}

// AccountIDFromPublicKey hashes a compressed public key (sha256, then
// ripemd160) into its 20-byte account ID. A 32-byte key is taken as ed25519
// and gets the 0xED marker prepended.
func AccountIDFromPublicKey(pubkey []byte) ([]byte, error) {
	if len(pubkey) == AccountPublicKeyLength-1 {
		pubkey = append([]byte{ED25519Prefix}, pubkey...)
	}
	if len(pubkey) != AccountPublicKeyLength {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", AccountPublicKeyLength, len(pubkey))
	}
	sha := sha256.Sum256(pubkey)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil), nil
}
