// Package address implements the 20-byte Ethereum account address with
// EIP-55 checksum encoding.
//
// An Address is always exactly Length bytes; constructors either return a
// complete value or one of the address error kinds from internal/errors.
package address

import (
	"bytes"

	apperrors "github.com/mowind/eip55-go/internal/errors"
	"github.com/mowind/eip55-go/internal/hexutil"
)

// Length is the size of an address in bytes.
const Length = 20

// Address is a 20-byte account identifier.
type Address [Length]byte

// Zero is the all-zero address.
var Zero Address

// FromBytes copies b into an Address. b must be exactly Length bytes.
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Length {
		return a, apperrors.NewInvalidAddressLength(len(b), Length)
	}
	copy(a[:], b)
	return a, nil
}

// MustFromBytes is like FromBytes but panics on a length mismatch.
// Use only for trusted internal data.
func MustFromBytes(b []byte) Address {
	a, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return a
}

// FromHex parses hex text with or without the "0x" prefix. Letter casing is
// not checked.
func FromHex(s string) (Address, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Address{}, err
	}

	a, err := FromBytes(b)
	if err != nil {
		return Address{}, err
	}

	// 39 digits decode to 20 bytes with a half byte at the end.
	if len(hexutil.Strip0x(s))%2 != 0 {
		return Address{}, apperrors.NewInvalidHex(hexutil.ErrOddLength)
	}

	return a, nil
}

// MustFromHex is like FromHex but panics on malformed input.
func MustFromHex(s string) Address {
	a, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromChecksummed parses s and verifies its EIP-55 casing with the default
// Checksummer (Keccak-256, all-lower/all-upper input accepted).
func FromChecksummed(s string) (Address, error) {
	return defaultChecksummer.Parse(s)
}

// IsHexAddress reports whether s is 40 hex digits with an optional "0x".
func IsHexAddress(s string) bool {
	s = hexutil.Strip0x(s)
	if len(s) != 2*Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// Hex returns the lower-case hex form without prefix.
func (a Address) Hex() string {
	return hexutil.Encode(a[:])
}

// HexWithPrefix returns the lower-case hex form with "0x".
func (a Address) HexWithPrefix() string {
	return hexutil.EncodeWithPrefix(a[:])
}

// String implements fmt.Stringer; it is the plain lower-case form.
func (a Address) String() string {
	return a.Hex()
}

// Checksummed returns "0x" followed by the EIP-55 checksummed hex.
func (a Address) Checksummed() string {
	return defaultChecksummer.Encode(a)
}

// Compare orders addresses by their raw bytes.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool {
	return a == Zero
}
