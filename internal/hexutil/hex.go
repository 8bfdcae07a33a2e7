// Package hexutil converts between byte slices and hexadecimal text.
//
// Decoding is lenient: a single leading "0x" is stripped, and an odd
// trailing digit is decoded as its own byte ("f" -> 0x0f). Encoding always
// produces two lower-case digits per byte and never adds a prefix.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	apperrors "github.com/mowind/eip55-go/internal/errors"
)

// Prefix is the marker stripped by Decode.
const Prefix = "0x"

// ErrOddLength reports an odd number of hex digits where whole bytes are required.
var ErrOddLength = errors.New("hex string has an odd number of digits")

// UTF8Error describes a digit group that is not valid UTF-8 text.
type UTF8Error struct {
	// Offset is the byte offset of the group within the prefix-stripped input.
	Offset int
	Group  []byte
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence % x at offset %d", e.Group, e.Offset)
}

// Has0xPrefix reports whether s starts with the exact "0x" marker.
func Has0xPrefix(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// Strip0x removes at most one leading "0x".
func Strip0x(s string) string {
	return strings.TrimPrefix(s, Prefix)
}

// Decode parses hexadecimal text into bytes.
//
// The text is split into 2-byte groups from the left; every group must be
// valid UTF-8 and parse as a base-16 byte. Empty input (after the prefix)
// yields an empty, non-nil slice.
func Decode(s string) ([]byte, error) {
	s = Strip0x(s)

	out := make([]byte, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i += 2 {
		end := i + 2
		if end > len(s) {
			end = len(s)
		}
		group := s[i:end]

		if !utf8.ValidString(group) {
			return nil, apperrors.NewInvalidUTF8(&UTF8Error{Offset: i, Group: []byte(group)})
		}

		b, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return nil, apperrors.NewInvalidHex(err)
		}
		out = append(out, byte(b))
	}

	return out, nil
}

// MustDecode is like Decode but panics on malformed input.
// Use only for trusted constants.
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Encode renders b as lower-case hex, two digits per byte, without prefix.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeWithPrefix is Encode with a leading "0x".
func EncodeWithPrefix(b []byte) string {
	return Prefix + Encode(b)
}
