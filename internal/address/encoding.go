package address

import (
	"encoding"
)

var (
	_ encoding.TextMarshaler     = Address{}
	_ encoding.TextUnmarshaler   = (*Address)(nil)
	_ encoding.BinaryMarshaler   = Address{}
	_ encoding.BinaryUnmarshaler = (*Address)(nil)
)

// MarshalText encodes the address in checksummed form.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Checksummed()), nil
}

// UnmarshalText decodes checksummed (or single-case) text.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := FromChecksummed(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalBinary returns the raw 20 bytes.
func (a Address) MarshalBinary() ([]byte, error) {
	return a.Bytes(), nil
}

// UnmarshalBinary decodes exactly Length raw bytes.
func (a *Address) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
