package address

import (
	"strings"

	apperrors "github.com/mowind/eip55-go/internal/errors"
	"github.com/mowind/eip55-go/internal/hexutil"
)

// Policy controls how FromChecksummed treats single-case input.
type Policy int

const (
	// PolicyLegacy accepts an all-lower-case or all-upper-case body as an
	// unchecksummed address, as EIP-55 allows.
	PolicyLegacy Policy = iota
	// PolicyStrict requires the exact canonical casing.
	PolicyStrict
)

// String returns the policy name used in configuration.
func (p Policy) String() string {
	switch p {
	case PolicyLegacy:
		return "legacy"
	case PolicyStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// Checksummer renders and verifies EIP-55 checksummed addresses.
//
// A Checksummer is immutable and safe for concurrent use.
type Checksummer struct {
	hasher Hasher
	policy Policy
}

// Option configures a Checksummer.
type Option func(*Checksummer)

// WithHasher replaces the Keccak-256 digest used for casing.
func WithHasher(h Hasher) Option {
	return func(c *Checksummer) {
		if h != nil {
			c.hasher = h
		}
	}
}

// WithPolicy sets the single-case policy.
func WithPolicy(p Policy) Option {
	return func(c *Checksummer) {
		c.policy = p
	}
}

// NewChecksummer creates a Checksummer; by default it uses Keccak-256 and
// PolicyLegacy.
func NewChecksummer(opts ...Option) *Checksummer {
	c := &Checksummer{
		hasher: Keccak256Hasher{},
		policy: PolicyLegacy,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultChecksummer = NewChecksummer()

// Policy returns the configured single-case policy.
func (c *Checksummer) Policy() Policy {
	return c.policy
}

// Body returns the 40-character checksummed hex of a, without prefix.
func (c *Checksummer) Body(a Address) string {
	lower := hexutil.Encode(a[:])
	digest := c.hasher.Sum256([]byte(lower))

	result := []byte(lower)
	for i, ch := range result {
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if ch >= 'a' && ch <= 'f' && nibble >= 8 {
			result[i] = ch - ('a' - 'A')
		}
	}
	return string(result)
}

// Encode returns the checksummed form of a with the "0x" prefix.
func (c *Checksummer) Encode(a Address) string {
	return hexutil.Prefix + c.Body(a)
}

// Parse decodes s and verifies its checksum casing.
func (c *Checksummer) Parse(s string) (Address, error) {
	body := hexutil.Strip0x(s)

	a, err := FromHex(s)
	if err != nil {
		return Address{}, err
	}

	if c.policy == PolicyLegacy && isSingleCase(body) {
		return a, nil
	}

	if expected := c.Body(a); body != expected {
		return Address{}, apperrors.NewInvalidEIP55(s, hexutil.Prefix+expected)
	}
	return a, nil
}

// Verify reports whether s is a correctly checksummed address.
func (c *Checksummer) Verify(s string) error {
	_, err := c.Parse(s)
	return err
}

func isSingleCase(body string) bool {
	return body == strings.ToLower(body) || body == strings.ToUpper(body)
}
