// Package peerid validates the textual form of peer identifiers.
//
// A peer identifier is a base58btc-encoded token naming a participant's
// cryptographic identity. Which encodings are acceptable differs per
// scenario, so validation is parameterized by a set of encoding families.
package peerid

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multihash"
)

// Family describes one known peer identifier encoding.
//
// Prefix and the textual length bounds are checked before decoding so that
// rejection reasons match what a human sees in the trace. MHCode and
// DigestSize then pin the multihash framing of the decoded bytes; a family
// with MHCode == 0 and Prefix == "" is a bare digest with no framing.
type Family struct {
	Name       string
	Prefix     string
	MinLen     int
	MaxLen     int
	MHCode     uint64
	DigestSize int
}

// The encoding families observed in practice. Ed25519 identities embed the
// public key directly (identity multihash over the 36-byte key protobuf);
// RSA identities carry a sha2-256 digest; secp256k1 identities embed a
// 37-byte compressed-key protobuf.
var (
	Ed25519 = Family{
		Name:       "ed25519",
		Prefix:     "12D3KooW",
		MinLen:     45,
		MaxLen:     60,
		MHCode:     multihash.IDENTITY,
		DigestSize: 36,
	}
	RSA = Family{
		Name:       "rsa",
		Prefix:     "Qm",
		MinLen:     46,
		MaxLen:     46,
		MHCode:     multihash.SHA2_256,
		DigestSize: 32,
	}
	Secp256k1 = Family{
		Name:       "secp256k1",
		Prefix:     "16Uiu2HAm",
		MinLen:     45,
		MaxLen:     60,
		MHCode:     multihash.IDENTITY,
		DigestSize: 37,
	}

	// RawSHA256 is a bare base58 encoding of a 32-byte digest with no
	// multihash framing and no prefix convention.
	RawSHA256 = Family{
		Name:       "raw-sha256",
		DigestSize: 32,
	}
)

// base58btc alphabet; 0, O, I and l are intentionally absent.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Validate checks that token is a syntactically valid peer identifier under
// one of the given families. The returned error names the literal token and
// the first violated constraint. Comparison elsewhere is exact string
// equality; no normalization happens here.
func Validate(token string, families ...Family) error {
	if token == "" {
		return fmt.Errorf("empty peer identifier")
	}
	if len(families) == 0 {
		return fmt.Errorf("no peer identifier families configured")
	}

	for _, r := range token {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %q in peer identifier (must be base58): %s", r, token)
		}
	}

	fam, ok := matchFamily(token, families)
	if !ok {
		return fmt.Errorf("unrecognized peer identifier prefix (expected one of %s): %s", prefixList(families), token)
	}

	if n := len(token); n < fam.MinLen || (fam.MaxLen > 0 && n > fam.MaxLen) {
		if fam.MinLen == fam.MaxLen {
			return fmt.Errorf("peer identifier length invalid: expected %d chars for %s, got %d: %s", fam.MinLen, fam.Name, n, token)
		}
		return fmt.Errorf("peer identifier length invalid: expected %d-%d chars for %s, got %d: %s", fam.MinLen, fam.MaxLen, fam.Name, n, token)
	}

	raw, err := base58.Decode(token)
	if err != nil {
		return fmt.Errorf("peer identifier is not valid base58: %s", token)
	}

	if fam.MHCode == 0 && fam.Prefix == "" {
		if len(raw) != fam.DigestSize {
			return fmt.Errorf("peer identifier decodes to %d bytes, expected %d: %s", len(raw), fam.DigestSize, token)
		}
		return nil
	}

	dec, err := multihash.Decode(raw)
	if err != nil {
		return fmt.Errorf("peer identifier is not a valid multihash: %s", token)
	}
	if dec.Code != fam.MHCode {
		return fmt.Errorf("peer identifier multihash code 0x%x does not match %s family: %s", dec.Code, fam.Name, token)
	}
	if dec.Length != fam.DigestSize {
		return fmt.Errorf("peer identifier digest is %d bytes, expected %d for %s family: %s", dec.Length, fam.DigestSize, fam.Name, token)
	}
	return nil
}

// Validator adapts Validate into a slot validator for an event grammar.
func Validator(families ...Family) func(string) error {
	fams := append([]Family(nil), families...)
	return func(token string) error {
		return Validate(token, fams...)
	}
}

// matchFamily picks the family whose prefix matches the token. Prefixed
// families win over a prefixless family so a token is never ambiguous.
func matchFamily(token string, families []Family) (Family, bool) {
	var raw Family
	var haveRaw bool
	for _, f := range families {
		if f.Prefix == "" {
			raw, haveRaw = f, true
			continue
		}
		if strings.HasPrefix(token, f.Prefix) {
			return f, true
		}
	}
	if haveRaw {
		return raw, true
	}
	return Family{}, false
}

func prefixList(families []Family) string {
	parts := make([]string, 0, len(families))
	for _, f := range families {
		if f.Prefix == "" {
			parts = append(parts, f.Name)
			continue
		}
		parts = append(parts, f.Prefix)
	}
	return strings.Join(parts, ", ")
}
