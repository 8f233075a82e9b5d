// Package tracecid computes content identifiers for captured trace text.
//
// A report that names the CID of the exact bytes it judged can be re-checked
// later without re-running the subject program.
package tracecid

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Fingerprint returns a CIDv1 string ("raw" multicodec, sha2-256 multihash)
// for the given trace bytes.
func Fingerprint(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// FingerprintCID returns the CIDv1 (raw + sha2-256) derived from data.
func FingerprintCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
