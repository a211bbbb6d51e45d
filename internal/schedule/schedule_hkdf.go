//go:build rhx_hkdf

package schedule

import "github.com/redeaux-corp/rhxcore/internal/kdf"

// HKDFExpander is the alternate RHX key-schedule backend, selected by
// building with -tags rhx_hkdf. It derives the round-key stream with
// RFC 5869 HKDF-Expand over HMAC-SHA-256 (32-byte keys) or HMAC-SHA-512
// (64-byte keys), using the user key directly as the PRK (there is no
// Extract phase: the key is already uniformly random key material, not
// low-entropy input). The HKDF info parameter is rhxLabel concatenated
// with the caller's info string, so the two schedule backends share the
// same domain separation (spec §4.F.2).
type HKDFExpander struct{}

func (HKDFExpander) Expand(key, info []byte, rounds int) [][16]byte {
	outLen := 16 * (rounds + 1)
	labeled := append(append([]byte{}, rhxLabel...), info...)
	var stream []byte
	var err error
	switch len(key) {
	case 32:
		stream, err = kdf.ExpandSHA256(key, labeled, outLen)
	case 64:
		stream, err = kdf.ExpandSHA512(key, labeled, outLen)
	default:
		panic("schedule: HKDFExpander requires a 32 or 64 byte key")
	}
	if err != nil {
		panic(err)
	}
	return splitRoundKeys(stream, rounds)
}
