//go:build !rhx_hkdf

package schedule

import "github.com/redeaux-corp/rhxcore/internal/keccak"

// CShakeExpander is the default RHX key-schedule backend: it derives the
// round-key stream with cSHAKE256 (32-byte keys) or this module's 512-bit
// cSHAKE extension (64-byte keys), customized with the function-name string
// "RHX" so the schedule is domain-separated from any other cSHAKE use of
// the same key. Selected at compile time; build with -tags rhx_hkdf for the
// HKDF-SHA2 alternative in schedule_hkdf.go.
type CShakeExpander struct{}

func (CShakeExpander) Expand(key, info []byte, rounds int) [][16]byte {
	outLen := 16 * (rounds + 1)
	var stream []byte
	switch len(key) {
	case 32:
		stream = keccak.CShake256(key, rhxLabel, info, outLen)
	case 64:
		stream = keccak.CShake512(key, rhxLabel, info, outLen)
	default:
		panic("schedule: CShakeExpander requires a 32 or 64 byte key")
	}
	return splitRoundKeys(stream, rounds)
}

func splitRoundKeys(stream []byte, rounds int) [][16]byte {
	rk := make([][16]byte, rounds+1)
	for i := range rk {
		copy(rk[i][:], stream[i*16:i*16+16])
	}
	return rk
}
