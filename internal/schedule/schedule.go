// Package schedule builds Rijndael round-key schedules for both the
// standard AES key expansion (FIPS-197 §5.2) and RHX's KDF-driven extended
// schedule, plus the FIPS-197 §5.3.5 equivalent-inverse-cipher transform
// shared by both on decryption. Grounded on the same
// other_examples/81cfb09c_wedkarz02-aes256__aes256.go.go reference as
// internal/aesprim for the forward AES expansion shape.
package schedule

import "github.com/redeaux-corp/rhxcore/internal/aesprim"

// rhxLabel is the fixed domain-separation label shared by both RHX schedule
// backends: the cSHAKE backend uses it as the function-name string, the
// HKDF backend prepends it to the user info string (spec §4.F.1/§4.F.2), so
// a given (key, info) pair is labeled identically regardless of which
// backend a build selects.
var rhxLabel = []byte("RHX")

// AESForward builds the FIPS-197 forward key schedule for a 128 or 256-bit
// key, returning rounds+1 round keys (rounds is 10 for a 16-byte key, 14 for
// a 32-byte key).
func AESForward(key []byte) ([][16]byte, int) {
	nk := len(key) / 4
	var rounds int
	switch len(key) {
	case 16:
		rounds = 10
	case 32:
		rounds = 14
	default:
		panic("schedule: AESForward requires a 16 or 32 byte key")
	}

	totalWords := 4 * (rounds + 1)
	w := make([]uint32, totalWords)
	for i := 0; i < nk; i++ {
		w[i] = uint32(key[4*i])<<24 | uint32(key[4*i+1])<<16 | uint32(key[4*i+2])<<8 | uint32(key[4*i+3])
	}
	for i := nk; i < totalWords; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp)) ^ (uint32(aesprim.Rcon(i/nk)) << 24)
		} else if nk > 6 && i%nk == 4 {
			temp = subWord(temp)
		}
		w[i] = w[i-nk] ^ temp
	}

	roundKeys := make([][16]byte, rounds+1)
	for rk := 0; rk < rounds+1; rk++ {
		for wi := 0; wi < 4; wi++ {
			word := w[rk*4+wi]
			roundKeys[rk][wi*4] = byte(word >> 24)
			roundKeys[rk][wi*4+1] = byte(word >> 16)
			roundKeys[rk][wi*4+2] = byte(word >> 8)
			roundKeys[rk][wi*4+3] = byte(word)
		}
	}
	return roundKeys, rounds
}

func subWord(w uint32) uint32 {
	return uint32(aesprim.SBox(byte(w>>24)))<<24 |
		uint32(aesprim.SBox(byte(w>>16)))<<16 |
		uint32(aesprim.SBox(byte(w>>8)))<<8 |
		uint32(aesprim.SBox(byte(w)))
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// EquivalentInverseSchedule applies FIPS-197 §5.3.5's transform to a forward
// schedule w, producing the dw schedule internal/aesprim.DecryptBlock
// expects: dw[0]=w[rounds] and dw[rounds]=w[0] pass through unmodified,
// every interior dw[i] is InvMixColumns(w[rounds-i]).
func EquivalentInverseSchedule(w [][16]byte, rounds int) [][16]byte {
	dw := make([][16]byte, rounds+1)
	dw[0] = w[rounds]
	dw[rounds] = w[0]
	for i := 1; i < rounds; i++ {
		k := w[rounds-i]
		aesprim.InvMixColumns(&k)
		dw[i] = k
	}
	return dw
}
