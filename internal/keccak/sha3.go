package keccak

// Rate/domain constants for the Keccak-based constructions this module
// needs. Rate512 (576-bit rate / 1024-bit capacity) backs both the
// NIST-standard SHA3-512 and this library's non-standard 512-bit-strength
// cSHAKE/KMAC extension.
const (
	domainSHA3  = 0x06
	domainSHAKE = 0x1f
	domainCShake = 0x04

	Rate128 = 168 // SHAKE128 / cSHAKE128 / KMAC128
	Rate256 = 136 // SHA3-256 / SHAKE256 / cSHAKE256 / KMAC256
	Rate512 = 72  // SHA3-512 / cSHAKE512 / KMAC512 (this module's extension)
)

func sha3Sum(rate, outLen int, msg []byte) []byte {
	sp := newSponge(rate, domainSHA3)
	sp.Write(msg)
	return sp.Sum(outLen)
}

// Sum256 computes SHA3-256(msg).
func Sum256(msg []byte) [32]byte {
	var out [32]byte
	copy(out[:], sha3Sum(Rate256, 32, msg))
	return out
}

// Sum512 computes SHA3-512(msg).
func Sum512(msg []byte) [64]byte {
	var out [64]byte
	copy(out[:], sha3Sum(Rate512, 64, msg))
	return out
}

func shake(rate int, x []byte, outLen int) []byte {
	sp := newSponge(rate, domainSHAKE)
	sp.Write(x)
	return sp.Sum(outLen)
}

// Shake128 computes SHAKE128(x, outLen).
func Shake128(x []byte, outLen int) []byte { return shake(Rate128, x, outLen) }

// Shake256 computes SHAKE256(x, outLen).
func Shake256(x []byte, outLen int) []byte { return shake(Rate256, x, outLen) }

// cshake implements NIST SP 800-185 cSHAKE; falls back to plain SHAKE when
// both N and S are empty, per the standard's definition.
func cshake(rate int, x, n, s []byte, outLen int) []byte {
	if len(n) == 0 && len(s) == 0 {
		return shake(rate, x, outLen)
	}
	sp := newSponge(rate, domainCShake)
	prefix := bytepad(append(encodeString(n), encodeString(s)...), rate)
	sp.Write(prefix)
	sp.Write(x)
	return sp.Sum(outLen)
}

// CShake128 computes cSHAKE128(x, outLen, n, s).
func CShake128(x, n, s []byte, outLen int) []byte { return cshake(Rate128, x, n, s, outLen) }

// CShake256 computes cSHAKE256(x, outLen, n, s).
func CShake256(x, n, s []byte, outLen int) []byte { return cshake(Rate256, x, n, s, outLen) }

// CShake512 computes this module's 512-bit-strength cSHAKE extension. It is
// not a NIST-standard construction (NIST defines only the 128/256-bit
// strengths); it reuses SHA3-512's rate/capacity and cSHAKE's framing,
// which is what RHX-512's schedule and HBA-RHX-512 are specified against.
func CShake512(x, n, s []byte, outLen int) []byte { return cshake(Rate512, x, n, s, outLen) }

var kmacName = []byte("KMAC")

func kmac(rate int, key, x, s []byte, outLen int) []byte {
	newX := bytepad(encodeString(key), rate)
	newX = append(newX, x...)
	newX = append(newX, rightEncode(uint64(outLen)*8)...)
	return cshake(rate, newX, kmacName, s, outLen)
}

// KMAC128 computes KMAC128(key, x, outLen, s).
func KMAC128(key, x, s []byte, outLen int) []byte { return kmac(Rate128, key, x, s, outLen) }

// KMAC256 computes KMAC256(key, x, outLen, s).
func KMAC256(key, x, s []byte, outLen int) []byte { return kmac(Rate256, key, x, s, outLen) }

// KMAC512 computes this module's 512-bit-strength KMAC extension, built on
// CShake512 the same way KMAC256 is built on CShake256.
func KMAC512(key, x, s []byte, outLen int) []byte { return kmac(Rate512, key, x, s, outLen) }
