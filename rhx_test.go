package rhx

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

func TestInitializeRejectsWrongKeyLength(t *testing.T) {
	if _, err := Initialize(AES128, make([]byte, 10), nil); err != ErrInvalidKeyLength {
		t.Fatalf("got %v, want ErrInvalidKeyLength", err)
	}
	if _, err := Initialize(RHX512, make([]byte, 32), nil); err != ErrInvalidKeyLength {
		t.Fatalf("got %v, want ErrInvalidKeyLength", err)
	}
}

// FIPS-197 Appendix B, reused at the mode level via ECB.
func TestECBAES128KnownAnswer(t *testing.T) {
	key := hexBytes(t, "2b7e151628aed2a6abf7158809cf4f3c")
	plaintext := hexBytes(t, "3243f6a8885a308d313198a2e0370734")
	want := hexBytes(t, "3925841d02dc09fbdc118597196a0b32")

	cs, err := Initialize(AES128, key, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cs.Dispose()

	got := make([]byte, BlockSize)
	if err := cs.ECBEncrypt(got, plaintext); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("ECBEncrypt = %x, want %x", got, want)
	}

	back := make([]byte, BlockSize)
	if err := cs.ECBDecrypt(back, got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, plaintext) {
		t.Fatalf("ECBDecrypt = %x, want %x", back, plaintext)
	}
}

// NIST SP 800-38A F.2.1/F.2.2: AES-128-CBC known-answer vector.
func TestCBCAES128KnownAnswer(t *testing.T) {
	key := hexBytes(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := hexBytes(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := hexBytes(t,
		"6bc1bee22e409f96e93d7e117393172a"+
			"ae2d8a571e03ac9c9eb76fac45af8e51"+
			"30c81c46a35ce411e5fbc1191a0a52ef"+
			"f69f2445df4f9b17ad2b417be66c3710")
	want := hexBytes(t,
		"7649abac8119b246cee98e9b12e9197d"+
			"5086cb9b507219ee95db113a917678b2"+
			"73bed6b8e3c1743b7116e69e22229516"+
			"3ff1caa1681fac09120eca307586e1a7")

	cs, err := Initialize(AES128, key, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cs.Dispose()

	got := make([]byte, len(plaintext))
	if err := cs.CBCEncrypt(got, plaintext, iv); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("CBCEncrypt = %x, want %x", got, want)
	}

	back := make([]byte, len(plaintext))
	if err := cs.CBCDecrypt(back, got, iv); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, plaintext) {
		t.Fatalf("CBCDecrypt = %x, want %x", back, plaintext)
	}
}

// NIST SP 800-38A F.5.1/F.5.2: AES-128-CTR known-answer vector.
func TestCTRAES128KnownAnswer(t *testing.T) {
	key := hexBytes(t, "2b7e151628aed2a6abf7158809cf4f3c")
	counter := hexBytes(t, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	plaintext := hexBytes(t,
		"6bc1bee22e409f96e93d7e117393172a"+
			"ae2d8a571e03ac9c9eb76fac45af8e51"+
			"30c81c46a35ce411e5fbc1191a0a52ef"+
			"f69f2445df4f9b17ad2b417be66c3710")
	want := hexBytes(t,
		"874d6191b620e3261bef6864990db6ce"+
			"9806f66b7970fdff8617187bb9fffdff"+
			"5ae4df3edbd5d35e5b4f09020db03eab"+
			"1e031dda2fbe03d1792170a0f3009cb8")

	cs, err := Initialize(AES128, key, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cs.Dispose()

	got := make([]byte, len(plaintext))
	if err := cs.CTRXOR(got, plaintext, counter); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("CTRXOR encrypt = %x, want %x", got, want)
	}

	back := make([]byte, len(plaintext))
	if err := cs.CTRXOR(back, got, counter); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, plaintext) {
		t.Fatalf("CTRXOR decrypt = %x, want %x", back, plaintext)
	}
}

func TestCTRAES128NonBlockAlignedLength(t *testing.T) {
	key := make([]byte, 16)
	counter := make([]byte, BlockSize)
	cs, err := Initialize(AES128, key, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cs.Dispose()

	plaintext := []byte("not a multiple of the block size")
	got := make([]byte, len(plaintext))
	if err := cs.CTRXOR(got, plaintext, counter); err != nil {
		t.Fatal(err)
	}
	back := make([]byte, len(plaintext))
	if err := cs.CTRXOR(back, got, counter); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, plaintext) {
		t.Fatalf("CTRXOR round trip = %q, want %q", back, plaintext)
	}
}

// RHX has no external KAT vectors (it is this library's own extended
// design); round-trip self-consistency across ECB, CBC, and CTR is the
// applicable correctness check for both key sizes.
func TestRHXRoundTripAllVariantsAndModes(t *testing.T) {
	variants := []CipherVariant{RHX256, RHX512}
	for _, v := range variants {
		key := bytes.Repeat([]byte{0x42}, v.KeySize())
		cs, err := Initialize(v, key, []byte("rhx-selftest"))
		if err != nil {
			t.Fatalf("%s: Initialize: %v", v, err)
		}

		plaintext := bytes.Repeat([]byte{0xaa}, BlockSize*3)
		iv := bytes.Repeat([]byte{0x01}, BlockSize)

		ecbOut := make([]byte, len(plaintext))
		if err := cs.ECBEncrypt(ecbOut, plaintext); err != nil {
			t.Fatalf("%s: ECBEncrypt: %v", v, err)
		}
		ecbBack := make([]byte, len(plaintext))
		if err := cs.ECBDecrypt(ecbBack, ecbOut); err != nil {
			t.Fatalf("%s: ECBDecrypt: %v", v, err)
		}
		if !bytes.Equal(ecbBack, plaintext) {
			t.Fatalf("%s: ECB round trip mismatch", v)
		}

		cbcOut := make([]byte, len(plaintext))
		if err := cs.CBCEncrypt(cbcOut, plaintext, iv); err != nil {
			t.Fatalf("%s: CBCEncrypt: %v", v, err)
		}
		cbcBack := make([]byte, len(plaintext))
		if err := cs.CBCDecrypt(cbcBack, cbcOut, iv); err != nil {
			t.Fatalf("%s: CBCDecrypt: %v", v, err)
		}
		if !bytes.Equal(cbcBack, plaintext) {
			t.Fatalf("%s: CBC round trip mismatch", v)
		}

		ctrOut := make([]byte, len(plaintext))
		if err := cs.CTRXOR(ctrOut, plaintext, iv); err != nil {
			t.Fatalf("%s: CTRXOR encrypt: %v", v, err)
		}
		ctrBack := make([]byte, len(plaintext))
		if err := cs.CTRXOR(ctrBack, ctrOut, iv); err != nil {
			t.Fatalf("%s: CTRXOR decrypt: %v", v, err)
		}
		if !bytes.Equal(ctrBack, plaintext) {
			t.Fatalf("%s: CTR round trip mismatch", v)
		}

		cs.Dispose()
		if err := cs.encryptBlock(&[16]byte{}); err != ErrStateMisuse {
			t.Fatalf("%s: use after Dispose: got %v, want ErrStateMisuse", v, err)
		}
	}
}

func TestRHXDifferentInfoProducesDifferentSchedule(t *testing.T) {
	key := bytes.Repeat([]byte{0x77}, 32)
	csA, err := Initialize(RHX256, key, []byte("context-a"))
	if err != nil {
		t.Fatal(err)
	}
	defer csA.Dispose()
	csB, err := Initialize(RHX256, key, []byte("context-b"))
	if err != nil {
		t.Fatal(err)
	}
	defer csB.Dispose()

	block := [16]byte{}
	blockA, blockB := block, block
	if err := csA.encryptBlock(&blockA); err != nil {
		t.Fatal(err)
	}
	if err := csB.encryptBlock(&blockB); err != nil {
		t.Fatal(err)
	}
	if blockA == blockB {
		t.Fatal("different info/tweaks produced identical ciphertext")
	}
}
