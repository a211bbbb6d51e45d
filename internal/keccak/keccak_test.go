package keccak

import (
	"encoding/hex"
	"testing"
)

func TestSum256EmptyKnownAnswer(t *testing.T) {
	want := "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	got := Sum256(nil)
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("SHA3-256(\"\") = %s, want %s", hex.EncodeToString(got[:]), want)
	}
}

func TestSum512EmptyKnownAnswer(t *testing.T) {
	want := "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a" +
		"615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"
	got := Sum512(nil)
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("SHA3-512(\"\") = %s, want %s", hex.EncodeToString(got[:]), want)
	}
}

func TestShakeDeterministicAndLengthFlexible(t *testing.T) {
	a := Shake128([]byte("abc"), 32)
	b := Shake128([]byte("abc"), 32)
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Fatal("Shake128 not deterministic")
	}
	short := Shake128([]byte("abc"), 16)
	if hex.EncodeToString(short) != hex.EncodeToString(a[:16]) {
		t.Fatal("Shake128 output is not a prefix-stable XOF")
	}
	long256 := Shake256([]byte("abc"), 64)
	if len(long256) != 64 {
		t.Fatalf("Shake256 length = %d, want 64", len(long256))
	}
}

func TestCShakeEmptyCustomizationMatchesShake(t *testing.T) {
	got := CShake128([]byte("abc"), nil, nil, 32)
	want := Shake128([]byte("abc"), 32)
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Fatal("cSHAKE with empty N/S must equal plain SHAKE")
	}
}

func TestCShakeCustomizationChangesOutput(t *testing.T) {
	a := CShake256([]byte("data"), []byte("RHX"), nil, 32)
	b := CShake256([]byte("data"), []byte("HBA"), nil, 32)
	if hex.EncodeToString(a) == hex.EncodeToString(b) {
		t.Fatal("different function-name strings produced identical cSHAKE output")
	}
	c := CShake256([]byte("data"), []byte("RHX"), []byte("tweak"), 32)
	if hex.EncodeToString(a) == hex.EncodeToString(c) {
		t.Fatal("different customization strings produced identical cSHAKE output")
	}
}

func TestCShake512Extension(t *testing.T) {
	out := CShake512([]byte("msg"), []byte("RHX"), nil, 96)
	if len(out) != 96 {
		t.Fatalf("CShake512 length = %d, want 96", len(out))
	}
	other := CShake512([]byte("msg"), []byte("HBA"), nil, 96)
	if hex.EncodeToString(out) == hex.EncodeToString(other) {
		t.Fatal("CShake512 ignored the function-name string")
	}
}

func TestKMACDeterministicAndKeyed(t *testing.T) {
	key := []byte("kmac-key-material")
	msg := []byte("authenticate me")

	t1 := KMAC256(key, msg, nil, 32)
	t2 := KMAC256(key, msg, nil, 32)
	if hex.EncodeToString(t1) != hex.EncodeToString(t2) {
		t.Fatal("KMAC256 not deterministic")
	}

	t3 := KMAC256([]byte("different-key"), msg, nil, 32)
	if hex.EncodeToString(t1) == hex.EncodeToString(t3) {
		t.Fatal("KMAC256 output did not change with a different key")
	}

	t512 := KMAC512(key, msg, nil, 64)
	if len(t512) != 64 {
		t.Fatalf("KMAC512 length = %d, want 64", len(t512))
	}
	t512b := KMAC512([]byte("different-key"), msg, nil, 64)
	if hex.EncodeToString(t512) == hex.EncodeToString(t512b) {
		t.Fatal("KMAC512 output did not change with a different key")
	}

	t128 := KMAC128(key, msg, []byte("context"), 32)
	t128b := KMAC128(key, msg, []byte("other-context"), 32)
	if hex.EncodeToString(t128) == hex.EncodeToString(t128b) {
		t.Fatal("KMAC128 output did not change with a different customization string")
	}
}

func TestEncodeHelpers(t *testing.T) {
	if got := leftEncode(0); hex.EncodeToString(got) != "0100" {
		t.Fatalf("leftEncode(0) = %x", got)
	}
	if got := leftEncode(256); hex.EncodeToString(got) != "020100" {
		t.Fatalf("leftEncode(256) = %x", got)
	}
	if got := rightEncode(0); hex.EncodeToString(got) != "0001" {
		t.Fatalf("rightEncode(0) = %x", got)
	}
	if got := rightEncode(256); hex.EncodeToString(got) != "010002" {
		t.Fatalf("rightEncode(256) = %x", got)
	}
}
