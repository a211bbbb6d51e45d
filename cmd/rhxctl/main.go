// Command rhxctl is a self-check harness for the rhx and hba packages. It
// mirrors the teacher's own CLI banner-and-flag style
// (Redeaux-Corporation-eamsa512/main.go) but drives the real AES/RHX/HBA
// implementation instead of that file's broken ad-hoc validation routines.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/redeaux-corp/rhxcore"
	"github.com/redeaux-corp/rhxcore/hba"
)

func main() {
	selfTest := flag.Bool("self-test", false, "run the AES/RHX/HBA known-answer and round-trip self-checks")
	variantName := flag.String("variant", "rhx256", "cipher variant for -demo: aes128, aes256, rhx256, rhx512")
	demo := flag.Bool("demo", false, "seal and open a sample message under the chosen variant")
	flag.Parse()

	switch {
	case *selfTest:
		if err := runSelfTest(); err != nil {
			fmt.Fprintln(os.Stderr, "rhxctl: self-test failed:", err)
			os.Exit(1)
		}
		fmt.Println("rhxctl: all self-checks passed")
	case *demo:
		if err := runDemo(*variantName); err != nil {
			fmt.Fprintln(os.Stderr, "rhxctl: demo failed:", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
	}
}

func parseVariant(name string) (rhx.CipherVariant, error) {
	switch name {
	case "aes128":
		return rhx.AES128, nil
	case "aes256":
		return rhx.AES256, nil
	case "rhx256":
		return rhx.RHX256, nil
	case "rhx512":
		return rhx.RHX512, nil
	default:
		return 0, errors.Errorf("unknown variant %q", name)
	}
}

func runDemo(variantName string) error {
	variant, err := parseVariant(variantName)
	if err != nil {
		return errors.Wrap(err, "rhxctl")
	}

	key := make([]byte, variant.KeySize())
	nonce := make([]byte, rhx.BlockSize)
	if _, err := rand.Read(key); err != nil {
		return errors.Wrap(err, "generating key")
	}
	if _, err := rand.Read(nonce); err != nil {
		return errors.Wrap(err, "generating nonce")
	}

	st, err := hba.Initialize(variant, key, nonce, nil)
	if err != nil {
		return errors.Wrap(err, "initializing HBA state")
	}
	defer st.Dispose()

	plaintext := []byte("rhxctl demo message")
	sealed, err := st.Seal(plaintext, []byte("rhxctl-demo"))
	if err != nil {
		return errors.Wrap(err, "sealing")
	}

	verifier, err := hba.Initialize(variant, key, nonce, nil)
	if err != nil {
		return errors.Wrap(err, "initializing verifier state")
	}
	defer verifier.Dispose()

	opened, err := verifier.Open(sealed, []byte("rhxctl-demo"))
	if err != nil {
		return errors.Wrap(err, "opening")
	}

	fmt.Printf("variant:   %s\n", variant)
	fmt.Printf("sealed:    %x\n", sealed)
	fmt.Printf("recovered: %q\n", opened)
	return nil
}

func runSelfTest() error {
	if err := checkAESKAT(); err != nil {
		return errors.Wrap(err, "AES known-answer check")
	}
	if err := checkRHXRoundTrip(); err != nil {
		return errors.Wrap(err, "RHX round-trip check")
	}
	if err := checkHBARoundTrip(); err != nil {
		return errors.Wrap(err, "HBA round-trip check")
	}
	return nil
}

// checkAESKAT reruns the FIPS-197 Appendix B single-block vector outside of
// the test binary, for operators who want a quick compiled-binary check.
func checkAESKAT() error {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext := mustHex("3243f6a8885a308d313198a2e0370734")
	want := mustHex("3925841d02dc09fbdc118597196a0b32")

	cs, err := rhx.Initialize(rhx.AES128, key, nil)
	if err != nil {
		return err
	}
	defer cs.Dispose()

	got := make([]byte, rhx.BlockSize)
	if err := cs.ECBEncrypt(got, plaintext); err != nil {
		return err
	}
	if string(got) != string(want) {
		return errors.Errorf("AES-128 ECB = %x, want %x", got, want)
	}
	return nil
}

func checkRHXRoundTrip() error {
	for _, variant := range []rhx.CipherVariant{rhx.RHX256, rhx.RHX512} {
		key := make([]byte, variant.KeySize())
		for i := range key {
			key[i] = byte(i)
		}
		cs, err := rhx.Initialize(variant, key, []byte("rhxctl-selftest"))
		if err != nil {
			return err
		}
		plaintext := make([]byte, rhx.BlockSize*2)
		iv := make([]byte, rhx.BlockSize)
		ciphertext := make([]byte, len(plaintext))
		if err := cs.CTRXOR(ciphertext, plaintext, iv); err != nil {
			cs.Dispose()
			return err
		}
		recovered := make([]byte, len(plaintext))
		if err := cs.CTRXOR(recovered, ciphertext, iv); err != nil {
			cs.Dispose()
			return err
		}
		cs.Dispose()
		if string(recovered) != string(plaintext) {
			return errors.Errorf("%s: CTR round trip mismatch", variant)
		}
	}
	return nil
}

func checkHBARoundTrip() error {
	key := make([]byte, 32)
	nonce := make([]byte, 16)
	st, err := hba.Initialize(rhx.RHX256, key, nonce, nil)
	if err != nil {
		return err
	}
	defer st.Dispose()

	sealed, err := st.Seal([]byte("self-test payload"), []byte("ad"))
	if err != nil {
		return err
	}

	verifier, err := hba.Initialize(rhx.RHX256, key, nonce, nil)
	if err != nil {
		return err
	}
	defer verifier.Dispose()

	if _, err := verifier.Open(sealed, []byte("ad")); err != nil {
		return err
	}

	tampered := append([]byte{}, sealed...)
	tampered[0] ^= 0xff
	tamperVerifier, err := hba.Initialize(rhx.RHX256, key, nonce, nil)
	if err != nil {
		return err
	}
	defer tamperVerifier.Dispose()
	if _, err := tamperVerifier.Open(tampered, []byte("ad")); err == nil {
		return errors.New("tampered ciphertext was accepted")
	}
	return nil
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
