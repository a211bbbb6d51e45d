package rhx

import (
	"github.com/redeaux-corp/rhxcore/internal/aesprim"
	"github.com/redeaux-corp/rhxcore/internal/schedule"
	"github.com/redeaux-corp/rhxcore/internal/zeroize"
)

// BlockSize is the cipher block size in bytes, fixed at 128 bits for every
// variant.
const BlockSize = aesprim.BlockSize

// CipherState holds an initialized cipher's forward and equivalent-inverse
// round-key schedules. It must be created with Initialize and released with
// Dispose once no longer needed.
type CipherState struct {
	variant CipherVariant
	fwd     [][16]byte
	inv     [][16]byte
	ready   bool
}

// Initialize derives a cipher state from a user key for the given variant.
// info is an optional domain-separation tweak folded into RHX's KDF-driven
// schedule; it is ignored for the standard AES variants, which use the
// FIPS-197 key expansion instead.
func Initialize(variant CipherVariant, key, info []byte) (*CipherState, error) {
	if len(key) != variant.KeySize() {
		return nil, ErrInvalidKeyLength
	}

	cs := &CipherState{variant: variant}
	switch variant {
	case AES128, AES256:
		fwd, rounds := schedule.AESForward(key)
		cs.fwd = fwd
		cs.inv = schedule.EquivalentInverseSchedule(fwd, rounds)
	case RHX256, RHX512:
		var exp schedule.RHXExpander = schedule.CShakeExpander{}
		fwd, inv := schedule.RHXForward(exp, key, info, variant.Rounds())
		cs.fwd = fwd
		cs.inv = inv
	default:
		return nil, ErrInvalidKeyLength
	}
	cs.ready = true
	return cs, nil
}

// Dispose zeroes the cipher state's round-key material. The CipherState
// must not be used afterward.
func (cs *CipherState) Dispose() {
	if cs == nil {
		return
	}
	zeroize.RoundKeys(cs.fwd)
	zeroize.RoundKeys(cs.inv)
	cs.ready = false
}

func (cs *CipherState) encryptBlock(block *[16]byte) error {
	if cs == nil || !cs.ready {
		return ErrStateMisuse
	}
	aesprim.EncryptBlock(block, cs.fwd, cs.variant.Rounds())
	return nil
}

func (cs *CipherState) decryptBlock(block *[16]byte) error {
	if cs == nil || !cs.ready {
		return ErrStateMisuse
	}
	aesprim.DecryptBlock(block, cs.inv, cs.variant.Rounds())
	return nil
}
