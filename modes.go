package rhx

import "github.com/redeaux-corp/rhxcore/internal/byteutil"

func checkBlockAligned(in, out []byte) error {
	if len(in) == 0 || len(in)%BlockSize != 0 {
		return ErrBufferMismatch
	}
	if len(out) != len(in) {
		return ErrBufferMismatch
	}
	return nil
}

// ECBEncrypt encrypts src into dst one block at a time, independently.
// ECB leaks block-level plaintext equality and should only be used where
// the spec calls for it directly (e.g. as a component of another
// construction); callers wanting confidentiality over multi-block messages
// should use CBCEncrypt or CTRXOR instead.
func (cs *CipherState) ECBEncrypt(dst, src []byte) error {
	if err := checkBlockAligned(src, dst); err != nil {
		return err
	}
	var block [16]byte
	for off := 0; off < len(src); off += BlockSize {
		copy(block[:], src[off:off+BlockSize])
		if err := cs.encryptBlock(&block); err != nil {
			return err
		}
		copy(dst[off:off+BlockSize], block[:])
	}
	return nil
}

// ECBDecrypt decrypts src into dst one block at a time, independently.
func (cs *CipherState) ECBDecrypt(dst, src []byte) error {
	if err := checkBlockAligned(src, dst); err != nil {
		return err
	}
	var block [16]byte
	for off := 0; off < len(src); off += BlockSize {
		copy(block[:], src[off:off+BlockSize])
		if err := cs.decryptBlock(&block); err != nil {
			return err
		}
		copy(dst[off:off+BlockSize], block[:])
	}
	return nil
}

// CBCEncrypt encrypts src into dst under CBC mode with the given IV. src
// must be a whole number of blocks (callers are responsible for padding).
func (cs *CipherState) CBCEncrypt(dst, src, iv []byte) error {
	if len(iv) != BlockSize {
		return ErrInvalidNonceLength
	}
	if err := checkBlockAligned(src, dst); err != nil {
		return err
	}
	var prev, block [16]byte
	copy(prev[:], iv)
	for off := 0; off < len(src); off += BlockSize {
		copy(block[:], src[off:off+BlockSize])
		for i := range block {
			block[i] ^= prev[i]
		}
		if err := cs.encryptBlock(&block); err != nil {
			return err
		}
		copy(dst[off:off+BlockSize], block[:])
		prev = block
	}
	return nil
}

// CBCDecrypt decrypts src into dst under CBC mode with the given IV.
func (cs *CipherState) CBCDecrypt(dst, src, iv []byte) error {
	if len(iv) != BlockSize {
		return ErrInvalidNonceLength
	}
	if err := checkBlockAligned(src, dst); err != nil {
		return err
	}
	var prev, block, cipherBlock [16]byte
	copy(prev[:], iv)
	for off := 0; off < len(src); off += BlockSize {
		copy(block[:], src[off:off+BlockSize])
		cipherBlock = block
		if err := cs.decryptBlock(&block); err != nil {
			return err
		}
		for i := range block {
			block[i] ^= prev[i]
		}
		copy(dst[off:off+BlockSize], block[:])
		prev = cipherBlock
	}
	return nil
}

// CTRXOR encrypts or decrypts src into dst under CTR mode (the operation is
// its own inverse). nonce is the initial 128-bit big-endian counter value;
// src need not be block-aligned. The hba package drives this directly to
// build its AEAD construction.
func (cs *CipherState) CTRXOR(dst, src, nonce []byte) error {
	if len(nonce) != BlockSize {
		return ErrInvalidNonceLength
	}
	if len(dst) != len(src) {
		return ErrBufferMismatch
	}
	var counter, keystream [16]byte
	copy(counter[:], nonce)
	for off := 0; off < len(src); off += BlockSize {
		keystream = counter
		if err := cs.encryptBlock(&keystream); err != nil {
			return err
		}
		n := len(src) - off
		if n > BlockSize {
			n = BlockSize
		}
		for i := 0; i < n; i++ {
			dst[off+i] = src[off+i] ^ keystream[i]
		}
		byteutil.IncrementBE128(&counter)
	}
	return nil
}
