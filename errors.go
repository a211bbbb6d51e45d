package rhx

import "github.com/pkg/errors"

var (
	// ErrInvalidKeyLength is returned when a key does not match the
	// variant's required KeySize.
	ErrInvalidKeyLength = errors.New("rhx: invalid key length for cipher variant")
	// ErrInvalidNonceLength is returned when a CBC IV or CTR nonce is not
	// exactly BlockSize bytes.
	ErrInvalidNonceLength = errors.New("rhx: invalid nonce or IV length")
	// ErrStateMisuse is returned when a disposed or uninitialized cipher
	// state is used.
	ErrStateMisuse = errors.New("rhx: cipher state disposed or not initialized")
	// ErrBufferMismatch is returned when input/output buffers are not
	// sized correctly for the requested operation.
	ErrBufferMismatch = errors.New("rhx: input/output buffer length mismatch")
)
