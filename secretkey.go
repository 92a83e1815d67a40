package rc5

import (
	"crypto/rand"
	"strconv"

	"github.com/codahale/rc5/internal/mem"
)

// MaxKeySize is the largest secret key the cipher accepts, in bytes.
const MaxKeySize = 256

// KeySizeError is returned when a secret key is longer than MaxKeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc5: invalid secret key length " + strconv.Itoa(int(k))
}

// A SecretKey owns an exclusive copy of a variable-length cipher key.
//
// Destroy wipes the backing memory; call it once the key is no longer needed,
// normally right after key expansion. The constructors in this package manage
// their own copy, so SecretKey only needs to be handled directly when the key
// outlives a single cipher construction.
type SecretKey struct {
	k []byte
}

// NewSecretKey copies b into a new SecretKey. Keys longer than MaxKeySize
// bytes are rejected; the empty key is valid.
func NewSecretKey(b []byte) (*SecretKey, error) {
	if len(b) > MaxKeySize {
		return nil, KeySizeError(len(b))
	}
	return &SecretKey{k: append([]byte(nil), b...)}, nil
}

// RandomSecretKey returns a SecretKey of n random bytes.
func RandomSecretKey(n int) (*SecretKey, error) {
	if n < 0 || n > MaxKeySize {
		return nil, KeySizeError(n)
	}
	k := make([]byte, n)
	_, _ = rand.Read(k)
	return &SecretKey{k: k}, nil
}

// Len returns the key length in bytes.
func (k *SecretKey) Len() int { return len(k.k) }

// Destroy wipes the key's backing memory. The key must not be used afterward.
func (k *SecretKey) Destroy() { mem.Wipe(k.k) }
