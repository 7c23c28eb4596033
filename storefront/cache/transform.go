package cache

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"github.com/klauspost/compress/s2"
	"golang.org/x/crypto/nacl/secretbox"
)

// compressThreshold is the serialized size above which compression applies.
const compressThreshold = 1024

const nonceSize = 24

var errDecrypt = errors.New("cache: payload could not be decrypted")

type codec struct {
	key [32]byte
}

// newCodec derives the secretbox key from secret. Without a secret a random
// per-process key is used, so encrypted entries do not survive a restart.
func newCodec(secret string) codec {
	var c codec
	if secret != "" {
		c.key = sha256.Sum256([]byte(secret))
		return c
	}
	if _, err := io.ReadFull(rand.Reader, c.key[:]); err != nil {
		c.key = sha256.Sum256([]byte(keyPrefix))
	}
	return c
}

func (c codec) encode(raw []byte, compress, encrypt bool) (data []byte, compressed, encrypted bool, err error) {
	data = raw
	if compress && len(data) > compressThreshold {
		data = s2.Encode(nil, data)
		compressed = true
	}
	if encrypt {
		var nonce [nonceSize]byte
		if _, err = io.ReadFull(rand.Reader, nonce[:]); err != nil {
			return nil, false, false, err
		}
		data = secretbox.Seal(nonce[:], data, &nonce, &c.key)
		encrypted = true
	}
	return data, compressed, encrypted, nil
}

// decode reverses encryption first, then compression.
func (c codec) decode(e Entry) ([]byte, error) {
	data := e.Data
	if e.Encrypted {
		if len(data) < nonceSize {
			return nil, errDecrypt
		}
		var nonce [nonceSize]byte
		copy(nonce[:], data[:nonceSize])
		out, ok := secretbox.Open(nil, data[nonceSize:], &nonce, &c.key)
		if !ok {
			return nil, errDecrypt
		}
		data = out
	}
	if e.Compressed {
		return s2.Decode(nil, data)
	}
	return data, nil
}
