package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrDecryption is returned whenever a wire string cannot be opened: tampered
// ciphertext, a wrong secret, a truncated nonce, or input that was never
// produced by [EncryptAES]. Callers must not be able to tell these apart.
var ErrDecryption = errors.New("decryption failed")

// ErrEmptySecret is returned when the caller provides no key material at all.
var ErrEmptySecret = errors.New("empty secret")

// EncryptAES seals plaintext under secret and returns a URL-safe base64 wire
// string. A fresh random nonce is generated per call and prepended to the
// ciphertext, so encrypting the same plaintext twice yields different output.
func EncryptAES(plaintext string, secret []byte) (string, error) {
	aead, err := newAEAD(secret)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("nonce generation: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// DecryptAES opens a wire string produced by [EncryptAES] with the same
// secret. Any failure, at any stage, returns [ErrDecryption].
func DecryptAES(wire string, secret []byte) (string, error) {
	aead, err := newAEAD(secret)
	if err != nil {
		return "", err
	}

	raw, err := base64.RawURLEncoding.DecodeString(wire)
	if err != nil {
		return "", ErrDecryption
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrDecryption
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}

func newAEAD(secret []byte) (cipher.AEAD, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	key := sha256.Sum256(secret)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("cipher init: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("gcm init: %w", err)
	}

	return aead, nil
}
