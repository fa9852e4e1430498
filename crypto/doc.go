// Package crypto implements the symmetric cipher used for token wire strings.
//
// Tokens are sealed with AES-256-GCM and emitted as unpadded URL-safe base64 so
// they survive transport in URLs and email bodies without further escaping. The
// caller's secret may be any length; it is reduced to a 256-bit key with
// SHA-256 before use.
//
// # Architecture boundaries
//
// This package knows nothing about token structure. It seals and opens opaque
// strings. All failure detail on the open path collapses into [ErrDecryption]
// so callers cannot leak oracle information about why a ciphertext was
// rejected.
package crypto
