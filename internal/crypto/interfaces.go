package crypto

import "github.com/MKhiriev/go-pass-bridge/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// SymmetricCipher seals and opens credential payloads with one of the
// supported [models.Scheme] values. Implementations are stateless: every call
// is a pure function of its arguments, apart from the random IV of AES.
type SymmetricCipher interface {
	// Seal encrypts plaintext under secret with scheme and returns the
	// wire representation of the payload.
	Seal(scheme models.Scheme, plaintext, secret string) (string, error)

	// Open decrypts payload under secret. The scheme must be known; use
	// [DetectScheme] for untagged payloads.
	Open(scheme models.Scheme, payload, secret string) (string, error)

	// Hash returns the SHA-256 hex digest of value.
	Hash(value string) string
}
