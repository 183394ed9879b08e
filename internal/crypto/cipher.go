package crypto

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-bridge/models"
)

// symmetricCipher is the default [SymmetricCipher].
type symmetricCipher struct {
	deterministicAES bool
}

// NewSymmetricCipher returns a [SymmetricCipher] sealing AES payloads with
// a random IV.
func NewSymmetricCipher() SymmetricCipher {
	return &symmetricCipher{}
}

// NewDeterministicCipher returns a [SymmetricCipher] sealing AES payloads
// with the IV derived from the secret, as browser clients do.
func NewDeterministicCipher() SymmetricCipher {
	return &symmetricCipher{deterministicAES: true}
}

func (c *symmetricCipher) Seal(scheme models.Scheme, plaintext, secret string) (string, error) {
	switch scheme {
	case models.SchemeAES:
		if c.deterministicAES {
			return EncryptAESDeterministic(plaintext, secret)
		}
		return EncryptAES(plaintext, secret)
	case models.SchemeXOR:
		return EncryptXOR(plaintext, secret)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

func (c *symmetricCipher) Open(scheme models.Scheme, payload, secret string) (string, error) {
	switch scheme {
	case models.SchemeAES:
		return DecryptAES(payload, secret)
	case models.SchemeXOR:
		return DecryptXOR(payload, secret)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

func (c *symmetricCipher) Hash(value string) string {
	return HashString(value)
}

// DetectScheme guesses the scheme of an untagged payload from its shape:
// comma-separated without ":" is XOR, anything with ":" is AES.
func DetectScheme(payload string) (models.Scheme, error) {
	switch {
	case !strings.Contains(payload, aesSeparator) && strings.Contains(payload, xorSeparator):
		return models.SchemeXOR, nil
	case strings.Contains(payload, aesSeparator):
		return models.SchemeAES, nil
	default:
		return "", fmt.Errorf("%w: unknown payload shape", ErrMalformedCiphertext)
	}
}

// ValidatePayload checks that payload has the syntactic shape of scheme
// without decrypting it.
func ValidatePayload(scheme models.Scheme, payload string) error {
	switch scheme {
	case models.SchemeAES:
		ivPart, ctPart, found := strings.Cut(payload, aesSeparator)
		if !found || ivPart == "" || ctPart == "" {
			return fmt.Errorf("%w: expected iv:ciphertext", ErrMalformedCiphertext)
		}
		return nil
	case models.SchemeXOR:
		if strings.TrimSpace(payload) == "" || strings.Contains(payload, aesSeparator) {
			return fmt.Errorf("%w: expected comma-separated bytes", ErrMalformedCiphertext)
		}
		for _, part := range strings.Split(payload, xorSeparator) {
			if !isDecimalByte(strings.TrimSpace(part)) {
				return fmt.Errorf("%w: expected comma-separated bytes", ErrMalformedCiphertext)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

func isDecimalByte(s string) bool {
	if s == "" || len(s) > 3 {
		return false
	}
	v := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		v = v*10 + int(r-'0')
	}
	return v <= 255
}
