package crypto

import "errors"

var (
	// ErrMalformedCiphertext is returned when a payload does not have the
	// syntactic shape of the requested scheme.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrCryptoDecrypt is returned when a well-formed payload fails to
	// decrypt. With these schemes this is how a wrong secret shows up.
	ErrCryptoDecrypt = errors.New("decryption failed")

	// ErrEmptySecret is returned when no secret is given.
	ErrEmptySecret = errors.New("empty secret")

	// ErrEmptyPlaintext is returned by the XOR scheme, whose empty payload
	// is not decodable.
	ErrEmptyPlaintext = errors.New("empty plaintext")

	// ErrUnknownScheme is returned for a scheme tag that is not supported.
	ErrUnknownScheme = errors.New("unknown cipher scheme")
)
