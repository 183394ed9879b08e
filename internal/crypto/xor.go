package crypto

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const xorSeparator = ","

// EncryptXOR obfuscates plaintext with token. It offers no confidentiality
// or integrity.
func EncryptXOR(plaintext, token string) (string, error) {
	if token == "" {
		return "", ErrEmptySecret
	}
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}

	key := []byte(token)
	data := []byte(plaintext)

	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = strconv.Itoa(int(b ^ key[i%len(key)]))
	}

	return strings.Join(parts, xorSeparator), nil
}

// DecryptXOR reverses [EncryptXOR].
//
// An empty payload, one containing ":" or any element that is not a decimal
// byte is [ErrMalformedCiphertext]. A result that is not valid UTF-8 is
// [ErrCryptoDecrypt], which is the usual sign of a wrong token.
func DecryptXOR(payload, token string) (string, error) {
	if token == "" {
		return "", ErrEmptySecret
	}
	if strings.TrimSpace(payload) == "" || strings.Contains(payload, aesSeparator) {
		return "", fmt.Errorf("%w: expected comma-separated bytes", ErrMalformedCiphertext)
	}

	key := []byte(token)
	parts := strings.Split(payload, xorSeparator)
	out := make([]byte, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return "", fmt.Errorf("%w: element %d is not a byte", ErrMalformedCiphertext, i)
		}
		out[i] = byte(v) ^ key[i%len(key)]
	}

	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrCryptoDecrypt)
	}

	return string(out), nil
}
