// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const aesSeparator = ":"

// deriveKey returns SHA-256(secret), used as the AES-256 key.
func deriveKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// EncryptAES encrypts plaintext under secret with a random IV.
func EncryptAES(plaintext, secret string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("error generating iv: %w", err)
	}

	return encryptAES(plaintext, secret, iv)
}

// EncryptAESDeterministic encrypts plaintext under secret with the IV set to
// the first 16 bytes of SHA-256(secret). Clients without a random source
// produce this form; equal inputs give equal outputs.
func EncryptAESDeterministic(plaintext, secret string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	copy(iv, deriveKey(secret))

	return encryptAES(plaintext, secret, iv)
}

func encryptAES(plaintext, secret string, iv []byte) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return "", fmt.Errorf("error creating aes cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return hex.EncodeToString(iv) + aesSeparator + hex.EncodeToString(out), nil
}

// DecryptAES reverses [EncryptAES] and [EncryptAESDeterministic].
//
// A payload without ":" or with an empty half, a non-hex IV of the wrong
// size or an undecodable ciphertext half is [ErrMalformedCiphertext]. Bad
// block alignment, padding or UTF-8 is [ErrCryptoDecrypt].
func DecryptAES(payload, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	ivPart, ctPart, found := strings.Cut(payload, aesSeparator)
	if !found || ivPart == "" || ctPart == "" {
		return "", fmt.Errorf("%w: expected iv:ciphertext", ErrMalformedCiphertext)
	}

	iv, err := hex.DecodeString(ivPart)
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: invalid iv", ErrMalformedCiphertext)
	}

	ct, err := decodeCipherBytes(ctPart)
	if err != nil {
		return "", err
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not block aligned", ErrCryptoDecrypt)
	}

	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return "", fmt.Errorf("error creating aes cipher: %w", err)
	}

	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ct)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrCryptoDecrypt)
	}

	return string(plain), nil
}

// decodeCipherBytes accepts the hex form produced by this package and the
// base64 form produced by browser clients.
func decodeCipherBytes(s string) ([]byte, error) {
	hexBytes, hexErr := hex.DecodeString(s)
	if hexErr == nil && len(hexBytes)%aes.BlockSize == 0 {
		return hexBytes, nil
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	if hexErr == nil {
		return hexBytes, nil
	}
	return nil, fmt.Errorf("%w: ciphertext is neither hex nor base64", ErrMalformedCiphertext)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padded length", ErrCryptoDecrypt)
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", ErrCryptoDecrypt)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: invalid padding", ErrCryptoDecrypt)
		}
	}

	return data[:len(data)-n], nil
}
