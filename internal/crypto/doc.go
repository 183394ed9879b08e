// Package crypto implements the symmetric schemes used to hand credentials
// from the edge device to the vault.
//
// The AES scheme derives a 256-bit key as SHA-256(secret) and encrypts with
// CBC and PKCS#7 padding. Its wire form is hex(iv) + ":" + hex(ciphertext);
// the ciphertext half is also accepted in base64 on decrypt.
//
// The XOR scheme cycles the secret's UTF-8 bytes over the plaintext's UTF-8
// bytes and renders the result as comma-separated decimals. It is
// obfuscation for edge devices that cannot run AES, nothing more, and its
// payloads are always re-encrypted with AES during reconciliation.
package crypto
