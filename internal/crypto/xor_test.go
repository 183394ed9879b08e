package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXOR_RoundTrip(t *testing.T) {
	for _, tt := range roundTripCases {
		if tt.plaintext == "" {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			payload, err := EncryptXOR(tt.plaintext, tt.secret)
			require.NoError(t, err)

			got, err := DecryptXOR(payload, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestEncryptXOR_KnownVector(t *testing.T) {
	// 'a'^'k'=10, 'b'^'e'=7, 'c'^'k'=8
	payload, err := EncryptXOR("abc", "ke")
	require.NoError(t, err)
	assert.Equal(t, "10,7,8", payload)
}

func TestEncryptXOR_Errors(t *testing.T) {
	_, err := EncryptXOR("abc", "")
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = EncryptXOR("", "token")
	assert.ErrorIs(t, err, ErrEmptyPlaintext)
}

func TestDecryptXOR_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"not a number", "1,a,3"},
		{"negative", "1,-2,3"},
		{"out of range", "1,256"},
		{"trailing comma", "1,2,"},
		{"aes shaped", "0011:2233"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptXOR(tt.payload, "token")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedCiphertext)
		})
	}
}

func TestDecryptXOR_ToleratesSpaces(t *testing.T) {
	got, err := DecryptXOR("10, 7, 8", "ke")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestHashString(t *testing.T) {
	// sha256("1234")
	assert.Equal(t, "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4", HashString("1234"))
	assert.Equal(t, HashString("pin"), HashString("pin"))
	assert.NotEqual(t, HashString("pin"), HashString("pin2"))
}
