package models

// Scheme names the symmetric scheme a ciphertext payload was produced with.
type Scheme string

const (
	// SchemeAES is AES-256-CBC keyed by SHA-256(secret), rendered as
	// hex(iv) + ":" + hex(ciphertext).
	SchemeAES Scheme = "aes"

	// SchemeXOR cycles the secret over the UTF-8 plaintext and renders the
	// bytes as comma-separated decimals. It only obscures the value from
	// casual inspection and is never a security boundary.
	SchemeXOR Scheme = "xor"
)

// IsValid reports whether s is one of the known schemes.
func (s Scheme) IsValid() bool {
	return s == SchemeAES || s == SchemeXOR
}

// KeySource names the session secret a pending payload was encrypted with.
type KeySource string

const (
	// KeySourceSession means the session identifier was used as the secret.
	// This is the only secret an unauthenticated session has.
	KeySourceSession KeySource = "session"

	// KeySourceToken means the session's bearer token was used.
	KeySourceToken KeySource = "token"
)

// Ciphertext is the tagged representation stored with every pending item,
// so decoding never depends on the incidental shape of Payload.
//
// An empty Scheme marks a legacy payload whose scheme has to be sniffed.
type Ciphertext struct {
	Scheme    Scheme    `json:"scheme"`
	KeySource KeySource `json:"keySource"`
	Payload   string    `json:"payload"`
}

// IsTagged reports whether the scheme of c is known without sniffing.
func (c Ciphertext) IsTagged() bool {
	return c.Scheme.IsValid()
}
