package store

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// envelopeVersion is the current sealed file format.
const envelopeVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or a sealed file has
// been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted book file")

// envelope is the on-disk JSON structure of a sealed book file.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// kdfParams are the scrypt cost parameters used for new envelopes.
type kdfParams struct{ N, R, P int }

func defaultKDFParams() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// Upper bounds on stored scrypt parameters, checked before any key derivation.
const (
	maxScryptN      = 1 << 20
	maxScryptRP     = 1 << 30
	maxScryptMemory = 1 << 30 // bytes, 128*N*r
)

// valid reports whether k is a cost scrypt accepts and that stays within the bounds above.
func (k kdfParams) valid() bool {
	if k.N < 2 || k.N > maxScryptN || k.N&(k.N-1) != 0 {
		return false
	}
	if k.R < 1 || k.P < 1 || k.R*k.P >= maxScryptRP {
		return false
	}
	return 128*k.N*k.R <= maxScryptMemory
}

// seal derives a key from passphrase and encrypts raw. label is bound as associated
// data so a contacts envelope cannot be swapped in for a trips envelope.
func seal(passphrase, label string, raw []byte, kdf kdfParams) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return json.Marshal(envelope{
		V:      envelopeVersion,
		Salt:   salt,
		N:      kdf.N,
		R:      kdf.R,
		P:      kdf.P,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, raw, []byte(label)),
	})
}

// open decrypts an envelope produced by seal with the same label.
func open(passphrase, label string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.V > envelopeVersion {
		return nil, fmt.Errorf("unsupported book file version %d", env.V)
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, ErrWrongPassphrase
	}
	if !(kdfParams{N: env.N, R: env.R, P: env.P}).valid() {
		return nil, ErrWrongPassphrase
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	raw, err := aead.Open(nil, env.Nonce, env.Cipher, []byte(label))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return raw, nil
}

// wipe overwrites b with zeros.
func wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
