// Package token generates confirmation tokens for subscription flows.
package token

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// Length is the number of characters in a confirmation token.
	Length = 25
	// alphabet is the set of characters tokens are drawn from.
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Issuer produces unguessable confirmation tokens.
// The zero value is not usable; construct with NewIssuer.
type Issuer struct {
	reader io.Reader
	length int
}

// Option customizes an Issuer.
type Option func(*Issuer)

// WithReader overrides the entropy source. Intended for tests.
func WithReader(r io.Reader) Option {
	return func(i *Issuer) {
		i.reader = r
	}
}

// NewIssuer creates an Issuer backed by the OS entropy source.
func NewIssuer(opts ...Option) *Issuer {
	i := &Issuer{
		reader: rand.Reader,
		length: Length,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Generate returns a new token drawn uniformly from the alphabet.
// Uniqueness is enforced by the store, not here; the token only needs
// to be infeasible to guess by enumeration.
func (i *Issuer) Generate() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, i.length)
	for n := range b {
		idx, err := rand.Int(i.reader, max)
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}
		b[n] = alphabet[idx.Int64()]
	}
	return string(b), nil
}
