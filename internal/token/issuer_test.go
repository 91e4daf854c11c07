package token

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	issuer := NewIssuer()

	tok, err := issuer.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tok) != Length {
		t.Errorf("expected token length %d, got %d", Length, len(tok))
	}
}

func TestGenerateAlphabet(t *testing.T) {
	issuer := NewIssuer()

	tok, err := issuer.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range tok {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("token contains character outside alphabet: %q", c)
		}
	}
}

func TestGenerateDistinct(t *testing.T) {
	issuer := NewIssuer()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := issuer.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[tok] {
			t.Fatalf("duplicate token generated: %s", tok)
		}
		seen[tok] = true
	}
}
