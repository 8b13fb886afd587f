package streamdata

import (
	"testing"
	"time"

	"github.com/bittoy/ytparse/rawnode"
)

func decode(t *testing.T, doc string) rawnode.Raw {
	t.Helper()
	v, err := rawnode.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestProjectSharesNonceAcrossFormats(t *testing.T) {
	body := decode(t, `{
		"formats": [
			{"itag": 18, "signatureCipher": "s=a"}
		],
		"adaptiveFormats": [
			{"itag": 137, "signatureCipher": "s=b"},
			{"itag": 140, "cipher": "s=c"}
		]
	}`)

	s := Project(body)

	if len(s.Formats) != 1 || len(s.AdaptiveFormats) != 2 {
		t.Fatalf("unexpected shape: %+v", s)
	}
	nonce := s.Formats[0].Nonce
	if nonce == "" {
		t.Fatal("expected a derived nonce")
	}
	for _, f := range s.AdaptiveFormats {
		if f.Nonce != nonce {
			t.Fatalf("expected every format to share one nonce, got %q and %q", nonce, f.Nonce)
		}
	}
}

func TestProjectFormatWithoutCipherHasNoNonce(t *testing.T) {
	body := decode(t, `{"formats": [{"itag": 18, "url": "https://example.invalid/x"}]}`)

	s := Project(body)

	if len(s.Formats) != 1 {
		t.Fatalf("expected 1 format, got %d", len(s.Formats))
	}
	if s.Formats[0].Nonce != "" {
		t.Fatalf("expected no nonce for a format with no cipher, got %q", s.Formats[0].Nonce)
	}
	if s.Formats[0].URL != "https://example.invalid/x" {
		t.Fatalf("unexpected url: %q", s.Formats[0].URL)
	}
}

func TestProjectExpiry(t *testing.T) {
	before := time.Now()
	body := decode(t, `{"expiresInSeconds": 100}`)
	s := Project(body)
	if !s.ExpiresAt.After(before) {
		t.Fatalf("expected expiry to be in the future relative to %v, got %v", before, s.ExpiresAt)
	}
}

func TestProjectExpiryNumericString(t *testing.T) {
	// The real InnerTube shape sends expiresInSeconds as a numeric string
	// (spec.md §9), not a JSON number.
	before := time.Now()
	body := decode(t, `{"expiresInSeconds": "21540"}`)
	s := Project(body)
	want := before.Add(21540 * time.Second)
	if diff := s.ExpiresAt.Sub(want); diff < -time.Second || diff > time.Second {
		t.Fatalf("expected expiry around %v, got %v", want, s.ExpiresAt)
	}
}
