// Package streamdata projects the streamingData section (spec.md §4.G)
// into a typed descriptor: absolute expiry, and format/adaptive-format
// lists that share one per-response cipher-nonce cache so a nonce is
// derived once per response rather than once per format, per §6's ambient
// note.
package streamdata

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"sync"
	"time"

	"github.com/bittoy/ytparse/rawnode"
)

// NonceCache lazily derives one nonce per response and hands the same
// value to every format that needs a cipher nonce. Not safe for use beyond
// one response's streamingData projection.
type NonceCache struct {
	once  sync.Once
	nonce string
}

// Nonce returns the cache's nonce, deriving it on first call.
func (c *NonceCache) Nonce() string {
	c.once.Do(func() {
		var b [9]byte
		_, _ = rand.Read(b[:])
		c.nonce = base64.RawURLEncoding.EncodeToString(b[:])
	})
	return c.nonce
}

// Format is one entry of formats or adaptiveFormats.
type Format struct {
	Itag      int
	MimeType  string
	Bitrate   int64
	URL       string
	Cipher    string
	Nonce     string
}

// Streaming is the typed projection of the streamingData section.
type Streaming struct {
	ExpiresAt       time.Time
	Formats         []Format
	AdaptiveFormats []Format
}

// Project builds a Streaming from streamingData's raw body. A missing or
// malformed field degrades to its zero value rather than failing the
// projection, matching this module's tolerant-by-default stance.
func Project(body rawnode.Raw) *Streaming {
	s := &Streaming{}
	if v, ok := rawnode.Get(body, "expiresInSeconds"); ok {
		if n, ok := parseSeconds(v); ok {
			s.ExpiresAt = time.Now().Add(time.Duration(n) * time.Second)
		}
	}
	cache := &NonceCache{}
	if v, ok := rawnode.Get(body, "formats"); ok {
		s.Formats = projectFormats(v, cache)
	}
	if v, ok := rawnode.Get(body, "adaptiveFormats"); ok {
		s.AdaptiveFormats = projectFormats(v, cache)
	}
	return s
}

// parseSeconds reads v as an int64 whether it arrived as a JSON number or,
// per spec.md §9, as a numeric string ("21540") — the form the upstream
// client actually sends expiresInSeconds in.
func parseSeconds(v rawnode.Raw) (int64, bool) {
	if s, ok := rawnode.AsString(v); ok {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	n, ok := rawnode.AsNumber(v)
	if !ok {
		return 0, false
	}
	return int64(n), true
}

func projectFormats(raw rawnode.Raw, cache *NonceCache) []Format {
	list, ok := rawnode.AsList(raw)
	if !ok {
		return nil
	}
	out := make([]Format, 0, len(list))
	for _, item := range list {
		out = append(out, projectFormat(item, cache))
	}
	return out
}

func projectFormat(raw rawnode.Raw, cache *NonceCache) Format {
	var f Format
	if v, ok := rawnode.Get(raw, "itag"); ok {
		if n, ok := rawnode.AsNumber(v); ok {
			f.Itag = int(n)
		}
	}
	if v, ok := rawnode.Get(raw, "mimeType"); ok {
		f.MimeType, _ = rawnode.AsString(v)
	}
	if v, ok := rawnode.Get(raw, "bitrate"); ok {
		if n, ok := rawnode.AsNumber(v); ok {
			f.Bitrate = int64(n)
		}
	}
	if v, ok := rawnode.Get(raw, "url"); ok {
		f.URL, _ = rawnode.AsString(v)
	}
	cipher, hasCipher := rawnode.Get(raw, "signatureCipher")
	if !hasCipher {
		cipher, hasCipher = rawnode.Get(raw, "cipher")
	}
	if hasCipher {
		f.Cipher, _ = rawnode.AsString(cipher)
		f.Nonce = cache.Nonce()
	}
	return f
}
