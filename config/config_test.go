package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ytparse.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, "sanitizer_rules: []\n")
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.RateLimit.EventsPerSecond != 0.5 || f.RateLimit.Burst != 4 {
		t.Errorf("unexpected defaults: %+v", f.RateLimit)
	}
}

func TestSanitizerExtendsDefaultRules(t *testing.T) {
	path := writeTempConfig(t, `
sanitizer_rules:
  - name: strip-beta
    from: "Beta"
    to: ""
`)
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.Sanitizer()
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Sanitize("videoBetaRenderer"); got != "Video" {
		t.Errorf("Sanitize(videoBetaRenderer) = %q, want Video", got)
	}
}

func TestSanitizerRejectsInvalidRegexp(t *testing.T) {
	path := writeTempConfig(t, `
sanitizer_rules:
  - name: broken
    from: "("
    to: ""
`)
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Sanitizer(); err == nil {
		t.Error("expected an error from an invalid regexp rule")
	}
}

func TestLimiterFallsBackOnZeroValues(t *testing.T) {
	var f File
	l := f.Limiter()
	if l.Burst() != 4 {
		t.Errorf("Burst() = %d, want 4", l.Burst())
	}
}
