package release

import (
	"strings"
	"testing"
)

func TestResolveURLGecko(t *testing.T) {
	url := resolveURL("gecko", "", "linux")
	if !strings.Contains(url, "geckodriver-v0.30.0-linux64.tar.gz") {
		t.Errorf("unexpected gecko URL: %q", url)
	}

	// Browser version is irrelevant for gecko.
	if got := resolveURL("gecko", "Mozilla Firefox 999", "linux"); got != url {
		t.Errorf("gecko URL changed with version input: %q", got)
	}
}

func TestResolveURLChromePins(t *testing.T) {
	cases := []struct {
		detected string
		want     string
	}{
		{"Google Chrome 114.0.5735.90", "113.0.5672.63"},
		{"Google Chrome 113.0.5672.24", "114.0.5735.16"},
		{"Google Chrome 112.0.5615.12", "112.0.5615.49"},
	}
	for _, tc := range cases {
		url := resolveURL("chrome", tc.detected, "linux")
		if !strings.Contains(url, tc.want) {
			t.Errorf("detected %q: expected driver %s in URL, got %q", tc.detected, tc.want, url)
		}
		if !strings.Contains(url, "chromedriver_linux64.zip") {
			t.Errorf("detected %q: not a linux64 zip URL: %q", tc.detected, url)
		}
	}
}

func TestResolveURLSentinel(t *testing.T) {
	cases := []struct {
		name    string
		version string
		goos    string
	}{
		{"edge", "", "linux"},          // unknown driver name
		{"safari", "16.0", "linux"},    // unknown driver name
		{"", "", "linux"},              // empty name
		{"chrome", "", "linux"},        // no detected version
		{"chrome", "Google Chrome 111.0.5563.64", "linux"}, // unmapped major
		{"gecko", "", "darwin"},        // no non-linux builds pinned
		{"chrome", "Google Chrome 114.0.5735.90", "windows"},
	}
	for _, tc := range cases {
		if got := resolveURL(tc.name, tc.version, tc.goos); got != SentinelURL {
			t.Errorf("resolveURL(%q, %q, %q) = %q, want sentinel", tc.name, tc.version, tc.goos, got)
		}
	}
}

func TestLookup(t *testing.T) {
	g, ok := Lookup("gecko")
	if !ok || g.Binary != "geckodriver" || g.Port != 4444 {
		t.Errorf("gecko lookup = %+v, %v", g, ok)
	}
	c, ok := Lookup("chrome")
	if !ok || c.Binary != "chromedriver" || c.Port != 9515 {
		t.Errorf("chrome lookup = %+v, %v", c, ok)
	}
	if _, ok := Lookup("opera"); ok {
		t.Error("expected lookup miss for opera")
	}
}
