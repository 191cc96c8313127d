// Package release describes the supported WebDriver servers and resolves
// their download URLs.
package release

import (
	"runtime"
	"strings"
)

// SentinelURL is returned when no download URL can be resolved. It is a
// deliberately invalid URL: the pipeline carries it forward and the
// download step fails visibly instead of this package guessing.
const SentinelURL = "xxx"

// Driver describes one supported WebDriver server.
type Driver struct {
	Name    string   // "gecko" or "chrome"
	Archive string   // archive file name inside the work dir
	Binary  string   // binary file name after extraction
	Port    int      // default listening port
	LogArgs []string // fixed logging arguments passed at launch
}

// Gecko and Chrome are the two built-in drivers.
var (
	Gecko = Driver{
		Name:    "gecko",
		Archive: "geckodriver.tgz",
		Binary:  "geckodriver",
		Port:    4444,
		LogArgs: []string{"--log", "fatal"},
	}
	Chrome = Driver{
		Name:    "chrome",
		Archive: "chromedriver.zip",
		Binary:  "chromedriver",
		Port:    9515,
		LogArgs: []string{"--log-level=SEVERE"},
	}
)

// Known lists the built-in drivers in preparation order.
func Known() []Driver {
	return []Driver{Gecko, Chrome}
}

// Lookup returns the driver whose name matches, or false.
func Lookup(name string) (Driver, bool) {
	for _, d := range Known() {
		if d.Name == name {
			return d, true
		}
	}
	return Driver{}, false
}

const geckoURL = "https://github.com/mozilla/geckodriver/releases/download/v0.30.0/geckodriver-v0.30.0-linux64.tar.gz"

// chromePins maps a detected Chrome major version to the pinned driver
// version used to build the download URL. The 113 and 114 rows look
// swapped; they are kept verbatim to match the published pin set.
var chromePins = []struct {
	major  string
	driver string
}{
	{"114", "113.0.5672.63"},
	{"113", "114.0.5735.16"},
	{"112", "112.0.5615.49"},
}

// ResolveURL maps a driver name and a detected browser version string to a
// download URL. Only Linux builds are pinned; any other OS, an unknown
// driver name, or an unmatched browser version yields SentinelURL.
func ResolveURL(name, browserVersion string) string {
	return resolveURL(name, browserVersion, runtime.GOOS)
}

func resolveURL(name, browserVersion, goos string) string {
	if goos != "linux" {
		return SentinelURL
	}
	switch {
	case strings.Contains(name, "gecko"):
		return geckoURL
	case strings.Contains(name, "chrome"):
		for _, pin := range chromePins {
			if strings.Contains(browserVersion, pin.major) {
				return "https://chromedriver.storage.googleapis.com/" + pin.driver + "/chromedriver_linux64.zip"
			}
		}
	}
	return SentinelURL
}
