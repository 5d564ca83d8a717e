//go:build darwin

package internal

import (
	"os"
	"os/exec"
	"strings"
)

// detectSystemLocale returns the locale string on macOS: environment
// variables first (terminal overrides), then the AppleLocale system
// preference. Returns empty when nothing usable is found.
func detectSystemLocale() string {
	for _, envVar := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		locale := os.Getenv(envVar)
		if locale != "" && locale != "C" && locale != "POSIX" {
			return locale
		}
	}

	out, err := exec.Command("defaults", "read", "-g", "AppleLocale").Output()
	if err != nil {
		return ""
	}

	// AppleLocale is already in "pl_PL" form.
	return strings.TrimSpace(string(out))
}
