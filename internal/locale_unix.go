//go:build !windows && !darwin

package internal

import "os"

// detectSystemLocale returns the locale string on Unix-like systems. For
// currency purposes LC_MONETARY is the most specific variable, then LC_ALL
// and LANG. Returns empty when nothing usable is set.
func detectSystemLocale() string {
	for _, envVar := range []string{"LC_MONETARY", "LC_ALL", "LANG"} {
		locale := os.Getenv(envVar)
		if locale != "" && locale != "C" && locale != "POSIX" {
			return locale
		}
	}
	return ""
}
