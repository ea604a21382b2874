package config

import (
	"os"
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// CleanFileName makes a single path segment safe for the current platform.
// Separators, reserved and control characters are removed, leading dots and
// surrounding spaces are trimmed.
func CleanFileName(in string) string {
	reserved := reservedNameChars + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(reserved, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(out), "."))
	if len(out) == 0 {
		return badFileName
	}
	return out
}

// EnableColorOutput checks if colorized output is possible. NO_COLOR
// environment variable always disables it.
func EnableColorOutput(stream *os.File) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return enableTerminalColors(stream)
}
