//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

const reservedNameChars = ""

func enableTerminalColors(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
