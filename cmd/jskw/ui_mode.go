package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of --ui. It satisfies pflag.Value so cobra rejects a
// bad value while parsing flags.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func (m *uiMode) String() string { return string(*m) }

func (m *uiMode) Set(value string) error {
	switch v := uiMode(strings.TrimSpace(strings.ToLower(value))); v {
	case "":
		*m = uiModeAuto
	case uiModeAuto, uiModeOn, uiModeOff:
		*m = v
	default:
		return fmt.Errorf("expected auto|on|off, got %q", value)
	}
	return nil
}

func (m *uiMode) Type() string { return "mode" }

// useTUI: auto shows the progress view only for pretty output on a terminal
// so JSON and piped output stay clean.
func (m uiMode) useTUI(format string, out *os.File) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return format == "pretty" && out != nil && isTerminal(out)
	}
}
