package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision says whether the run command drives the live UI and
// carries a warning when a requested mode had to be downgraded.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal is a seam so tests can force TTY detection either way.
var isTerminal = defaultIsTerminal

func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	switch normalizeUIMode(mode) {
	case "auto":
		return uiModeDecision{useLive: isTerminal(stdout)}, nil
	case "live":
		if !isTerminal(stdout) {
			return uiModeDecision{
				warning: "Live UI requested but stdout is not a TTY; falling back to plain output.",
			}, nil
		}
		return uiModeDecision{useLive: true}, nil
	case "plain":
		return uiModeDecision{}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}

func normalizeUIMode(mode string) string {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		return "auto"
	}
	return normalized
}

func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
