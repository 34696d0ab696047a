package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/timex"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// interactive reports whether in is a terminal, so prompts are only printed
// for a human and not when commands are piped in.
func (a *App) interactive() bool {
	f, ok := a.in.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

func (a *App) prompt() string {
	if !a.interactive() {
		return ""
	}
	return "wk> "
}

func intArg(args []string, i int, usage string) (int, error) {
	if i >= len(args) {
		return 0, usageError(usage)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, usageError(usage)
	}
	return n, nil
}

// optIntArg returns def when args[i] is absent.
func optIntArg(args []string, i, def int, usage string) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	return intArg(args, i, usage)
}

func floatArg(args []string, i int, usage string) (float64, error) {
	if i >= len(args) {
		return 0, usageError(usage)
	}
	f, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, usageError(usage)
	}
	return f, nil
}

// dateArg parses args[i] as YYYY-MM-DD, defaulting to today. "yesterday" is
// accepted as a shortcut.
func (a *App) dateArg(args []string, i int) (timex.Date, error) {
	today := a.cal.Today()
	if i >= len(args) {
		return today, nil
	}
	switch strings.ToLower(args[i]) {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	d, err := timex.ParseDate(args[i])
	if err != nil {
		return timex.Date{}, usageError(fmt.Sprintf("date must be YYYY-MM-DD, got %q", args[i]))
	}
	return d, nil
}

// bar renders a fixed-width progress bar for pct in [0, 100].
func bar(pct int) string {
	const width = 20
	filled := min(max(pct, 0), 100) * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
