package keyadmin

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/robertoperuzzo/typesense-drupal/pkg/typesense"
)

const expiryFormat = "2006-01-02 15:04:05 MST"

// FormatExpiry renders a key expiry for display. The engine's expiry-none
// sentinel renders as the literal token "never"; any other epoch renders as
// a formatted UTC timestamp.
func FormatExpiry(epoch int64) string {
	if epoch == typesense.NeverExpires {
		return "never"
	}
	return time.Unix(epoch, 0).UTC().Format(expiryFormat)
}

// FormatList renders scope sequences as a bracketed, comma-joined list,
// e.g. ["admin", "search"] becomes "[admin, search]".
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// SplitCSV splits comma-separated form input into an ordered sequence of
// trimmed tokens. Empty tokens are dropped, so "admin, ,search" yields
// ["admin", "search"].
func SplitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseExpiry turns human expiry input into epoch seconds. An empty value
// or the token "never" maps to the engine's expiry-none sentinel; anything
// else must be a parseable date.
func ParseExpiry(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "never") {
		return typesense.NeverExpires, nil
	}
	t, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return 0, fmt.Errorf("unrecognized expiry %q: %w", trimmed, err)
	}
	return t.Unix(), nil
}
