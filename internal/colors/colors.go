// Package colors parses LS_COLORS extension rules and applies them to
// lipgloss styles.
package colors

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Table maps a file extension (without the dot) to its SGR codes.
type Table map[string][]string

// ParseLSColors reads the LS_COLORS format ("*.tar=01;31:di=01;34:...").
// Only rules whose pattern contains a dot are kept, keyed by the text after
// the last dot; type rules such as di= or ln= are ignored.
func ParseLSColors(s string) Table {
	t := Table{}
	for _, rule := range strings.Split(s, ":") {
		pattern, codes, ok := strings.Cut(rule, "=")
		if !ok || strings.Contains(codes, "=") {
			continue
		}
		i := strings.LastIndexByte(pattern, '.')
		if i < 0 {
			continue
		}
		t[pattern[i+1:]] = strings.Split(codes, ";")
	}
	return t
}

var fromEnv = sync.OnceValue(func() Table {
	return ParseLSColors(os.Getenv("LS_COLORS"))
})

// FromEnv returns the table parsed from LS_COLORS, read once per process.
func FromEnv() Table {
	return fromEnv()
}

// Key returns the lookup key for a file name: the text after its last dot,
// or the whole name when it has none.
func Key(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Apply layers the codes registered for name's extension on top of style.
// A matching rule always makes the result bold.
func (t Table) Apply(style lipgloss.Style, name string) lipgloss.Style {
	codes, ok := t[Key(name)]
	if !ok {
		return style
	}
	for _, code := range codes {
		style = applyCode(style, code)
	}
	return style.Bold(true)
}

func applyCode(style lipgloss.Style, code string) lipgloss.Style {
	switch code {
	case "1", "01":
		return style.Bold(true)
	case "4", "04":
		return style.Underline(true)
	case "5", "05":
		return style.Blink(true)
	case "7", "07":
		return style.Reverse(true)
	}
	if len(code) == 2 && code[1] >= '0' && code[1] <= '7' {
		color := lipgloss.Color(code[1:])
		switch code[0] {
		case '3':
			return style.Foreground(color)
		case '4':
			return style.Background(color)
		}
	}
	return style
}
