// Package logging builds the stderr logger shared by both binaries.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Supported formats.
const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

// New creates a logger writing to w at the given level and format.
// An empty level means info; an empty format means text.
func New(w io.Writer, prefix, level, format string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	formatter, err := parseFormat(format)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:    prefix,
		Level:     lvl,
		Formatter: formatter,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func parseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", TextFormat:
		return log.TextFormatter, nil
	case LogfmtFormat:
		return log.LogfmtFormatter, nil
	case JSONFormat:
		return log.JSONFormatter, nil
	default:
		return 0, fmt.Errorf("unknown log format %q: supported formats are %q, %q and %q",
			format, TextFormat, LogfmtFormat, JSONFormat)
	}
}
