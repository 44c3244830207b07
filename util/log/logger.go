package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LoggerType uint8

const (
	ConsoleLogger LoggerType = iota
	JSONLogger
)

// Component loggers. They are disabled until Init is called so packages can
// log unconditionally, including from tests.
var (
	Root     = zerolog.Nop()
	Chain    = zerolog.Nop()
	Resolver = zerolog.Nop()
	Dialog   = zerolog.Nop()
)

// Options for Init
type Options struct {
	// Default Warn
	LogLevel zerolog.Level
	Type     LoggerType
	// Stderr when nil. Stdout is reserved for user facing output.
	Out io.Writer
}

func ParseLogLevel(loglevel string) (zerolog.Level, error) {
	if strings.TrimSpace(loglevel) == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(loglevel)
}

func ParseLoggerType(t string) (LoggerType, error) {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "", "console":
		return ConsoleLogger, nil
	case "json":
		return JSONLogger, nil
	}
	return ConsoleLogger, fmt.Errorf("unknown log format %q, valid values: console, json", t)
}

func Init(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	switch opts.Type {
	case ConsoleLogger:
		Root = zerolog.New(newConsoleWriter(out)).Level(opts.LogLevel).
			With().Timestamp().Logger()
	default:
		Root = zerolog.New(out).Level(opts.LogLevel).
			With().Timestamp().Logger()
	}
	Chain = Root.With().Str("component", "chain").Logger()
	Resolver = Root.With().Str("component", "resolver").Logger()
	Dialog = Root.With().Str("component", "dialog").Logger()
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	cw.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("message: \"%s\" |", i)
	}
	cw.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("\"%s\": ", i)
	}
	cw.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("\"%s\" |", i)
	}
	return cw
}
