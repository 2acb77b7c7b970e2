// Package logger provides the console logger used by the hassmap CLI.
//
// Output lines are prefixed with [HH:MM:SS] timestamps. Color is enabled only
// when writing to a real terminal; NO_COLOR is respected through the color
// library's detection.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// Console logs to a writer with timestamps, level filtering and optional
// color. Safe for concurrent use.
type Console struct {
	mu     sync.Mutex
	writer io.Writer
	level  int
	color  bool
}

// New creates a Console writing to w at the given level (debug, info, warn,
// error; empty or unknown defaults to info). A nil writer discards all
// output.
func New(w io.Writer, level string) *Console {
	return &Console{
		writer: w,
		level:  parseLevel(level),
		color:  isTerminal(w),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// isTerminal reports whether w is a TTY that should receive color codes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) log(level int, prefix string, colorize func(format string, a ...interface{}) string, format string, args ...interface{}) {
	if c.writer == nil || level < c.level {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if prefix != "" {
		msg = prefix + " " + msg
	}
	if c.color && colorize != nil {
		msg = colorize("%s", msg)
	}
	fmt.Fprintf(c.writer, "[%s] %s\n", time.Now().Format("15:04:05"), msg)
}

// Debugf logs at debug level.
func (c *Console) Debugf(format string, args ...interface{}) {
	c.log(levelDebug, "", nil, format, args...)
}

// Infof logs at info level.
func (c *Console) Infof(format string, args ...interface{}) {
	c.log(levelInfo, "", nil, format, args...)
}

// Warnf logs at warn level in yellow.
func (c *Console) Warnf(format string, args ...interface{}) {
	c.log(levelWarn, "⚠", color.YellowString, format, args...)
}

// Errorf logs at error level in red.
func (c *Console) Errorf(format string, args ...interface{}) {
	c.log(levelError, "✗", color.RedString, format, args...)
}

// Successf logs a green checkmarked line at info level.
func (c *Console) Successf(format string, args ...interface{}) {
	c.log(levelInfo, "✓", color.GreenString, format, args...)
}
