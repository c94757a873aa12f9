package termio

import (
	"fmt"

	"github.com/fatih/color"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelSuccess
	LevelWarn
	LevelError
)

// String returns the tag text for the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "OK"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "?"
	}
}

// Format selects how the level is rendered in front of each line.
type Format int

const (
	// FormatTagged prefixes lines with [LEVEL]. The default.
	FormatTagged Format = iota
	// FormatSymbols prefixes lines with a one-character marker.
	FormatSymbols
	// FormatPlain prints the message only.
	FormatPlain
)

var symbols = map[Level]string{
	LevelDebug:   "·",
	LevelInfo:    "•",
	LevelSuccess: "✓",
	LevelWarn:    "!",
	LevelError:   "✗",
}

// Logger prints leveled, optionally styled lines over a Term. Warnings and
// errors go to the error writer, everything else to the output writer.
type Logger struct {
	term   *Term
	min    Level
	format Format
	styles map[Level]*color.Color
}

// NewLogger returns a Logger over t at LevelInfo, tagged format. Styling
// follows t's color decision.
func NewLogger(t *Term) *Logger {
	l := &Logger{
		term:   t,
		min:    LevelInfo,
		format: FormatTagged,
		styles: map[Level]*color.Color{
			LevelDebug:   color.New(color.FgHiBlack),
			LevelInfo:    color.New(color.FgCyan),
			LevelSuccess: color.New(color.FgGreen),
			LevelWarn:    color.New(color.FgYellow),
			LevelError:   color.New(color.FgRed, color.Bold),
		},
	}
	for _, s := range l.styles {
		if t.ColorEnabled() {
			s.EnableColor()
		} else {
			s.DisableColor()
		}
	}
	return l
}

// SetLevel drops every line below min.
func (l *Logger) SetLevel(min Level) { l.min = min }

// SetFormat selects the line prefix style.
func (l *Logger) SetFormat(f Format) { l.format = f }

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Successf logs at LevelSuccess.
func (l *Logger) Successf(format string, args ...any) { l.logf(LevelSuccess, format, args...) }

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(lv Level, format string, args ...any) {
	if lv < l.min {
		return
	}
	w := l.term.Out()
	if lv >= LevelWarn {
		w = l.term.Err()
	}
	msg := fmt.Sprintf(format, args...)
	switch l.format {
	case FormatSymbols:
		fmt.Fprintf(w, "%s %s\n", l.styles[lv].Sprint(symbols[lv]), msg)
	case FormatPlain:
		fmt.Fprintln(w, msg)
	default:
		fmt.Fprintf(w, "%s %s\n", l.styles[lv].Sprintf("[%s]", lv), msg)
	}
}
