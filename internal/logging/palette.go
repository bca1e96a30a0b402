package logging

import (
	"io"

	"github.com/muesli/termenv"
)

// Reset is the escape sequence appended to coloured lines.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

// Palette holds the foreground escape sequence written before a line of
// each severity when colour is enabled.
type Palette struct {
	Debug   string
	Info    string
	Warning string
	Error   string
	Fatal   string
}

// Color256 returns the escape sequence selecting 256-colour foreground n.
func Color256(n int) string {
	return termenv.CSI + termenv.ANSI256Color(n).Sequence(false) + "m"
}

// DefaultPalette returns gray, white, yellow, light red and red for
// Debug through Fatal.
func DefaultPalette() Palette {
	return Palette{
		Debug:   Color256(7),
		Info:    Color256(15),
		Warning: Color256(3),
		Error:   Color256(9),
		Fatal:   Color256(1),
	}
}

// For returns the escape sequence configured for sev.
func (p Palette) For(sev Severity) string {
	switch sev {
	case SeverityDebug:
		return p.Debug
	case SeverityInfo:
		return p.Info
	case SeverityWarning:
		return p.Warning
	case SeverityError:
		return p.Error
	case SeverityFatal:
		return p.Fatal
	default:
		return ""
	}
}

// DetectColor reports whether w is a terminal that renders ANSI colour.
// It honours NO_COLOR and CLICOLOR_FORCE through termenv.
func DetectColor(w io.Writer) bool {
	out := termenv.NewOutput(w)
	if out.EnvNoColor() {
		return false
	}
	return out.EnvColorProfile() != termenv.Ascii
}
