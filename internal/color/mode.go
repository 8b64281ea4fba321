package color

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Mode selects how colors are encoded in terminal escapes. It affects
// encoding only, never color math.
type Mode int

const (
	// ModeRGB emits 24-bit truecolor escapes.
	ModeRGB Mode = iota
	// Mode8Bit quantizes to the 256-color palette.
	Mode8Bit
	// ModeANSI quantizes to the 16 basic ANSI colors.
	ModeANSI
)

// ParseMode parses a mode name: "rgb", "8bit" or "ansi".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "rgb":
		return ModeRGB, nil
	case "8bit":
		return Mode8Bit, nil
	case "ansi":
		return ModeANSI, nil
	default:
		return ModeRGB, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case Mode8Bit:
		return "8bit"
	case ModeANSI:
		return "ansi"
	default:
		return "rgb"
	}
}

// Profile maps the mode onto its termenv color profile.
func (m Mode) Profile() termenv.Profile {
	switch m {
	case Mode8Bit:
		return termenv.ANSI256
	case ModeANSI:
		return termenv.ANSI
	default:
		return termenv.TrueColor
	}
}
