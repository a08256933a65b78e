package core

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Colour is an ARGB colour tag attached to a note.
type Colour struct {
	A, R, G, B uint8
}

// Transparent is the single reserved colour that keeps a zero alpha channel.
// It is also the colour of a note that has none.
var Transparent = Colour{A: 0x00, R: 0xFF, G: 0xFF, B: 0xFF}

// transparentHex is the 8 digit sentinel written for Transparent.
const transparentHex = "00FFFFFF"

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Colour {
	return Colour{A: 0xFF, R: r, G: g, B: b}
}

// IsTransparent reports whether c is the reserved transparent value.
func (c Colour) IsTransparent() bool {
	return c == Transparent
}

// opaque forces full alpha on everything except the transparent sentinel.
func (c Colour) opaque() Colour {
	if c.IsTransparent() || c.A == 0xFF {
		return c
	}
	c.A = 0xFF
	return c
}

// Hex encodes c as "#RRGGBB", or "#00FFFFFF" for Transparent.
// Alpha is not encoded for any other colour.
func (c Colour) Hex() string {
	if c.IsTransparent() {
		return "#" + transparentHex
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Colour) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColour decodes a colour written by Hex. The leading '#' is optional.
// Accepted forms are 3 digit shorthand (each digit doubled), 6 digit RGB and
// an 8 digit value with a zero alpha byte, which always yields Transparent.
func ParseColour(s string) (Colour, error) {
	digits := strings.TrimPrefix(s, "#")

	switch len(digits) {
	case 3:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return Colour{}, fmt.Errorf("%w: %q has %d hex digits, expected 3, 6 or 8", ErrInvalidColour, s, len(digits))
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColour, s)
	}

	if len(raw) == 4 {
		if raw[0] != 0x00 {
			return Colour{}, fmt.Errorf("%w: %q: only the transparent sentinel may carry an alpha channel", ErrInvalidColour, s)
		}
		return Transparent, nil
	}

	return RGB(raw[0], raw[1], raw[2]), nil
}
