package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor accepts "#RRGGBB", "#RGB" (with or without the #) or a tcell
// color name such as "darkgreen".
func ParseColor(s string) (tcell.Color, error) {
	if c, err := ParseHexColor(s); err == nil {
		return c, nil
	}
	if c := tcell.GetColor(strings.ToLower(s)); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// ParseHexColor converts a hex color string to a tcell.Color. Short
// three-digit forms are expanded ("#F80" is "#FF8800").
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}
