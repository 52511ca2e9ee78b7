package svg

import (
	"fmt"
	"strconv"
)

const defaultColor = "#888888"

// ansi16 are the xterm defaults for the basic and bright colors.
var ansi16 = [16]string{
	"#000000", "#800000", "#008000", "#808000", "#000080", "#800080", "#008080", "#c0c0c0",
	"#808080", "#ff0000", "#00ff00", "#ffff00", "#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}

// Color converts a canvas color to an SVG fill. Hex colors pass through,
// ANSI numbers map to the xterm 256-color palette and anything else
// becomes a neutral gray.
func Color(c string) string {
	if c == "" {
		return defaultColor
	}
	if c[0] == '#' {
		return c
	}
	n, err := strconv.Atoi(c)
	if err != nil || n < 0 || n > 255 {
		return defaultColor
	}
	switch {
	case n < 16:
		return ansi16[n]
	case n < 232:
		n -= 16
		return fmt.Sprintf("#%02x%02x%02x", cube(n/36), cube(n/6%6), cube(n%6))
	default:
		g := 8 + (n-232)*10
		return fmt.Sprintf("#%02x%02x%02x", g, g, g)
	}
}

func cube(i int) int {
	if i == 0 {
		return 0
	}
	return 55 + i*40
}
