package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses "#RRGGBB", "#RGB" or "#RRGGBBAA" into an NRGBA colour.
// The leading '#' is optional. Forms without alpha are fully opaque.
func ParseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimSpace(hex)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if s[0] != '#' {
		s = "#" + s
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// HexString formats c as "#RRGGBB", dropping alpha.
func HexString(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return strings.ToUpper(cf.Hex())
}

// FindPixel scans img row by row and returns the grid position of the first
// pixel whose 8-bit RGB value equals target. Alpha is ignored, and so are
// fully transparent pixels, which carry no colour.
//
// The returned coordinates are relative to img.Bounds().Min.
func FindPixel(img image.Image, target color.Color) (x, y int, ok bool) {
	want, valid := colorful.MakeColor(target)
	if !valid {
		return 0, 0, false
	}
	wr, wg, wb := want.RGB255()

	bounds := img.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			got, valid := colorful.MakeColor(img.At(px, py))
			if !valid {
				continue
			}
			r, g, b := got.RGB255()
			if r == wr && g == wg && b == wb {
				return px - bounds.Min.X, py - bounds.Min.Y, true
			}
		}
	}
	return 0, 0, false
}
