package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/ironsheep/maze-solver/internal/maze"
)

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestNewCanvas_IsCopy(t *testing.T) {
	src := createInMemoryImage(4, 4, color.RGBA{255, 255, 255, 255})
	canvas := NewCanvas(src)

	canvas.Set(1, 1, SolutionColor)

	if r, g, b := rgb8(src.At(1, 1)); r != 255 || g != 255 || b != 255 {
		t.Errorf("source modified: got (%d,%d,%d)", r, g, b)
	}
	if r, g, b := rgb8(canvas.At(1, 1)); r != 255 || g != 0 || b != 0 {
		t.Errorf("canvas not updated: got (%d,%d,%d)", r, g, b)
	}
}

func TestNewCanvas_NormalizesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	canvas := NewCanvas(src)
	if canvas.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds: got %v, want (0,0)-(3,2)", canvas.Bounds())
	}
}

func TestDrawPath(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	path := maze.Path{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}, {X: 9, Y: 9}}

	DrawPath(dst, path, SolutionColor)

	for _, p := range path[:3] {
		if dst.NRGBAAt(int(p.X), int(p.Y)) != SolutionColor {
			t.Errorf("cell (%d,%d) not painted", p.X, p.Y)
		}
	}
	if dst.NRGBAAt(0, 0) == SolutionColor {
		t.Error("cell off the path was painted")
	}
}

func TestDrawPath_OffsetDestination(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(10, 10, 13, 13))
	DrawPath(dst, maze.Path{{X: 0, Y: 0}}, SolutionColor)
	if dst.NRGBAAt(10, 10) != SolutionColor {
		t.Error("grid (0,0) should map to dst.Bounds().Min")
	}
}

func TestRenderSolution(t *testing.T) {
	src := createInMemoryImage(3, 1, color.RGBA{255, 255, 255, 255})
	out := RenderSolution(src, maze.Path{{X: 1, Y: 0}}, color.NRGBA{0, 0, 255, 255})

	if r, g, b := rgb8(out.At(1, 0)); r != 0 || g != 0 || b != 255 {
		t.Errorf("path cell: got (%d,%d,%d), want (0,0,255)", r, g, b)
	}
	if r, g, b := rgb8(out.At(0, 0)); r != 255 || g != 255 || b != 255 {
		t.Errorf("background: got (%d,%d,%d), want white", r, g, b)
	}
}

func TestEncoderFor(t *testing.T) {
	for _, name := range []string{"a.png", "a.PNG", "a.jpg", "a.jpeg", "a.bmp"} {
		if _, err := EncoderFor(name); err != nil {
			t.Errorf("EncoderFor(%q): %v", name, err)
		}
	}
	for _, name := range []string{"a.gif", "a", "a.webp"} {
		if _, err := EncoderFor(name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("EncoderFor(%q): got %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestSave_RoundTrip(t *testing.T) {
	img := createInMemoryImage(6, 4, color.RGBA{255, 0, 0, 255})
	dir := t.TempDir()

	tests := []struct {
		file   string
		decode func(f *os.File) (image.Image, error)
	}{
		{"out.png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"out.jpg", func(f *os.File) (image.Image, error) { return jpeg.Decode(f) }},
		{"out.bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := Save(path, img); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()

			got, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Bounds().Dx() != 6 || got.Bounds().Dy() != 4 {
				t.Errorf("dimensions: got %v", got.Bounds())
			}
		})
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "x.png", createInMemoryImage(2, 2, color.White)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}

	if err := Encode(&buf, "x.gif", createInMemoryImage(2, 2, color.White)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("gif: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}},
		{"00ff00", color.NRGBA{0, 255, 0, 255}},
		{"#00f", color.NRGBA{0, 0, 255, 255}},
		{"#FF000080", color.NRGBA{255, 0, 0, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "#", "#12", "#GGGGGG", "#FF0000ZZ"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", bad)
		}
	}
}

func TestHexString(t *testing.T) {
	if got := HexString(color.NRGBA{255, 0, 0, 255}); got != "#FF0000" {
		t.Errorf("HexString: got %s, want #FF0000", got)
	}
}

func TestFindPixel(t *testing.T) {
	img := createInMemoryImage(5, 4, color.RGBA{255, 255, 255, 255})
	img.Set(3, 1, color.RGBA{0, 255, 0, 255})
	img.Set(1, 2, color.RGBA{0, 255, 0, 255})

	x, y, ok := FindPixel(img, color.NRGBA{0, 255, 0, 255})
	if !ok {
		t.Fatal("FindPixel did not find the marker")
	}
	if x != 3 || y != 1 {
		t.Errorf("FindPixel: got (%d,%d), want first in row-major order (3,1)", x, y)
	}

	if _, _, ok := FindPixel(img, color.NRGBA{1, 2, 3, 255}); ok {
		t.Error("FindPixel found a colour that is not present")
	}
}

func TestFindPixel_SkipsTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 0})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})

	x, y, ok := FindPixel(img, color.Black)
	if !ok || x != 1 || y != 0 {
		t.Errorf("FindPixel: got (%d,%d,%v), want (1,0,true)", x, y, ok)
	}
}
