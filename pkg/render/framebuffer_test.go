package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestDrawLineEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 1, 1, 8, 1},
		{"vertical", 2, 0, 2, 7},
		{"diagonal", 0, 0, 7, 7},
		{"steep backwards", 6, 7, 3, 0},
		{"single pixel", 4, 4, 4, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			fb.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, white)
			if fb.GetPixel(tc.x0, tc.y0) != white || fb.GetPixel(tc.x1, tc.y1) != white {
				t.Errorf("endpoints not drawn")
			}
		})
	}
}

func TestBresenhamPixelCount(t *testing.T) {
	n := 0
	bresenham(0, 0, 9, 3, func(x, y int) { n++ })
	if n != 10 {
		t.Errorf("got %d pixels, want 10", n)
	}
}

func TestSetPixelBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(-1, 0, white)
	fb.SetPixel(0, 4, white)
	for _, p := range fb.Pixels {
		if p != (color.RGBA{}) {
			t.Fatal("out-of-bounds pixel written")
		}
	}
	if got := fb.GetPixel(9, 9); got != (color.RGBA{}) {
		t.Errorf("GetPixel out of bounds = %v", got)
	}
}

func TestClip(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	r := image.Rect(2, 2, 5, 5)
	fb.SetClip(&r)
	fb.DrawLine(0, 3, 9, 3, white)
	if fb.GetPixel(1, 3) == white || fb.GetPixel(5, 3) == white {
		t.Error("pixel outside clip drawn")
	}
	if fb.GetPixel(2, 3) != white || fb.GetPixel(4, 3) != white {
		t.Error("pixel inside clip missing")
	}

	fb.SetClip(nil)
	fb.SetPixel(9, 9, white)
	if fb.GetPixel(9, 9) != white {
		t.Error("clip not removed")
	}

	fb.SetClip(&r)
	fb.Clear(black)
	if fb.GetPixel(0, 0) != black {
		t.Error("Clear should ignore the clip region")
	}
}

func TestFramebufferIsDrawImage(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(1, 1, color.Gray{Y: 255})
	if fb.At(1, 1) != color.Color(white) {
		t.Errorf("At = %v", fb.At(1, 1))
	}
	if fb.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds = %v", fb.Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(5, 3)
	fb.Clear(black)
	fb.SetPixel(4, 2, white)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 3 {
		t.Errorf("size = %v", img.Bounds())
	}
	if r, _, _, _ := img.At(4, 2).RGBA(); r != 0xffff {
		t.Errorf("pixel not saved")
	}
}

func TestDashPatterns(t *testing.T) {
	tests := []struct {
		style int
		want  string
	}{
		{StyleSolid, "########"},
		{StyleDotted, "#..#..#."},
		{StyleDashed, "####...#"},
		{StyleDashDot, "####..#."},
		{99, "########"},
	}
	for _, tc := range tests {
		d := NewDash(tc.style)
		got := make([]byte, len(tc.want))
		for i := range got {
			got[i] = '.'
			if d.Next() {
				got[i] = '#'
			}
		}
		if string(got) != tc.want {
			t.Errorf("style %d: got %s, want %s", tc.style, got, tc.want)
		}
	}
}
