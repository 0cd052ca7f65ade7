package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/selection"
)

// errFormat is returned for output paths with an unsupported extension.
var errFormat = errors.New("maskdemo: unsupported output format")

// antsValue is the coverage used to draw the outline.
const antsValue = 128

// BurnAnts draws the outline segments into img. Each segment is drawn on
// the inside pixels along its edge so the outline stays on the canvas.
func BurnAnts(img *image.Alpha, segs []selection.Segment) {
	for _, s := range segs {
		x1, x2 := min(s.X1, s.X2), max(s.X1, s.X2)
		y1, y2 := min(s.Y1, s.Y2), max(s.Y1, s.Y2)
		var r image.Rectangle
		switch {
		case s.Horizontal() && s.Open:
			r = image.Rect(x1, y1, x2, y1+1)
		case s.Horizontal():
			r = image.Rect(x1, y1-1, x2, y1)
		case s.Open:
			r = image.Rect(x1, y1, x1+1, y2)
		default:
			r = image.Rect(x1-1, y1, x1, y2)
		}
		r = r.Intersect(img.Rect)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.Pix[img.PixOffset(x, y)] = antsValue
			}
		}
	}
}

// Save encodes img to path. The format follows the extension: .png, .bmp,
// .tif or .tiff.
func Save(path string, img image.Image) (err error) {
	var encode func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	case ".tif", ".tiff":
		encode = func(f *os.File) error {
			return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("%w: %q", errFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("maskdemo: create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("maskdemo: close output: %w", cerr)
		}
	}()

	if err := encode(f); err != nil {
		return fmt.Errorf("maskdemo: encode %s: %w", path, err)
	}
	return nil
}
