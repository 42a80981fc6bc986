// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// BitmapFont selects the fixed 7x13 bitmap face, which ignores the font size.
const BitmapFont = "7x13"

// MinAutoFontSize is the smallest automatic legend font size in pixels.
const MinAutoFontSize = 16

// AutoFontSize returns max(canvasHeight/entries/4, MinAutoFontSize).
func AutoFontSize(canvasHeight, entries int) float64 {
	if entries < 1 {
		return MinAutoFontSize
	}
	return float64(max(canvasHeight/entries/4, MinAutoFontSize))
}

// LoadFace returns a legend face of size pixels.
//
//   - "" uses the built-in Go Regular TrueType font;
//   - BitmapFont uses basicfont.Face7x13;
//   - anything else is read as a TrueType file.
func LoadFace(path string, size float64) (font.Face, error) {
	switch strings.TrimSpace(path) {
	case "":
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return basicfont.Face7x13, nil
		}
		return newFace(f, size), nil
	case BitmapFont:
		return basicfont.Face7x13, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFace: %w: %v", ErrInvalidFont, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("LoadFace: %w: %s: %v", ErrInvalidFont, path, err)
	}
	return newFace(f, size), nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
