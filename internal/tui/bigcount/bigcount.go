// Package bigcount renders short strings, such as a syllable count, as block
// art using half-block characters.
package bigcount

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// threshold is the gray level above which a pixel counts as lit.
const threshold = 40

// Render draws text with the built-in 7x13 bitmap face and returns it as
// rows of half-block characters. Empty text renders as "".
func Render(text string) string {
	if text == "" {
		return ""
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Height
	if height%2 == 1 {
		height++
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	return toHalfBlocks(img)
}

// Size returns the number of columns and rows Render uses for text.
func Size(text string) (cols, rows int) {
	if text == "" {
		return 0, 0
	}
	face := basicfont.Face7x13
	return font.MeasureString(face, text).Ceil(), (face.Height + 1) / 2
}

// toHalfBlocks turns every two vertical pixels into one character cell.
func toHalfBlocks(img *image.Gray) string {
	bounds := img.Bounds()
	rows := bounds.Dy() / 2

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for x := 0; x < bounds.Dx(); x++ {
			top := img.GrayAt(x, row*2).Y > threshold
			bottom := img.GrayAt(x, row*2+1).Y > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
