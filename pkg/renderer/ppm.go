package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/arcweave/pathtracer/pkg/core"
)

// WritePPM writes img as PPM P3 (ASCII): header "P3\n{W} {H}\n255\n" then
// one space-separated decimal RGB triple per pixel, in scanline order
// from the top row to the bottom row. Any write failure is wrapped in
// a *core.IOError.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return &core.IOError{Op: "write PPM header", Err: err}
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return &core.IOError{Op: "write PPM pixel", Err: err}
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return &core.IOError{Op: "flush PPM output", Err: err}
	}
	return nil
}
