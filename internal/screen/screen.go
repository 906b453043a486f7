// Package screen draws text onto a monochrome frame buffer.
package screen

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Panel is a buffered display. *ssd1306.Device satisfies it.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Frame positions text by its top-left corner, the way cursor-based display libraries do,
// rather than by baseline as tinyfont does.
type Frame struct {
	panel  Panel
	font   tinyfont.Fonter
	offset int16 // cursor top to baseline
}

func New(p Panel) *Frame {
	return &Frame{
		panel:  p,
		font:   &proggy.TinySZ8pt7b,
		offset: 6,
	}
}

// Clear blanks the frame buffer. The panel keeps showing the old frame until Flush.
func (f *Frame) Clear() {
	f.panel.ClearBuffer()
}

// Text draws s with its top-left corner at (x, y).
func (f *Frame) Text(x, y int16, s string) {
	tinyfont.WriteLine(f.panel, f.font, x, y+f.offset, s, white)
}

// Flush pushes the frame buffer to the panel.
func (f *Frame) Flush() error {
	return f.panel.Display()
}
