package screen

import (
	"errors"
	"image/color"
	"testing"
)

type pixel struct{ x, y int16 }

type fakePanel struct {
	pixels   []pixel
	clears   int
	displays int
	err      error
}

func (p *fakePanel) Size() (int16, int16) { return 128, 64 }

func (p *fakePanel) SetPixel(x, y int16, c color.RGBA) {
	p.pixels = append(p.pixels, pixel{x, y})
}

func (p *fakePanel) Display() error {
	p.displays++
	return p.err
}

func (p *fakePanel) ClearBuffer() {
	p.clears++
	p.pixels = p.pixels[:0]
}

func TestTextDrawsBelowCursor(t *testing.T) {
	p := &fakePanel{}
	f := New(p)
	f.Text(0, 20, "volt = 1.25")

	if len(p.pixels) == 0 {
		t.Fatal("no pixels drawn")
	}
	for _, px := range p.pixels {
		if px.y < 14 || px.y >= 34 {
			t.Fatalf("pixel %+v outside the line starting at y=20", px)
		}
	}
	if p.displays != 0 {
		t.Fatal("Text flushed the panel")
	}
}

func TestClearAndFlush(t *testing.T) {
	p := &fakePanel{}
	f := New(p)
	f.Text(0, 0, "x")
	f.Clear()
	if p.clears != 1 || len(p.pixels) != 0 {
		t.Fatalf("clears=%d pixels=%d", p.clears, len(p.pixels))
	}
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}
	if p.displays != 1 {
		t.Fatalf("displays = %d, want 1", p.displays)
	}

	p.err = errors.New("i2c")
	if err := f.Flush(); err == nil {
		t.Fatal("flush error not returned")
	}
}

func TestEmptyTextDrawsNothing(t *testing.T) {
	p := &fakePanel{}
	New(p).Text(0, 0, "")
	if len(p.pixels) != 0 {
		t.Fatalf("drew %d pixels for empty text", len(p.pixels))
	}
}
