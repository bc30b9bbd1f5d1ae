package values

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// QuadBackground is a flat colored quad, optionally textured.
type QuadBackground struct {
	Color   Color
	Texture *string // nil means no texture
	Alpha   float32
	Margin  Vec2
	ZOffset float32
	Lit     bool
}

// NewQuadBackground returns an untextured, fully opaque background.
func NewQuadBackground(color Color) *QuadBackground {
	return &QuadBackground{Color: color, Alpha: 1}
}

func (q *QuadBackground) HasTexture() bool {
	return q.Texture != nil && *q.Texture != ""
}

// TbtQuadBackground is a three-by-three (nine-slice) background. The
// image is cut at X1/X2 horizontally and Y1/Y2 vertically; the nine patch
// rectangles are derived from those offsets and the image size.
type TbtQuadBackground struct {
	Texture     *string
	ImageWidth  int32
	ImageHeight int32
	X1, Y1      int32
	X2, Y2      int32
	Color       Color
	Alpha       float32
	Margin      Vec2
	ZOffset     float32
	Lit         bool
}

func NewTbtQuadBackground(texture string, width, height, x1, y1, x2, y2 int32) *TbtQuadBackground {
	var ref *string
	if texture != "" {
		ref = &texture
	}
	return &TbtQuadBackground{
		Texture:     ref,
		ImageWidth:  width,
		ImageHeight: height,
		X1:          x1,
		Y1:          y1,
		X2:          x2,
		Y2:          y2,
		Color:       White,
		Alpha:       1,
	}
}

// Validate checks that the border offsets fall inside the image in order.
func (t *TbtQuadBackground) Validate() error {
	if t.ImageWidth < 0 || t.ImageHeight < 0 {
		return fmt.Errorf("negative image size %dx%d", t.ImageWidth, t.ImageHeight)
	}
	if t.X1 < 0 || t.X1 > t.X2 || t.X2 > t.ImageWidth {
		return fmt.Errorf("horizontal offsets %d,%d outside 0..%d", t.X1, t.X2, t.ImageWidth)
	}
	if t.Y1 < 0 || t.Y1 > t.Y2 || t.Y2 > t.ImageHeight {
		return fmt.Errorf("vertical offsets %d,%d outside 0..%d", t.Y1, t.Y2, t.ImageHeight)
	}
	return nil
}

// Patches returns the nine source rectangles in row-major order, starting
// at the top-left corner.
func (t *TbtQuadBackground) Patches() [9]sdl.Rect {
	xs := [4]int32{0, t.X1, t.X2, t.ImageWidth}
	ys := [4]int32{0, t.Y1, t.Y2, t.ImageHeight}

	var patches [9]sdl.Rect
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			patches[row*3+col] = sdl.Rect{
				X: xs[col],
				Y: ys[row],
				W: xs[col+1] - xs[col],
				H: ys[row+1] - ys[row],
			}
		}
	}
	return patches
}
