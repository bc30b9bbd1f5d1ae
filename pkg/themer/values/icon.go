package values

import (
	"strconv"

	"github.com/BrandonKowalski/themer/pkg/themer/constants"
)

// Icon is an image placed inside an element, aligned and offset by margin.
type Icon struct {
	Texture string
	Size    Vec2
	Margin  Vec2
	HAlign  constants.HAlignment
	VAlign  constants.VAlignment
	Color   Color
	ZOffset float32
	Lit     bool
}

func NewIcon(texture string, size Vec2) *Icon {
	return &Icon{
		Texture: texture,
		Size:    size,
		HAlign:  constants.HAlignLeft,
		VAlign:  constants.VAlignCenter,
		Color:   White,
	}
}

// BitmapFont references a font asset embedded in a theme. The style store
// cannot use it directly; it is converted by a font converter on apply.
type BitmapFont struct {
	Path string
	Size int
}

// Key identifies the converted font for caching.
func (f BitmapFont) Key() string {
	return f.Path + "@" + strconv.Itoa(f.Size)
}
