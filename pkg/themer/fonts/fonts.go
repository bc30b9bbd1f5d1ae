// Package fonts converts the bitmap font descriptors stored in themes into
// font values the style store can use.
package fonts

import (
	"errors"

	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

// ErrNoFont is returned when a descriptor has no path.
var ErrNoFont = errors.New("font descriptor has no path")

// Converter turns a theme font descriptor into a store-compatible value.
type Converter interface {
	Convert(font *values.BitmapFont) (any, error)
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(font *values.BitmapFont) (any, error)

func (f ConverterFunc) Convert(font *values.BitmapFont) (any, error) {
	return f(font)
}

// Passthrough returns the descriptor itself, for stores that load fonts
// lazily from the descriptor.
var Passthrough = ConverterFunc(func(font *values.BitmapFont) (any, error) {
	return font, nil
})
