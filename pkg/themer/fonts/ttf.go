package fonts

import (
	"fmt"

	"github.com/BrandonKowalski/themer/pkg/themer/internal"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
	"github.com/veandco/go-sdl2/ttf"
)

// TTFConverter opens descriptors as SDL_ttf fonts. Recently used fonts are
// cached by path and size. Every font it returns stays open until Close,
// including ones the cache has evicted, since the style store still holds
// them.
type TTFConverter struct {
	cache   *internal.Cache[*ttf.Font]
	retired []*ttf.Font
	open    func(path string, size int) (*ttf.Font, error)
	close   func(*ttf.Font)
}

// Init initializes SDL_ttf. Call it once before converting fonts.
func Init() error {
	if ttf.WasInit() > 0 {
		return nil
	}
	return ttf.Init()
}

// Quit shuts SDL_ttf down. Close every converter first.
func Quit() {
	ttf.Quit()
}

func NewTTFConverter(cacheSize int) *TTFConverter {
	c := &TTFConverter{
		open:  ttf.OpenFont,
		close: (*ttf.Font).Close,
	}
	c.cache = internal.NewCacheWithSize(cacheSize, c.retire)
	return c
}

func (c *TTFConverter) retire(f *ttf.Font) {
	if f != nil {
		c.retired = append(c.retired, f)
	}
}

func (c *TTFConverter) Convert(font *values.BitmapFont) (any, error) {
	if font == nil {
		return nil, nil
	}
	if font.Path == "" {
		return nil, ErrNoFont
	}

	key := font.Key()
	if f, ok := c.cache.Get(key); ok {
		return f, nil
	}

	f, err := c.open(font.Path, font.Size)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", key, err)
	}
	internal.GetInternalLogger().Debug("Opened theme font", "font", key)

	c.cache.Set(key, f)
	return f, nil
}

// Close closes every font the converter has opened. Fonts it returned must
// no longer be used.
func (c *TTFConverter) Close() {
	c.cache.Purge()
	for _, f := range c.retired {
		c.close(f)
	}
	c.retired = nil
}
