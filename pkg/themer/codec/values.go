package codec

import (
	"github.com/BrandonKowalski/themer/pkg/themer/constants"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

// Wire keys of the composite value objects.
const (
	KeyTexture       = "textureRef"
	KeyColor         = "color"
	KeyAlpha         = "alpha"
	KeyMargin        = "margin"
	KeyZOffset       = "zOffset"
	KeyLit           = "lit"
	KeyImageSize     = "imageSize"
	KeyBorderOffsets = "borderOffsets"
	KeySize          = "size"
	KeyHAlignment    = "hAlignment"
	KeyVAlignment    = "vAlignment"
	KeyPath          = "path"
)

func EncodeColor(c values.Color) []any {
	return []any{wireFloat(c.R), wireFloat(c.G), wireFloat(c.B), wireFloat(c.A)}
}

func DecodeColor(field string, v any) (values.Color, error) {
	f, err := floats(field, v, 4)
	if err != nil {
		return values.Color{}, err
	}
	return values.Color{R: f[0], G: f[1], B: f[2], A: f[3]}, nil
}

func EncodeVec2(v values.Vec2) []any {
	return []any{wireFloat(v.X), wireFloat(v.Y)}
}

func DecodeVec2(field string, v any) (values.Vec2, error) {
	f, err := floats(field, v, 2)
	if err != nil {
		return values.Vec2{}, err
	}
	return values.Vec2{X: f[0], Y: f[1]}, nil
}

func EncodeVec3(v values.Vec3) []any {
	return []any{wireFloat(v.X), wireFloat(v.Y), wireFloat(v.Z)}
}

func DecodeVec3(field string, v any) (values.Vec3, error) {
	f, err := floats(field, v, 3)
	if err != nil {
		return values.Vec3{}, err
	}
	return values.Vec3{X: f[0], Y: f[1], Z: f[2]}, nil
}

// EncodeInsets writes [top, right, bottom, left].
func EncodeInsets(in values.Insets) []any {
	return []any{wireFloat(in.Top), wireFloat(in.Right), wireFloat(in.Bottom), wireFloat(in.Left)}
}

// DecodeInsets accepts [top, right, bottom, left] or an object with all four
// sides named.
func DecodeInsets(field string, v any) (values.Insets, error) {
	if obj, ok := asObject(v); ok {
		var sides [4]float32
		for i, key := range [4]string{"top", "right", "bottom", "left"} {
			f, err := requireFloat(field, obj, key)
			if err != nil {
				return values.Insets{}, err
			}
			sides[i] = f
		}
		return values.Insets{Top: sides[0], Right: sides[1], Bottom: sides[2], Left: sides[3]}, nil
	}

	f, err := floats(field, v, 4)
	if err != nil {
		return values.Insets{}, err
	}
	return values.Insets{Top: f[0], Right: f[1], Bottom: f[2], Left: f[3]}, nil
}

func textureRef(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// EncodeQuadBackground returns nil for a nil background.
func EncodeQuadBackground(q *values.QuadBackground) any {
	if q == nil {
		return nil
	}
	return map[string]any{
		KeyColor:   EncodeColor(q.Color),
		KeyTexture: textureRef(q.Texture),
		KeyAlpha:   wireFloat(q.Alpha),
		KeyMargin:  EncodeVec2(q.Margin),
		KeyZOffset: wireFloat(q.ZOffset),
		KeyLit:     q.Lit,
	}
}

// DecodeQuadBackground decodes a flat background. A null value is a nil
// background; a missing or null texture reference means no texture.
func DecodeQuadBackground(field string, v any) (*values.QuadBackground, error) {
	if v == nil {
		return nil, nil
	}
	obj, err := object(field, v)
	if err != nil {
		return nil, err
	}

	q := &values.QuadBackground{}
	if q.Texture, err = optionalString(field, obj, KeyTexture); err != nil {
		return nil, err
	}
	if q.Color, err = decodeColorKey(field, obj); err != nil {
		return nil, err
	}
	if q.Alpha, err = requireFloat(field, obj, KeyAlpha); err != nil {
		return nil, err
	}
	if q.Margin, err = decodeMarginKey(field, obj); err != nil {
		return nil, err
	}
	if q.ZOffset, err = requireFloat(field, obj, KeyZOffset); err != nil {
		return nil, err
	}
	if q.Lit, err = requireBool(field, obj, KeyLit); err != nil {
		return nil, err
	}
	return q, nil
}

// EncodeTbtQuadBackground stores the image size and the four border offsets;
// patch rectangles are not written.
func EncodeTbtQuadBackground(t *values.TbtQuadBackground) any {
	if t == nil {
		return nil
	}
	return map[string]any{
		KeyTexture:       textureRef(t.Texture),
		KeyImageSize:     []any{int64(t.ImageWidth), int64(t.ImageHeight)},
		KeyBorderOffsets: []any{int64(t.X1), int64(t.Y1), int64(t.X2), int64(t.Y2)},
		KeyColor:         EncodeColor(t.Color),
		KeyAlpha:         wireFloat(t.Alpha),
		KeyMargin:        EncodeVec2(t.Margin),
		KeyZOffset:       wireFloat(t.ZOffset),
		KeyLit:           t.Lit,
	}
}

// DecodeTbtQuadBackground rebuilds a nine-slice background from its image
// size and border offsets.
func DecodeTbtQuadBackground(field string, v any) (*values.TbtQuadBackground, error) {
	if v == nil {
		return nil, nil
	}
	obj, err := object(field, v)
	if err != nil {
		return nil, err
	}

	texture, err := optionalString(field, obj, KeyTexture)
	if err != nil {
		return nil, err
	}

	raw, err := requireKey(field, obj, KeyImageSize)
	if err != nil {
		return nil, err
	}
	size, err := ints(field+"."+KeyImageSize, raw, 2)
	if err != nil {
		return nil, err
	}

	raw, err = requireKey(field, obj, KeyBorderOffsets)
	if err != nil {
		return nil, err
	}
	offsets, err := ints(field+"."+KeyBorderOffsets, raw, 4)
	if err != nil {
		return nil, err
	}

	t := &values.TbtQuadBackground{
		Texture:     texture,
		ImageWidth:  size[0],
		ImageHeight: size[1],
		X1:          offsets[0],
		Y1:          offsets[1],
		X2:          offsets[2],
		Y2:          offsets[3],
	}
	if err := t.Validate(); err != nil {
		return nil, &ValueError{Field: field + "." + KeyBorderOffsets, Want: "offsets within the image", Got: raw, Err: ErrMalformedValue}
	}

	if t.Color, err = decodeColorKey(field, obj); err != nil {
		return nil, err
	}
	if t.Alpha, err = requireFloat(field, obj, KeyAlpha); err != nil {
		return nil, err
	}
	if t.Margin, err = decodeMarginKey(field, obj); err != nil {
		return nil, err
	}
	if t.ZOffset, err = requireFloat(field, obj, KeyZOffset); err != nil {
		return nil, err
	}
	if t.Lit, err = requireBool(field, obj, KeyLit); err != nil {
		return nil, err
	}
	return t, nil
}

// EncodeIcon writes a null texture reference for an icon without texture,
// which decodes back to a nil icon.
func EncodeIcon(icon *values.Icon) any {
	if icon == nil {
		return nil
	}
	var ref any
	if icon.Texture != "" {
		ref = icon.Texture
	}
	return map[string]any{
		KeyTexture:    ref,
		KeySize:       EncodeVec2(icon.Size),
		KeyMargin:     EncodeVec2(icon.Margin),
		KeyHAlignment: icon.HAlign.GetName(),
		KeyVAlignment: icon.VAlign.GetName(),
		KeyColor:      EncodeColor(icon.Color),
		KeyZOffset:    wireFloat(icon.ZOffset),
		KeyLit:        icon.Lit,
	}
}

// DecodeIcon returns a nil icon, not an error, when the texture reference is
// missing or null.
func DecodeIcon(field string, v any) (*values.Icon, error) {
	if v == nil {
		return nil, nil
	}
	obj, err := object(field, v)
	if err != nil {
		return nil, err
	}

	texture, err := optionalString(field, obj, KeyTexture)
	if err != nil {
		return nil, err
	}
	if texture == nil || *texture == "" {
		return nil, nil
	}

	icon := &values.Icon{Texture: *texture}

	raw, err := requireKey(field, obj, KeySize)
	if err != nil {
		return nil, err
	}
	if icon.Size, err = DecodeVec2(field+"."+KeySize, raw); err != nil {
		return nil, err
	}
	if icon.Margin, err = decodeMarginKey(field, obj); err != nil {
		return nil, err
	}

	raw, err = requireKey(field, obj, KeyHAlignment)
	if err != nil {
		return nil, err
	}
	name, _ := raw.(string)
	h, ok := constants.ParseHAlignment(name)
	if !ok {
		return nil, malformed(field+"."+KeyHAlignment, "Left, Center or Right", raw)
	}
	icon.HAlign = h

	raw, err = requireKey(field, obj, KeyVAlignment)
	if err != nil {
		return nil, err
	}
	name, _ = raw.(string)
	va, ok := constants.ParseVAlignment(name)
	if !ok {
		return nil, malformed(field+"."+KeyVAlignment, "Top, Center or Bottom", raw)
	}
	icon.VAlign = va

	if icon.Color, err = decodeColorKey(field, obj); err != nil {
		return nil, err
	}
	if icon.ZOffset, err = requireFloat(field, obj, KeyZOffset); err != nil {
		return nil, err
	}
	if icon.Lit, err = requireBool(field, obj, KeyLit); err != nil {
		return nil, err
	}
	return icon, nil
}

func EncodeBitmapFont(f *values.BitmapFont) any {
	if f == nil {
		return nil
	}
	return map[string]any{
		KeyPath: f.Path,
		KeySize: int64(f.Size),
	}
}

func DecodeBitmapFont(field string, v any) (*values.BitmapFont, error) {
	if v == nil {
		return nil, nil
	}
	obj, err := object(field, v)
	if err != nil {
		return nil, err
	}

	raw, err := requireKey(field, obj, KeyPath)
	if err != nil {
		return nil, err
	}
	path, ok := raw.(string)
	if !ok {
		return nil, malformed(field+"."+KeyPath, "string", raw)
	}

	raw, err = requireKey(field, obj, KeySize)
	if err != nil {
		return nil, err
	}
	size, ok := toInt(raw)
	if !ok || size < 0 {
		return nil, malformed(field+"."+KeySize, "non-negative integer", raw)
	}
	return &values.BitmapFont{Path: path, Size: int(size)}, nil
}

func decodeColorKey(field string, obj map[string]any) (values.Color, error) {
	raw, err := requireKey(field, obj, KeyColor)
	if err != nil {
		return values.Color{}, err
	}
	return DecodeColor(field+"."+KeyColor, raw)
}

func decodeMarginKey(field string, obj map[string]any) (values.Vec2, error) {
	raw, err := requireKey(field, obj, KeyMargin)
	if err != nil {
		return values.Vec2{}, err
	}
	return DecodeVec2(field+"."+KeyMargin, raw)
}
