package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/BrandonKowalski/themer/pkg/themer/constants"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// viaJSON pushes a wire value through encoding/json, as a theme file would.
func viaJSON(t *testing.T, v any) any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestColorRoundTrip(t *testing.T) {
	c := values.NewColor(0.8, 0.1, 0.25, 0.85)
	wire := viaJSON(t, EncodeColor(c))
	assert.Equal(t, []any{0.8, 0.1, 0.25, 0.85}, wire)

	got, err := DecodeColor("color", wire)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestColorArity(t *testing.T) {
	_, err := DecodeColor("color", []any{1.0, 1.0, 1.0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedValue)

	var ve *ValueError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "color", ve.Field)
	assert.Equal(t, "4 numbers", ve.Want)
	assert.Contains(t, err.Error(), "array of 3")

	_, err = DecodeColor("color", []any{1.0, "x", 1.0, 1.0})
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = DecodeColor("color", nil)
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestVectorsRoundTrip(t *testing.T) {
	v3 := values.Vec3{X: 1, Y: -1, Z: -1}
	got3, err := DecodeVec3("shadowOffset", viaJSON(t, EncodeVec3(v3)))
	require.NoError(t, err)
	assert.Equal(t, v3, got3)

	_, err = DecodeVec3("shadowOffset", []any{1.0, 2.0})
	assert.ErrorIs(t, err, ErrMalformedValue)

	v2 := values.Vec2{X: 16, Y: 0.5}
	got2, err := DecodeVec2("size", viaJSON(t, EncodeVec2(v2)))
	require.NoError(t, err)
	assert.Equal(t, v2, got2)
}

func TestInsets(t *testing.T) {
	in := values.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	wire := viaJSON(t, EncodeInsets(in))
	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0}, wire)

	got, err := DecodeInsets("insets", wire)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	named := map[string]any{"top": 1.0, "right": 2.0, "bottom": 3.0, "left": 4.0}
	got, err = DecodeInsets("insets", named)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	delete(named, "left")
	_, err = DecodeInsets("insets", named)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insets.left")
}

func TestQuadBackgroundRoundTrip(t *testing.T) {
	ref := "Interface/tile.png"
	q := &values.QuadBackground{
		Color:   values.NewColor(0.25, 0.5, 0.5, 0.5),
		Texture: &ref,
		Alpha:   1,
		Margin:  values.Vec2{X: 2, Y: 2},
		ZOffset: 0.01,
		Lit:     true,
	}

	got, err := DecodeQuadBackground("background", viaJSON(t, EncodeQuadBackground(q)))
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestQuadBackgroundToleratesMissingTexture(t *testing.T) {
	wire := map[string]any{
		"color":   []any{1.0, 1.0, 1.0, 1.0},
		"alpha":   1.0,
		"margin":  []any{0.0, 0.0},
		"zOffset": 0.0,
		"lit":     false,
	}

	got, err := DecodeQuadBackground("background", wire)
	require.NoError(t, err)
	assert.Nil(t, got.Texture)
	assert.False(t, got.HasTexture())

	wire[KeyTexture] = nil
	got, err = DecodeQuadBackground("background", wire)
	require.NoError(t, err)
	assert.Nil(t, got.Texture)

	delete(wire, "color")
	_, err = DecodeQuadBackground("background", wire)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "background.color")
}

func TestNilCompositesEncodeAsNull(t *testing.T) {
	assert.Nil(t, EncodeQuadBackground(nil))
	assert.Nil(t, EncodeTbtQuadBackground(nil))
	assert.Nil(t, EncodeIcon(nil))
	assert.Nil(t, EncodeBitmapFont(nil))

	q, err := DecodeQuadBackground("background", nil)
	assert.NoError(t, err)
	assert.Nil(t, q)
}

func TestTbtQuadBackgroundRebuildsPatches(t *testing.T) {
	bg := values.NewTbtQuadBackground("border.png", 128, 128, 1, 1, 126, 126)
	bg.Color = values.NewColor(0, 0.75, 0.75, 0.5)
	bg.Margin = values.Vec2{X: 8, Y: 8}

	wire := viaJSON(t, EncodeTbtQuadBackground(bg))
	obj := wire.(map[string]any)
	assert.Equal(t, []any{1.0, 1.0, 126.0, 126.0}, obj[KeyBorderOffsets])
	assert.NotContains(t, obj, "patches")

	got, err := DecodeTbtQuadBackground("background", wire)
	require.NoError(t, err)
	assert.Equal(t, bg, got)
	assert.Equal(t, bg.Patches(), got.Patches())
}

func TestTbtQuadBackgroundRejectsBadOffsets(t *testing.T) {
	bg := values.NewTbtQuadBackground("border.png", 16, 16, 1, 1, 15, 15)
	wire := viaJSON(t, EncodeTbtQuadBackground(bg)).(map[string]any)

	wire[KeyBorderOffsets] = []any{1.0, 1.0, 15.0}
	_, err := DecodeTbtQuadBackground("background", wire)
	assert.ErrorIs(t, err, ErrMalformedValue)

	wire[KeyBorderOffsets] = []any{10.0, 1.0, 5.0, 15.0}
	_, err = DecodeTbtQuadBackground("background", wire)
	assert.ErrorIs(t, err, ErrMalformedValue)

	wire[KeyBorderOffsets] = []any{1.5, 1.0, 15.0, 15.0}
	_, err = DecodeTbtQuadBackground("background", wire)
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestIconRoundTrip(t *testing.T) {
	icon := values.NewIcon("check-on.png", values.Vec2{X: 16, Y: 16})
	icon.Margin = values.Vec2{X: 5, Y: 0}
	icon.HAlign = constants.HAlignRight
	icon.VAlign = constants.VAlignBottom

	wire := viaJSON(t, EncodeIcon(icon))
	assert.Equal(t, "Right", wire.(map[string]any)[KeyHAlignment])

	got, err := DecodeIcon("onView", wire)
	require.NoError(t, err)
	assert.Equal(t, icon, got)
}

func TestIconWithoutTextureIsNil(t *testing.T) {
	got, err := DecodeIcon("onView", map[string]any{"size": []any{16.0, 16.0}})
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = DecodeIcon("onView", map[string]any{KeyTexture: nil})
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = DecodeIcon("onView", EncodeIcon(&values.Icon{}))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestIconRejectsUnknownAlignment(t *testing.T) {
	wire := EncodeIcon(values.NewIcon("a.png", values.Vec2{X: 1, Y: 1})).(map[string]any)
	wire[KeyVAlignment] = "Middle"

	_, err := DecodeIcon("onView", wire)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "onView.vAlignment")
}

func TestBitmapFont(t *testing.T) {
	f := &values.BitmapFont{Path: "Interface/Fonts/Console.fnt", Size: 14}
	got, err := DecodeBitmapFont("font", viaJSON(t, EncodeBitmapFont(f)))
	require.NoError(t, err)
	assert.Equal(t, f, got)

	_, err = DecodeBitmapFont("font", map[string]any{"path": "x.fnt"})
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestNumbersFromOtherFormats(t *testing.T) {
	// TOML yields int64, msgpack any width.
	c, err := DecodeColor("color", []any{int64(1), int8(0), uint16(1), float32(0.5)})
	require.NoError(t, err)
	assert.Equal(t, values.NewColor(1, 0, 1, 0.5), c)

	in, err := DecodeInsets("insets", []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, values.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}, in)
}
