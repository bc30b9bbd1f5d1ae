package codec

import (
	"testing"

	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textShape struct {
	Font        *values.BitmapFont `style:"font"`
	FontSize    float32            `style:"fontSize"`
	Color       values.Color       `style:"color"`
	TextShadow  bool               `style:"textShadow"`
	ShadowColor *values.Color      `style:"shadowColor"`
}

type panel struct {
	element.Base
	textShape
	Insets     values.Insets             `style:"insets"`
	Background *values.TbtQuadBackground `style:"background"`
	Icon       *values.Icon              `style:"icon"`
	Rows       int                       `style:"rows"`
	Opacity    float64                   `style:"opacity"`
	Flags      uint8                     `style:"flags"`
	Caption    string                    `style:"caption"`
}

func newPanel() *panel {
	shadow := values.NewColor(0, 0, 0, 0.75)
	return &panel{
		Base: element.Base{ID: "panel"},
		textShape: textShape{
			FontSize:    17,
			Color:       values.White,
			TextShadow:  true,
			ShadowColor: &shadow,
		},
		Insets:     values.UniformInsets(2),
		Background: values.NewTbtQuadBackground("border.png", 32, 32, 2, 2, 30, 30),
		Rows:       3,
		Opacity:    0.5,
		Flags:      4,
		Caption:    "Panel",
	}
}

func TestElementRoundTrip(t *testing.T) {
	p := newPanel()
	p.Font = &values.BitmapFont{Path: "Default.fnt", Size: 17}
	p.Icon = values.NewIcon("icon.png", values.Vec2{X: 8, Y: 8})
	p.Child = "body"

	doc, err := EncodeElement(p)
	require.NoError(t, err)

	assert.Equal(t, "panel", doc[KeyElementID])
	assert.Equal(t, "body", doc[KeyChildID])
	assert.Equal(t, int64(3), doc["rows"])
	assert.Equal(t, []any{1.0, 1.0, 1.0, 1.0}, doc["color"])

	wire := viaJSON(t, doc).(map[string]any)

	got := &panel{}
	unknown, err := DecodeElement(wire, got)
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, p, got)
}

func TestDecodeElementKeepsDefaultsForMissingFields(t *testing.T) {
	got := newPanel()
	unknown, err := DecodeElement(map[string]any{
		"caption": "Stored",
		"color":   []any{0.0, 0.0, 0.0, 1.0},
		"legacy":  true,
	}, got)
	require.NoError(t, err)

	assert.Equal(t, []string{"legacy"}, unknown)
	assert.Equal(t, "Stored", got.Caption)
	assert.Equal(t, values.Black, got.Color)
	assert.Equal(t, 3, got.Rows)
	assert.Equal(t, "panel", got.ElementID())
	require.NotNil(t, got.Background)
}

func TestDecodeElementNulls(t *testing.T) {
	got := newPanel()
	_, err := DecodeElement(map[string]any{
		"shadowColor": nil,
		"background":  nil,
	}, got)
	require.NoError(t, err)
	assert.Nil(t, got.ShadowColor)
	assert.Nil(t, got.Background)

	_, err = DecodeElement(map[string]any{"shadowColor": []any{0.5, 0.5, 0.5, 1.0}}, got)
	require.NoError(t, err)
	require.NotNil(t, got.ShadowColor)
	assert.Equal(t, values.NewColor(0.5, 0.5, 0.5, 1), *got.ShadowColor)
}

func TestDecodeElementEmptyObjectIsNil(t *testing.T) {
	got := newPanel()
	_, err := DecodeElement(map[string]any{
		"background":  map[string]any{},
		"shadowColor": map[string]any{},
	}, got)
	require.NoError(t, err)
	assert.Nil(t, got.Background)
	assert.Nil(t, got.ShadowColor)
}

func TestDecodeElementTypeErrors(t *testing.T) {
	cases := map[string]any{
		"rows":      "three",
		"opacity":   true,
		"flags":     300.0,
		"caption":   12.0,
		"insets":    []any{1.0},
		"elementId": 5.0,
	}
	for key, raw := range cases {
		_, err := DecodeElement(map[string]any{key: raw}, newPanel())
		assert.ErrorIs(t, err, ErrMalformedValue, key)
	}
}

type unsupported struct {
	element.Base
	Tags []string `style:"tags"`
}

func TestEncodeElementUnsupportedType(t *testing.T) {
	_, err := EncodeElement(&unsupported{Tags: []string{"a"}})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
