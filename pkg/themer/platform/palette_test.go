package platform_test

import (
	"testing"

	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/elements"
	"github.com/BrandonKowalski/themer/pkg/themer/platform/cannoli"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Gauge struct {
	element.Base
	Color values.Color `style:"color"`
}

func TestCannoliPalette(t *testing.T) {
	th := theme.FromElements("cannoli", element.Default.Discover())
	th.Put(&Gauge{Base: element.Base{ID: "gauge"}, Color: values.Black})

	changed := cannoli.Palette(cannoli.DefaultFontPath).Apply(th)
	assert.Equal(t, th.Len()-1, changed, "unknown variants are left alone")

	el, ok := th.Get("Button")
	require.True(t, ok)
	button := el.(*elements.Button)
	assert.Equal(t, values.HexColor(0x008080), button.Background.Color)
	assert.Equal(t, values.Black, button.Color)
	require.NotNil(t, button.Font)
	assert.Equal(t, cannoli.DefaultFontPath+"@17", button.Font.Key())

	el, _ = th.Get("GlobalStyle")
	assert.Equal(t, values.White, el.(*elements.GlobalStyle).Color)

	el, _ = th.Get("Gauge")
	assert.Equal(t, values.Black, el.(*Gauge).Color)
}

func TestWithAccent(t *testing.T) {
	p := cannoli.Palette("")
	assert.Equal(t, values.HexColor(0x008080), p.WithAccent(0).AccentColor)
	assert.Equal(t, values.HexColor(0xFF8800), p.WithAccent(0xFF8800).AccentColor)

	th := theme.FromElements("cannoli", element.Default.Discover())
	p.Apply(th)
	el, _ := th.Get("Label")
	assert.Nil(t, el.(*elements.Label).Font, "an empty font path keeps theme fonts")
}
