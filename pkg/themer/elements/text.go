package elements

import (
	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

// TextStyle is the shared shape of every element that renders text.
type TextStyle struct {
	Font         *values.BitmapFont `style:"font"`
	FontSize     float32            `style:"fontSize"`
	Color        values.Color       `style:"color"`
	TextShadow   bool               `style:"textShadow"`
	ShadowColor  values.Color       `style:"shadowColor"`
	ShadowOffset values.Vec3        `style:"shadowOffset"`
}

func defaultTextStyle(color values.Color) TextStyle {
	return TextStyle{
		FontSize:     17,
		Color:        color,
		TextShadow:   true,
		ShadowColor:  values.NewColor(0, 0, 0, 0.75),
		ShadowOffset: values.Vec3{X: 1, Y: -1, Z: -1},
	}
}

// GlobalStyle holds the theme-wide defaults applied to the root scope.
type GlobalStyle struct {
	element.Base
	TextStyle
}

func NewGlobalStyle() *GlobalStyle {
	return &GlobalStyle{
		TextStyle: defaultTextStyle(values.NewColor(0.5, 0.75, 0.75, 0.85)),
	}
}

type Label struct {
	element.Base
	TextStyle
	Insets     values.Insets          `style:"insets"`
	Background *values.QuadBackground `style:"background"`
}

func NewLabel() *Label {
	return &Label{
		Base:      element.Base{ID: "label"},
		TextStyle: defaultTextStyle(values.NewColor(0.5, 0.75, 0.75, 0.85)),
		Insets:    values.UniformInsets(2),
	}
}

type Title struct {
	element.Base
	TextStyle
	Insets      values.Insets             `style:"insets"`
	Background  *values.TbtQuadBackground `style:"background"`
	TextHAlign  string                    `style:"textHAlignment"`
	Highlighted bool                      `style:"highlighted"`
}

func NewTitle() *Title {
	bg := values.NewTbtQuadBackground(gradientTexture, 128, 128, 1, 1, 126, 126)
	bg.Color = values.NewColor(0.5, 0.75, 0.85, 0.5)

	return &Title{
		Base:       element.Base{ID: "title"},
		TextStyle:  defaultTextStyle(values.NewColor(0.8, 0.9, 1, 0.85)),
		Insets:     values.Insets{Top: 2, Right: 2, Bottom: 2, Left: 2},
		Background: bg,
		TextHAlign: "Center",
	}
}

type Tooltip struct {
	element.Base
	TextStyle
	Insets     values.Insets          `style:"insets"`
	Background *values.QuadBackground `style:"background"`
	Delay      float32                `style:"delay"`
}

func NewTooltip() *Tooltip {
	bg := values.NewQuadBackground(values.NewColor(0.1, 0.1, 0.15, 0.9))
	bg.Margin = values.Vec2{X: 4, Y: 2}

	style := defaultTextStyle(values.White)
	style.TextShadow = false

	return &Tooltip{
		Base:       element.Base{ID: "tooltip"},
		TextStyle:  style,
		Insets:     values.UniformInsets(4),
		Background: bg,
		Delay:      0.5,
	}
}

// Typography returns the embedded text style so palettes can restyle any
// text-bearing variant.
func (s *TextStyle) Typography() *TextStyle {
	return s
}
