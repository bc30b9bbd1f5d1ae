package elements

import (
	"github.com/BrandonKowalski/themer/pkg/themer/constants"
	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

const (
	gradientTexture = "Interface/themes/glass/bordered-gradient.png"
	checkOnTexture  = "Interface/themes/glass/check-on.png"
	checkOffTexture = "Interface/themes/glass/check-off.png"
)

type Button struct {
	element.Base
	TextStyle
	Insets         values.Insets             `style:"insets"`
	Background     *values.TbtQuadBackground `style:"background"`
	HighlightColor values.Color              `style:"highlightColor"`
	FocusColor     values.Color              `style:"focusColor"`
}

func NewButton() *Button {
	bg := values.NewTbtQuadBackground(gradientTexture, 128, 128, 1, 1, 126, 126)
	bg.Color = values.NewColor(0, 0.75, 0.75, 0.5)
	bg.Margin = values.Vec2{X: 8, Y: 8}

	return &Button{
		Base:           element.Base{ID: "button"},
		TextStyle:      defaultTextStyle(values.NewColor(0.8, 0.9, 1, 0.85)),
		Insets:         values.UniformInsets(2),
		Background:     bg,
		HighlightColor: values.NewColor(1, 0.8, 1, 0.85),
		FocusColor:     values.NewColor(1, 1, 0, 0.85),
	}
}

type TextField struct {
	element.Base
	TextStyle
	Insets         values.Insets          `style:"insets"`
	Background     *values.QuadBackground `style:"background"`
	SingleLine     bool                   `style:"singleLine"`
	PreferredWidth float32                `style:"preferredWidth"`
}

func NewTextField() *TextField {
	bg := values.NewQuadBackground(values.NewColor(0.25, 0.5, 0.5, 0.5))
	bg.Margin = values.Vec2{X: 2, Y: 2}

	style := defaultTextStyle(values.NewColor(0.75, 0.75, 0.85, 1))
	style.TextShadow = false

	return &TextField{
		Base:           element.Base{ID: "textField"},
		TextStyle:      style,
		Insets:         values.UniformInsets(1),
		Background:     bg,
		SingleLine:     true,
		PreferredWidth: 200,
	}
}

type Checkbox struct {
	element.Base
	TextStyle
	OnView  *values.Icon `style:"onView"`
	OffView *values.Icon `style:"offView"`
}

func NewCheckbox() *Checkbox {
	on := values.NewIcon(checkOnTexture, values.Vec2{X: 16, Y: 16})
	on.Margin = values.Vec2{X: 5, Y: 0}
	on.Color = values.NewColor(0.5, 0.9, 0.9, 0.9)

	off := values.NewIcon(checkOffTexture, values.Vec2{X: 16, Y: 16})
	off.Margin = values.Vec2{X: 5, Y: 0}
	off.Color = values.NewColor(0.6, 0.8, 0.8, 0.8)
	off.VAlign = constants.VAlignCenter

	return &Checkbox{
		Base:      element.Base{ID: "checkbox"},
		TextStyle: defaultTextStyle(values.NewColor(0.8, 0.9, 1, 0.85)),
		OnView:    on,
		OffView:   off,
	}
}

type Slider struct {
	element.Base
	Insets     values.Insets          `style:"insets"`
	Background *values.QuadBackground `style:"background"`
	Delta      float32                `style:"delta"`
}

func NewSlider() *Slider {
	return &Slider{
		Base:       element.Base{ID: "slider"},
		Insets:     values.Insets{Top: 1, Right: 3, Bottom: 1, Left: 2},
		Background: values.NewQuadBackground(values.NewColor(0.25, 0.5, 0.5, 0.5)),
		Delta:      1,
	}
}

// SliderThumb styles the draggable button inside a slider.
type SliderThumb struct {
	element.Base
	TextStyle
	Text string `style:"text"`
}

func NewSliderThumb() *SliderThumb {
	return &SliderThumb{
		Base:      element.Base{ID: "slider", Child: "thumb.button"},
		TextStyle: defaultTextStyle(values.NewColor(0.6, 0.8, 0.8, 0.85)),
		Text:      "[]",
	}
}

type ListBox struct {
	element.Base
	Background     *values.TbtQuadBackground `style:"background"`
	SelectionColor values.Color              `style:"selectionColor"`
	VisibleItems   int                       `style:"visibleItems"`
}

func NewListBox() *ListBox {
	bg := values.NewTbtQuadBackground(gradientTexture, 128, 128, 1, 1, 126, 126)
	bg.Color = values.NewColor(0.25, 0.5, 0.5, 0.5)

	return &ListBox{
		Base:           element.Base{ID: "list"},
		Background:     bg,
		SelectionColor: values.NewColor(0.4, 0.6, 1, 0.6),
		VisibleItems:   10,
	}
}

type Container struct {
	element.Base
	Insets     values.Insets             `style:"insets"`
	Background *values.TbtQuadBackground `style:"background"`
}

func NewContainer() *Container {
	bg := values.NewTbtQuadBackground(gradientTexture, 128, 128, 1, 1, 126, 126)
	bg.Color = values.NewColor(0.25, 0.5, 0.5, 0.5)

	return &Container{
		Base:       element.Base{ID: "container"},
		Insets:     values.UniformInsets(0),
		Background: bg,
	}
}
