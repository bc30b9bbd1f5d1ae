package elements

import "github.com/BrandonKowalski/themer/pkg/themer/element"

func init() {
	element.Register(func() element.Element { return NewGlobalStyle() })
	element.Register(func() element.Element { return NewLabel() })
	element.Register(func() element.Element { return NewTitle() })
	element.Register(func() element.Element { return NewTooltip() })
	element.Register(func() element.Element { return NewButton() })
	element.Register(func() element.Element { return NewTextField() })
	element.Register(func() element.Element { return NewCheckbox() })
	element.Register(func() element.Element { return NewSlider() })
	element.Register(func() element.Element { return NewSliderThumb() })
	element.Register(func() element.Element { return NewListBox() })
	element.Register(func() element.Element { return NewContainer() })
}
