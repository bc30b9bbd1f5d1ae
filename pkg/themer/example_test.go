package themer_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BrandonKowalski/themer/pkg/themer"
	"github.com/BrandonKowalski/themer/pkg/themer/elements"
	"github.com/BrandonKowalski/themer/pkg/themer/style"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

// Example of loading a theme, creating it if needed, and tweaking it.
func Example() {
	dir, _ := os.MkdirTemp("", "themer")
	defer os.RemoveAll(dir)

	store := style.NewRegistry()
	t := themer.New(themer.Options{
		Styles:           store,
		DefaultThemeName: "glass",
	})

	if err := t.SetTheme(filepath.Join(dir, "glass.json")); err != nil {
		fmt.Println("error:", err)
		return
	}

	el, _ := t.ActiveTheme().Get("Button")
	el.(*elements.Button).FontSize = 20
	t.ApplyTheme()

	attrs, _ := store.Lookup(style.Scope{ElementID: "button", Style: "glass"})
	size, _ := attrs.Get("fontSize")
	fmt.Println(store.DefaultStyle(), size)

	// Output: glass 20
}

// Example of detecting a theme file that could not be parsed.
func ExampleIsFormatError() {
	dir, _ := os.MkdirTemp("", "themer")
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "broken.json")
	os.WriteFile(path, []byte("{"), 0644)

	t := themer.New(themer.Options{Styles: style.NewRegistry()})
	err := t.SetTheme(path)

	fmt.Println(themer.IsFormatError(err), t.ActiveTheme() == nil)

	// Output: true true
}

func ExampleThemer_SaveActiveTheme() {
	dir, _ := os.MkdirTemp("", "themer")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "dark.json")

	t := themer.New(themer.Options{Styles: style.NewRegistry(), DefaultThemeName: "dark"})
	t.SetTheme(path)

	el, _ := t.ActiveTheme().Get("GlobalStyle")
	el.(*elements.GlobalStyle).Color = values.HexColor(0x202020)
	t.SaveActiveTheme()

	again := themer.New(themer.Options{Styles: style.NewRegistry()})
	again.SetTheme(path)
	el, _ = again.ActiveTheme().Get("GlobalStyle")
	fmt.Println(el.(*elements.GlobalStyle).Color.Hex())

	// Output: #202020
}
