package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/style"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
	"github.com/charmbracelet/lipgloss"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Faint(true)
)

func swatch(c values.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case values.Color:
		return swatch(t) + " " + t.String()
	case *values.QuadBackground:
		if t == nil {
			return "null"
		}
		return fmt.Sprintf("quad %s texture=%s", swatch(t.Color), textureName(t.Texture))
	case *values.TbtQuadBackground:
		if t == nil {
			return "null"
		}
		return fmt.Sprintf("nine-slice %s texture=%s %dx%d [%d,%d,%d,%d]",
			swatch(t.Color), textureName(t.Texture), t.ImageWidth, t.ImageHeight, t.X1, t.Y1, t.X2, t.Y2)
	case *values.Icon:
		if t == nil {
			return "null"
		}
		return fmt.Sprintf("icon %s %s %s/%s", t.Texture, t.Size, t.HAlign.GetName(), t.VAlign.GetName())
	case *values.BitmapFont:
		if t == nil {
			return "null"
		}
		return fmt.Sprintf("font %s", t.Key())
	case *ttf.Font:
		if t == nil {
			return "null"
		}
		return fmt.Sprintf("ttf %s %s height=%d", t.FaceFamilyName(), t.FaceStyleName(), t.Height())
	default:
		return fmt.Sprintf("%v", v)
	}
}

func textureName(ref *string) string {
	if ref == nil {
		return "none"
	}
	return *ref
}

func formatRect(r sdl.Rect) string {
	return fmt.Sprintf("%dx%d@%d,%d", r.W, r.H, r.X, r.Y)
}

// writeValue prints one attribute, followed by the derived nine-slice
// patches for tiled backgrounds.
func writeValue(w io.Writer, name string, v any) {
	fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(name), formatValue(v))

	bg, ok := v.(*values.TbtQuadBackground)
	if !ok || bg == nil {
		return
	}
	patches := bg.Patches()
	for row := 0; row < 3; row++ {
		fmt.Fprintf(w, "    %s %s %s %s\n", keyStyle.Render("patches"),
			formatRect(patches[row*3]), formatRect(patches[row*3+1]), formatRect(patches[row*3+2]))
	}
}

func renderTheme(w io.Writer, t *theme.Theme, result theme.LoadResult) {
	fmt.Fprintln(w, headerStyle.Render("Theme "+t.Name))
	if result.Created {
		fmt.Fprintln(w, "(created with defaults)")
	}
	if len(result.Added) > 0 {
		fmt.Fprintf(w, "(defaults added: %s)\n", strings.Join(result.Added, ", "))
	}

	for _, key := range t.Keys() {
		el := t.Elements[key]
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render(key))
		for _, p := range element.Properties(el) {
			if p.Err != nil {
				fmt.Fprintf(w, "  %s %v\n", keyStyle.Render(p.Name), p.Err)
				continue
			}
			writeValue(w, p.Name, p.Value)
		}
	}
}

func renderStyles(w io.Writer, styles *style.Registry) {
	fmt.Fprintf(w, "default style: %s\n", styles.DefaultStyle())
	for _, scope := range styles.Scopes() {
		set, _ := styles.Lookup(scope)
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render(scope.String()))
		for _, name := range set.Names() {
			v, _ := set.Get(name)
			writeValue(w, name, v)
		}
	}
}
