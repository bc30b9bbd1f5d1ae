package apply

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/fonts"
	"github.com/BrandonKowalski/themer/pkg/themer/style"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Root struct {
	element.Base
	Color values.Color `style:"color"`
}

type Label struct {
	element.Base
	Font         *values.BitmapFont     `style:"font"`
	FontSize     float32                `style:"fontSize"`
	ShadowColor  values.Color           `style:"shadowColor"`
	TextShadow   bool                   `style:"textShadow"`
	ShadowOffset *values.Vec3           `style:"shadowOffset"`
	Background   *values.QuadBackground `style:"background"`
}

type Thumb struct {
	element.Base
	Text string `style:"text"`
}

type Opaque struct {
	element.Base
	hidden *values.Color `style:"hidden"`
	Alpha  float32       `style:"alpha"`
}

// call records one attribute write.
type call struct {
	scope string
	name  string
	value any
}

// recorder is a Styles that keeps every write in order.
type recorder struct {
	calls        []call
	defaultStyle string
}

type recordingSet struct {
	r     *recorder
	scope style.Scope
}

func (s recordingSet) Set(name string, value any) {
	s.r.calls = append(s.r.calls, call{scope: s.scope.String(), name: name, value: value})
}

func (r *recorder) Selector(scope style.Scope) style.Attributes {
	return recordingSet{r: r, scope: scope}
}

func (r *recorder) SetDefaultStyle(s string) {
	r.defaultStyle = s
}

func (r *recorder) writes(name string) []call {
	var out []call
	for _, c := range r.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func newLabel(shadow bool) *Label {
	return &Label{
		Base:         element.Base{ID: "label"},
		FontSize:     17,
		ShadowColor:  values.Black,
		TextShadow:   shadow,
		ShadowOffset: &values.Vec3{X: 1, Y: -1, Z: -1},
	}
}

func TestResolveScope(t *testing.T) {
	assert.Equal(t, style.Scope{Style: "glass"},
		ResolveScope(&Root{}, "glass"))
	assert.Equal(t, style.Scope{ElementID: "label", Style: "glass"},
		ResolveScope(newLabel(false), "glass"))
	assert.Equal(t, style.Scope{ElementID: "slider", ChildID: "thumb.button", Style: "glass"},
		ResolveScope(&Thumb{Base: element.Base{ID: "slider", Child: "thumb.button"}}, "glass"))
}

func TestApplyWritesEveryProperty(t *testing.T) {
	th := theme.New("glass")
	th.Put(&Root{Color: values.White})
	th.Put(&Thumb{Base: element.Base{ID: "slider", Child: "thumb.button"}, Text: "[]"})

	store := style.NewRegistry()
	report := (&Applicator{Styles: store}).Apply(th)

	assert.Equal(t, Report{Elements: 2, Attributes: 2}, report)
	assert.Equal(t, "glass", store.DefaultStyle())

	root, ok := store.Lookup(style.Scope{Style: "glass"})
	require.True(t, ok)
	v, _ := root.Get("color")
	assert.Equal(t, values.White, v)
	assert.False(t, root.Has("elementId"), "identity is not a style attribute")

	thumb, ok := store.Lookup(style.Scope{ElementID: "slider", ChildID: "thumb.button", Style: "glass"})
	require.True(t, ok)
	v, _ = thumb.Get("text")
	assert.Equal(t, "[]", v)
}

func TestShadowDisabledClearsBothOnce(t *testing.T) {
	th := theme.New("glass")
	th.Put(newLabel(false))

	rec := &recorder{}
	report := (&Applicator{Styles: rec}).Apply(th)

	colors := rec.writes("shadowColor")
	offsets := rec.writes("shadowOffset")
	require.Len(t, colors, 1)
	require.Len(t, offsets, 1)
	assert.Nil(t, colors[0].value)
	assert.Nil(t, offsets[0].value)

	// font (nil), fontSize, textShadow, background (nil), plus the two unsets.
	assert.Equal(t, 6, report.Attributes)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, "glass", rec.defaultStyle)
}

func TestShadowEnabledWritesValues(t *testing.T) {
	th := theme.New("glass")
	th.Put(newLabel(true))

	rec := &recorder{}
	(&Applicator{Styles: rec}).Apply(th)

	colors := rec.writes("shadowColor")
	require.Len(t, colors, 1)
	assert.Equal(t, values.Black, colors[0].value)

	offsets := rec.writes("shadowOffset")
	require.Len(t, offsets, 1)
	assert.Equal(t, &values.Vec3{X: 1, Y: -1, Z: -1}, offsets[0].value)
}

func TestTypedNilBecomesUnset(t *testing.T) {
	th := theme.New("glass")
	th.Put(newLabel(true))

	rec := &recorder{}
	(&Applicator{Styles: rec}).Apply(th)

	bg := rec.writes("background")
	require.Len(t, bg, 1)
	assert.True(t, bg[0].value == nil, "got %#v", bg[0].value)
}

func TestFontConversion(t *testing.T) {
	label := newLabel(true)
	label.Font = &values.BitmapFont{Path: "Interface/Fonts/Default.fnt", Size: 17}

	th := theme.New("glass")
	th.Put(label)

	converted := fonts.ConverterFunc(func(f *values.BitmapFont) (any, error) {
		return "font:" + f.Key(), nil
	})

	store := style.NewRegistry()
	report := (&Applicator{Styles: store, Fonts: converted}).Apply(th)
	assert.Equal(t, 0, report.Skipped)

	set, _ := store.Lookup(style.Scope{ElementID: "label", Style: "glass"})
	v, _ := set.Get("font")
	assert.Equal(t, "font:Interface/Fonts/Default.fnt@17", v)
}

func TestFontSkippedWithoutConverter(t *testing.T) {
	label := newLabel(true)
	label.Font = &values.BitmapFont{Path: "Default.fnt", Size: 17}

	th := theme.New("glass")
	th.Put(label)

	store := style.NewRegistry()
	report := (&Applicator{Styles: store}).Apply(th)

	assert.Equal(t, 1, report.Skipped)
	set, _ := store.Lookup(style.Scope{ElementID: "label", Style: "glass"})
	assert.False(t, set.Has("font"))
	assert.True(t, set.Has("fontSize"), "other fields are still applied")
}

func TestFontConversionFailureSkipsField(t *testing.T) {
	label := newLabel(true)
	label.Font = &values.BitmapFont{Path: "missing.ttf", Size: 12}

	th := theme.New("glass")
	th.Put(label)

	failing := fonts.ConverterFunc(func(*values.BitmapFont) (any, error) {
		return nil, errors.New("no such font")
	})

	store := style.NewRegistry()
	report := (&Applicator{Styles: store, Fonts: failing}).Apply(th)

	assert.Equal(t, 1, report.Skipped)
	set, _ := store.Lookup(style.Scope{ElementID: "label", Style: "glass"})
	assert.False(t, set.Has("font"))
}

func TestUnreadableFieldSkipped(t *testing.T) {
	th := theme.New("glass")
	th.Put(&Opaque{Base: element.Base{ID: "opaque"}, Alpha: 0.5})

	store := style.NewRegistry()
	report := (&Applicator{Styles: store}).Apply(th)

	assert.Equal(t, Report{Elements: 1, Attributes: 1, Skipped: 1}, report)
	set, _ := store.Lookup(style.Scope{ElementID: "opaque", Style: "glass"})
	assert.Equal(t, []string{"alpha"}, set.Names())
}

func TestApplyWithoutStore(t *testing.T) {
	th := theme.New("glass")
	th.Put(&Root{})
	assert.Equal(t, Report{}, (&Applicator{}).Apply(th))
}
