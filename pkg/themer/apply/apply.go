// Package apply pushes a theme's element descriptions into a style store.
package apply

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/BrandonKowalski/themer/pkg/themer/constants"
	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/fonts"
	"github.com/BrandonKowalski/themer/pkg/themer/internal"
	"github.com/BrandonKowalski/themer/pkg/themer/style"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

// ErrNoFontConverter is reported for font fields when no converter is set.
var ErrNoFontConverter = errors.New("no font converter configured")

// Applicator writes theme attributes into Styles.
type Applicator struct {
	Styles style.Styles
	Fonts  fonts.Converter // converts *values.BitmapFont fields; nil skips them
	Logger *slog.Logger
}

// Report counts what one Apply call did.
type Report struct {
	Elements   int // element descriptions applied
	Attributes int // attribute writes, including shadow unsets
	Skipped    int // fields that could not be read or converted
}

// ResolveScope returns the style scope an element's attributes go to: the
// theme's root scope for an empty element id, otherwise the element scope,
// narrowed to the child when a child id is set.
func ResolveScope(el element.Element, themeName string) style.Scope {
	switch {
	case el.ElementID() == "":
		return style.Scope{Style: themeName}
	case el.ChildID() == "":
		return style.Scope{ElementID: el.ElementID(), Style: themeName}
	default:
		return style.Scope{ElementID: el.ElementID(), ChildID: el.ChildID(), Style: themeName}
	}
}

// Apply writes every property of every element in t, then makes t's name
// the default style group. Fields that cannot be read or converted are
// logged and skipped. Widgets that already exist are not restyled.
func (a *Applicator) Apply(t *theme.Theme) Report {
	logger := internal.LoggerOr(a.Logger)

	var report Report
	if a.Styles == nil {
		logger.Error("Cannot apply theme without a style store", "theme", t.Name)
		return report
	}

	for _, key := range t.Keys() {
		el := t.Elements[key]
		scope := ResolveScope(el, t.Name)
		attrs := a.Styles.Selector(scope)

		logger.Debug("Applying theme element", "element", key, "scope", scope.String())

		a.applyElement(key, el, attrs, logger, &report)
		report.Elements++
	}

	a.Styles.SetDefaultStyle(t.Name)

	logger.Debug("Applied theme",
		"theme", t.Name,
		"elements", report.Elements,
		"attributes", report.Attributes,
		"skipped", report.Skipped)

	return report
}

func (a *Applicator) applyElement(key string, el element.Element, attrs style.Attributes, logger *slog.Logger, report *Report) {
	props := element.Properties(el)
	shadow := shadowEnabled(key, props, logger)
	shadowCleared := false

	for _, p := range props {
		if p.Err != nil {
			logger.Warn("Skipping unreadable theme field", "element", key, "field", p.Name, "error", p.Err)
			report.Skipped++
			continue
		}

		if !shadow && (p.Name == constants.ShadowColorKey || p.Name == constants.ShadowOffsetKey) {
			// Disabling the shadow must clear both attributes, whichever
			// of the two fields comes first.
			if !shadowCleared {
				attrs.Set(constants.ShadowColorKey, nil)
				attrs.Set(constants.ShadowOffsetKey, nil)
				report.Attributes += 2
				shadowCleared = true
			}
			continue
		}

		value := p.Value
		if font, ok := value.(*values.BitmapFont); ok {
			converted, err := a.convertFont(font)
			if err != nil {
				logger.Warn("Skipping theme font", "element", key, "field", p.Name,
					"error", &element.FieldAccessError{Element: key, Field: p.Name, Err: err})
				report.Skipped++
				continue
			}
			value = converted
		}

		logger.Debug("Setting theme attribute", "element", key, "field", p.Name, "value", value)
		attrs.Set(p.Name, unsetIfNil(value))
		report.Attributes++
	}
}

func (a *Applicator) convertFont(font *values.BitmapFont) (any, error) {
	if font == nil {
		return nil, nil
	}
	if a.Fonts == nil {
		return nil, ErrNoFontConverter
	}
	return a.Fonts.Convert(font)
}

// shadowEnabled reports whether the element has a textShadow field set to
// true.
func shadowEnabled(key string, props []element.Property, logger *slog.Logger) bool {
	for _, p := range props {
		if p.Name != constants.TextShadowKey {
			continue
		}
		if p.Err != nil {
			logger.Error("Unable to determine textShadow value", "element", key, "error", p.Err)
			return false
		}
		enabled, _ := p.Value.(bool)
		return enabled
	}
	return false
}

// unsetIfNil turns typed nil pointers into the store's untyped nil.
func unsetIfNil(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}
