// Package element defines themed element descriptions: structs whose tagged
// fields describe the styleable properties of one kind of widget or widget
// part. Variants register a factory with a Registry at init time; the
// registry hands out one default instance of each on discovery.
//
// A property field is an exported struct field tagged with its style key:
//
//	type Button struct {
//	    element.Base
//	    TextStyle
//	    Background *values.QuadBackground `style:"background"`
//	    Insets     values.Insets          `style:"insets"`
//	}
//
// Embedded structs other than Base are walked recursively, so shared shapes
// contribute their fields to every variant that embeds them. Tag values are
// used verbatim as attribute keys and as keys in theme files; renaming one
// breaks existing themes.
package element

import (
	"reflect"
)

// Element is implemented by every themed element description.
type Element interface {
	// ElementID is the style element id. Empty means the theme's root scope.
	ElementID() string
	// ChildID is the sub-element id. Empty means no sub-element.
	ChildID() string
}

// Base carries the identity attributes of an element description. Embed it
// in every variant.
type Base struct {
	ID    string
	Child string
}

func (b Base) ElementID() string {
	return b.ID
}

func (b Base) ChildID() string {
	return b.Child
}

var baseType = reflect.TypeOf(Base{})

// BaseOf returns a pointer to the Base embedded in el so its identity can be
// overwritten, or false if el does not embed Base directly.
func BaseOf(el Element) (*Base, bool) {
	v := reflect.ValueOf(el)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, false
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Type().Field(i)
		if f.Anonymous && f.Type == baseType {
			return v.Field(i).Addr().Interface().(*Base), true
		}
	}
	return nil, false
}

// TypeName returns the simple type name of el's variant, the key used for
// it in a theme's element map.
func TypeName(el Element) string {
	t := reflect.TypeOf(el)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
