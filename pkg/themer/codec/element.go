package codec

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

// Identity keys written alongside an element's properties.
const (
	KeyElementID = "elementId"
	KeyChildID   = "childId"
)

var (
	colorType  = reflect.TypeOf(values.Color{})
	vec2Type   = reflect.TypeOf(values.Vec2{})
	vec3Type   = reflect.TypeOf(values.Vec3{})
	insetsType = reflect.TypeOf(values.Insets{})
	quadType   = reflect.TypeOf((*values.QuadBackground)(nil))
	tbtType    = reflect.TypeOf((*values.TbtQuadBackground)(nil))
	iconType   = reflect.TypeOf((*values.Icon)(nil))
	fontType   = reflect.TypeOf((*values.BitmapFont)(nil))
)

// EncodeElement converts el to its wire object: identity keys plus one
// entry per property field.
func EncodeElement(el element.Element) (map[string]any, error) {
	out := map[string]any{
		KeyElementID: el.ElementID(),
		KeyChildID:   el.ChildID(),
	}

	for _, p := range element.Properties(el) {
		if p.Err != nil {
			return nil, p.Err
		}
		wire, err := encodeValue(p.Name, reflect.ValueOf(p.Value), p.Type)
		if err != nil {
			return nil, err
		}
		out[p.Name] = wire
	}
	return out, nil
}

func encodeValue(field string, v reflect.Value, t reflect.Type) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}

	switch t {
	case colorType:
		return EncodeColor(v.Interface().(values.Color)), nil
	case vec2Type:
		return EncodeVec2(v.Interface().(values.Vec2)), nil
	case vec3Type:
		return EncodeVec3(v.Interface().(values.Vec3)), nil
	case insetsType:
		return EncodeInsets(v.Interface().(values.Insets)), nil
	case quadType:
		return EncodeQuadBackground(v.Interface().(*values.QuadBackground)), nil
	case tbtType:
		return EncodeTbtQuadBackground(v.Interface().(*values.TbtQuadBackground)), nil
	case iconType:
		return EncodeIcon(v.Interface().(*values.Icon)), nil
	case fontType:
		return EncodeBitmapFont(v.Interface().(*values.BitmapFont)), nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}
		return encodeValue(field, v.Elem(), t.Elem())
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Float32:
		return wireFloat(float32(v.Float())), nil
	case reflect.Float64:
		return v.Float(), nil
	}

	return nil, fmt.Errorf("codec: %s: %w: %s", field, ErrUnsupportedType, t)
}

// DecodeElement overlays the wire object doc onto el, which should be a
// default-constructed instance: fields absent from doc keep their defaults.
// An empty object decodes as nil.
// Keys that match no property are returned, sorted, for the caller to report.
func DecodeElement(doc map[string]any, el element.Element) (unknown []string, err error) {
	if base, ok := element.BaseOf(el); ok {
		if raw, present := doc[KeyElementID]; present {
			s, ok := raw.(string)
			if !ok {
				return nil, malformed(KeyElementID, "string", raw)
			}
			base.ID = s
		}
		if raw, present := doc[KeyChildID]; present {
			s, ok := raw.(string)
			if !ok {
				return nil, malformed(KeyChildID, "string", raw)
			}
			base.Child = s
		}
	}

	fields := element.FieldsOf(el)
	known := make(map[string]struct{}, len(fields)+2)
	known[KeyElementID] = struct{}{}
	known[KeyChildID] = struct{}{}

	for _, f := range fields {
		known[f.Name] = struct{}{}

		raw, present := doc[f.Name]
		if !present {
			continue
		}
		if isNullMarker(raw) {
			raw = nil
		}
		target, err := element.FieldValue(el, f)
		if err != nil {
			return nil, err
		}
		if err := decodeInto(f.Name, target, raw); err != nil {
			return nil, err
		}
	}

	for key := range doc {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown, nil
}

// isNullMarker reports whether raw is an empty object, which formats
// without null use for a nil property.
func isNullMarker(raw any) bool {
	m, ok := raw.(map[string]any)
	return ok && len(m) == 0
}

func decodeInto(field string, target reflect.Value, raw any) error {
	t := target.Type()

	var (
		decoded any
		err     error
		special = true
	)
	switch t {
	case colorType:
		decoded, err = DecodeColor(field, raw)
	case vec2Type:
		decoded, err = DecodeVec2(field, raw)
	case vec3Type:
		decoded, err = DecodeVec3(field, raw)
	case insetsType:
		decoded, err = DecodeInsets(field, raw)
	case quadType:
		decoded, err = DecodeQuadBackground(field, raw)
	case tbtType:
		decoded, err = DecodeTbtQuadBackground(field, raw)
	case iconType:
		decoded, err = DecodeIcon(field, raw)
	case fontType:
		decoded, err = DecodeBitmapFont(field, raw)
	default:
		special = false
	}
	if special {
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(decoded))
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		if raw == nil {
			target.Set(reflect.Zero(t))
			return nil
		}
		nv := reflect.New(t.Elem())
		if err := decodeInto(field, nv.Elem(), raw); err != nil {
			return err
		}
		target.Set(nv)
		return nil

	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return malformed(field, "bool", raw)
		}
		target.SetBool(b)
		return nil

	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return malformed(field, "string", raw)
		}
		target.SetString(s)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt(raw)
		if !ok || target.OverflowInt(n) {
			return malformed(field, "integer", raw)
		}
		target.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := toInt(raw)
		if !ok || n < 0 || target.OverflowUint(uint64(n)) {
			return malformed(field, "unsigned integer", raw)
		}
		target.SetUint(uint64(n))
		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat(raw)
		if !ok || math.IsNaN(f) || target.OverflowFloat(f) {
			return malformed(field, "number", raw)
		}
		target.SetFloat(f)
		return nil
	}

	return fmt.Errorf("codec: %s: %w: %s", field, ErrUnsupportedType, t)
}
