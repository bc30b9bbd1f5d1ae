package element

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// TagName is the struct tag holding a field's style key.
const TagName = "style"

// ErrUnexported is returned for tagged fields reflection cannot read.
var ErrUnexported = errors.New("field is not exported")

// Field describes one styleable property of a variant.
type Field struct {
	Name     string       // style key, from the struct tag
	GoName   string       // Go field name
	Index    []int        // index path for reflect.Value.FieldByIndex
	Type     reflect.Type // declared type
	Exported bool
}

// Property is a field paired with its current value on one instance.
type Property struct {
	Field
	Value any
	Err   error // non-nil when the value could not be read
}

// FieldAccessError reports a property that could not be read or written.
type FieldAccessError struct {
	Element string
	Field   string
	Err     error
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("element %s: field %s: %v", e.Element, e.Field, e.Err)
}

func (e *FieldAccessError) Unwrap() error {
	return e.Err
}

var fieldCache sync.Map // reflect.Type -> []Field

// Fields returns the property table for a variant type. t may be the struct
// type or a pointer to it. Tables are built once per type.
func Fields(t reflect.Type) []Field {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]Field)
	}

	fields := collectFields(t)
	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]Field)
}

// FieldsOf is Fields for an instance.
func FieldsOf(el Element) []Field {
	return Fields(reflect.TypeOf(el))
}

type depthField struct {
	Field
	depth int
}

func collectFields(t reflect.Type) []Field {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var found []depthField
	walkFields(t, nil, 0, &found)

	// Shallower fields shadow deeper ones with the same key, as Go's own
	// promotion rules would.
	byName := make(map[string]int, len(found))
	out := make([]Field, 0, len(found))
	depths := make([]int, 0, len(found))
	for _, f := range found {
		if i, ok := byName[f.Name]; ok {
			if f.depth < depths[i] {
				out[i] = f.Field
				depths[i] = f.depth
			}
			continue
		}
		byName[f.Name] = len(out)
		out = append(out, f.Field)
		depths = append(depths, f.depth)
	}
	return out
}

func walkFields(t reflect.Type, prefix []int, depth int, found *[]depthField) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		tag := sf.Tag.Get(TagName)

		if sf.Anonymous && tag == "" {
			if sf.Type == baseType {
				continue
			}
			if sf.Type.Kind() == reflect.Struct {
				walkFields(sf.Type, index, depth+1, found)
			}
			continue
		}

		if tag == "" || tag == "-" {
			continue
		}

		*found = append(*found, depthField{
			Field: Field{
				Name:     tag,
				GoName:   sf.Name,
				Index:    index,
				Type:     sf.Type,
				Exported: sf.IsExported(),
			},
			depth: depth,
		})
	}
}

// Properties reads every property of el. A property that cannot be read
// carries a *FieldAccessError instead of a value; the rest are unaffected.
func Properties(el Element) []Property {
	fields := FieldsOf(el)
	props := make([]Property, 0, len(fields))

	v := reflect.ValueOf(el)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	name := TypeName(el)
	for _, f := range fields {
		p := Property{Field: f}
		switch {
		case v.Kind() != reflect.Struct:
			p.Err = &FieldAccessError{Element: name, Field: f.Name, Err: errors.New("nil element")}
		case !f.Exported:
			p.Err = &FieldAccessError{Element: name, Field: f.Name, Err: ErrUnexported}
		default:
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil {
				p.Err = &FieldAccessError{Element: name, Field: f.Name, Err: err}
			} else {
				p.Value = fv.Interface()
			}
		}
		props = append(props, p)
	}
	return props
}

// FieldValue returns the settable value of f on el. el must be a non-nil
// pointer to a struct.
func FieldValue(el Element, f Field) (reflect.Value, error) {
	v := reflect.ValueOf(el)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, &FieldAccessError{Element: TypeName(el), Field: f.Name, Err: errors.New("element is not a pointer")}
	}
	if !f.Exported {
		return reflect.Value{}, &FieldAccessError{Element: TypeName(el), Field: f.Name, Err: ErrUnexported}
	}
	fv, err := v.Elem().FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}, &FieldAccessError{Element: TypeName(el), Field: f.Name, Err: err}
	}
	return fv, nil
}
