package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BrandonKowalski/themer/pkg/themer/codec"
	"github.com/BrandonKowalski/themer/pkg/themer/constants"
	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/internal"
	"github.com/BurntSushi/toml"
	"github.com/tidwall/pretty"
	"github.com/vmihailenco/msgpack/v5"
)

// Top-level keys of a theme document.
const (
	KeyName     = "name"
	KeyElements = "themedElementMap"
)

// Format is a theme file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// FormatForPath picks the format from the file extension. Anything that is
// not .toml, .msgpack or .mpk is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".msgpack", ".mpk":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

var prettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: true}

// ToDocument converts t to its wire tree.
func ToDocument(t *Theme) (map[string]any, error) {
	elements := make(map[string]any, len(t.Elements))
	for key, el := range t.Elements {
		obj, err := codec.EncodeElement(el)
		if err != nil {
			return nil, &FormatError{Element: key, Err: err}
		}
		elements[key] = obj
	}
	return map[string]any{
		KeyName:     t.Name,
		KeyElements: elements,
	}, nil
}

// Encode serializes t in the given format.
func Encode(t *Theme, format Format) ([]byte, error) {
	doc, err := ToDocument(t)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(tomlDocument(doc)); err != nil {
			return nil, &FormatError{Err: err}
		}
		return buf.Bytes(), nil

	case FormatMsgpack:
		data, err := msgpack.Marshal(doc)
		if err != nil {
			return nil, &FormatError{Err: err}
		}
		return data, nil

	default:
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, &FormatError{Err: err}
		}
		return pretty.PrettyOptions(data, prettyOptions), nil
	}
}

// Decode parses data in the given format. Element keys are resolved against
// reg; keys no variant answers to are logged and dropped.
func Decode(data []byte, format Format, reg *element.Registry, defaultName string, logger *slog.Logger) (*Theme, error) {
	var doc map[string]any

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	if doc == nil {
		return nil, &FormatError{Err: fmt.Errorf("document: %w", ErrNotAnObject)}
	}

	return FromDocument(doc, reg, defaultName, logger)
}

// FromDocument builds a theme from a wire tree. Each stored element is
// decoded over a fresh default instance, so fields the file omits keep
// their defaults.
func FromDocument(doc map[string]any, reg *element.Registry, defaultName string, logger *slog.Logger) (*Theme, error) {
	logger = internal.LoggerOr(logger)
	if defaultName == "" {
		defaultName = constants.DefaultThemeName
	}

	name := defaultName
	if raw, ok := doc[KeyName]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, &FormatError{Err: fmt.Errorf("%s: expected string, got %T", KeyName, raw)}
		}
		name = s
	}

	t := New(name)

	raw, ok := doc[KeyElements]
	if !ok || raw == nil {
		return t, nil
	}
	stored, ok := raw.(map[string]any)
	if !ok {
		return nil, &FormatError{Err: fmt.Errorf("%s: %w", KeyElements, ErrNotAnObject)}
	}

	keys := make([]string, 0, len(stored))
	for key := range stored {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		obj, ok := stored[key].(map[string]any)
		if !ok {
			return nil, &FormatError{Element: key, Err: ErrNotAnObject}
		}

		el, ok := reg.New(key)
		if !ok {
			logger.Warn("Dropping unknown theme element", "element", key)
			continue
		}

		unknown, err := codec.DecodeElement(obj, el)
		if err != nil {
			return nil, &FormatError{Element: key, Err: err}
		}
		if len(unknown) > 0 {
			logger.Warn("Ignoring unknown theme fields", "element", key, "fields", unknown)
		}

		t.Elements[key] = el
	}

	return t, nil
}

// tomlDocument prepares a wire tree for TOML, which has no null. A nil
// element property is written as an empty table, which codec.DecodeElement
// reads back as nil. Nils nested inside values are omitted; for texture
// references absence already means none.
func tomlDocument(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for key, v := range doc {
		if v == nil {
			continue
		}
		stored, ok := v.(map[string]any)
		if key != KeyElements || !ok {
			out[key] = dropNulls(v)
			continue
		}

		elements := make(map[string]any, len(stored))
		for name, raw := range stored {
			obj, ok := raw.(map[string]any)
			if !ok {
				elements[name] = dropNulls(raw)
				continue
			}
			fields := make(map[string]any, len(obj))
			for field, fv := range obj {
				if fv == nil {
					fields[field] = map[string]any{}
					continue
				}
				fields[field] = dropNulls(fv)
			}
			elements[name] = fields
		}
		out[key] = elements
	}
	return out
}

// dropNulls removes nil map entries.
func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if e == nil {
				continue
			}
			out[k] = dropNulls(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = dropNulls(e)
		}
		return out
	default:
		return v
	}
}
