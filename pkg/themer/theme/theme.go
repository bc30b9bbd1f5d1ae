// Package theme holds the theme model, a named set of themed element
// descriptions, and reads and writes it as theme files.
package theme

import (
	"fmt"
	"sort"

	"github.com/BrandonKowalski/themer/pkg/themer/element"
)

// Theme is one complete theme: a style group name and one description per
// element variant, keyed by the variant's type name.
type Theme struct {
	Name     string
	Elements map[string]element.Element
}

func New(name string) *Theme {
	return &Theme{
		Name:     name,
		Elements: make(map[string]element.Element),
	}
}

// FromElements builds a theme from a discovery result.
func FromElements(name string, elements map[string]element.Element) *Theme {
	t := New(name)
	for _, el := range elements {
		t.Put(el)
	}
	return t
}

// Put stores el under its type name, replacing any previous entry.
func (t *Theme) Put(el element.Element) {
	t.ensureElements()
	t.Elements[element.TypeName(el)] = el
}

func (t *Theme) ensureElements() {
	if t.Elements == nil {
		t.Elements = make(map[string]element.Element)
	}
}

func (t *Theme) Get(key string) (element.Element, bool) {
	el, ok := t.Elements[key]
	return el, ok
}

func (t *Theme) Len() int {
	return len(t.Elements)
}

// Keys returns the element keys in sorted order.
func (t *Theme) Keys() []string {
	keys := make([]string, 0, len(t.Elements))
	for k := range t.Elements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge inserts every default whose key the theme lacks and returns the
// inserted keys, sorted. Existing entries are never replaced.
func (t *Theme) Merge(defaults map[string]element.Element) []string {
	t.ensureElements()
	var added []string
	for key, el := range defaults {
		if _, ok := t.Elements[key]; ok {
			continue
		}
		t.Elements[key] = el
		added = append(added, key)
	}
	sort.Strings(added)
	return added
}

// Validate checks that every key is its element's type name.
func (t *Theme) Validate() error {
	for key, el := range t.Elements {
		if el == nil {
			return fmt.Errorf("theme %q: element %q is nil", t.Name, key)
		}
		if name := element.TypeName(el); name != key {
			return fmt.Errorf("theme %q: element %q is keyed as %q", t.Name, name, key)
		}
	}
	return nil
}
