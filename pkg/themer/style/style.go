// Package style defines the style store themes are applied into, and an
// in-memory implementation of it.
//
// The store is keyed by Scope. Widgets created after a theme is applied
// look up their attributes by element id, optional child id and style
// group; widgets that already exist are not restyled.
package style

import (
	"sort"
	"strings"
	"sync"
)

// Scope addresses one selector in the style store.
type Scope struct {
	ElementID string // empty for the style group's root scope
	ChildID   string // empty when the scope is not a sub-element
	Style     string // style group, i.e. the theme name
}

// IsRoot reports whether s is a style group's root scope.
func (s Scope) IsRoot() bool {
	return s.ElementID == ""
}

func (s Scope) String() string {
	parts := make([]string, 0, 3)
	if s.ElementID != "" {
		parts = append(parts, s.ElementID)
	}
	if s.ChildID != "" {
		parts = append(parts, s.ChildID)
	}
	parts = append(parts, s.Style)
	return strings.Join(parts, " / ")
}

// Attributes receives attribute values for one scope. A nil value unsets
// the attribute.
type Attributes interface {
	Set(name string, value any)
}

// Styles is the style store.
type Styles interface {
	Selector(scope Scope) Attributes
	SetDefaultStyle(style string)
}

// AttributeSet is the in-memory Attributes.
type AttributeSet struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewAttributeSet() *AttributeSet {
	return &AttributeSet{values: make(map[string]any)}
}

// Set stores value under name. A nil value is recorded as an explicit unset.
func (a *AttributeSet) Set(name string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[name] = value
}

// Get returns the value for name; ok is false if name was never set.
func (a *AttributeSet) Get(name string) (value any, ok bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	value, ok = a.values[name]
	return value, ok
}

func (a *AttributeSet) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Names returns the attribute names in sorted order.
func (a *AttributeSet) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *AttributeSet) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.values)
}

// Registry is an in-memory Styles.
type Registry struct {
	mu           sync.RWMutex
	selectors    map[Scope]*AttributeSet
	defaultStyle string
}

func NewRegistry() *Registry {
	return &Registry{selectors: make(map[Scope]*AttributeSet)}
}

// Selector returns the attribute set for scope, creating it on first use.
func (r *Registry) Selector(scope Scope) Attributes {
	return r.selector(scope)
}

func (r *Registry) selector(scope Scope) *AttributeSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.selectors[scope]
	if !ok {
		set = NewAttributeSet()
		r.selectors[scope] = set
	}
	return set
}

// Lookup returns the attribute set for scope without creating it.
func (r *Registry) Lookup(scope Scope) (*AttributeSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.selectors[scope]
	return set, ok
}

// Scopes returns every scope with a selector, sorted by their string form.
func (r *Registry) Scopes() []Scope {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scopes := make([]Scope, 0, len(r.selectors))
	for scope := range r.selectors {
		scopes = append(scopes, scope)
	}
	sort.Slice(scopes, func(i, j int) bool {
		return scopes[i].String() < scopes[j].String()
	})
	return scopes
}

func (r *Registry) SetDefaultStyle(style string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultStyle = style
}

func (r *Registry) DefaultStyle() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultStyle
}
