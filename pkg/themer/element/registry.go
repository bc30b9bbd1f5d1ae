package element

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/BrandonKowalski/themer/pkg/themer/internal"
)

// Factory constructs a default instance of one variant.
type Factory func() Element

// DiscoveryError reports a variant that could not be default-constructed.
// It is logged and the variant is skipped; discovery never fails as a whole.
type DiscoveryError struct {
	Factory int // registration index
	Err     error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("element factory #%d: %v", e.Factory, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// Registry holds the factories of every known variant.
type Registry struct {
	mu        sync.Mutex
	factories []Factory
	index     map[string]Factory
	logger    *slog.Logger
}

// Default is the process-wide registry that variants register with from
// their package init functions.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds f to the Default registry.
func Register(f Factory) {
	Default.Register(f)
}

// SetLogger overrides the internal logger for discovery messages.
func (r *Registry) SetLogger(l *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}

// Register adds a variant factory. It panics if f is nil.
func (r *Registry) Register(f Factory) {
	if f == nil {
		panic("element: Register factory is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = append(r.factories, f)
	r.index = nil
}

// Len returns the number of registered factories.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.factories)
}

// Discover creates one default instance of every registered variant, keyed
// by type name. Instances are fresh on every call. Variants that cannot be
// constructed are skipped with a warning.
func (r *Registry) Discover() map[string]Element {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger := internal.LoggerOr(r.logger)
	logger.Debug("Searching for theme elements", "factories", len(r.factories))
	start := time.Now()

	found := make(map[string]Element, len(r.factories))
	index := make(map[string]Factory, len(r.factories))

	for i, f := range r.factories {
		el, err := construct(f)
		if err != nil {
			logger.Warn("Skipping theme element", "error", &DiscoveryError{Factory: i, Err: err})
			continue
		}

		name := TypeName(el)
		if _, dup := found[name]; dup {
			logger.Warn("Duplicate theme element; later registration wins", "element", name)
		}
		found[name] = el
		index[name] = f
	}

	r.index = index

	logger.Debug("Discovered theme elements",
		"count", len(found),
		"elements", sortedKeys(found),
		"took", time.Since(start))

	return found
}

// New returns a fresh default instance of the named variant.
func (r *Registry) New(name string) (Element, bool) {
	r.mu.Lock()
	index := r.index
	r.mu.Unlock()

	if index == nil {
		r.Discover()
		r.mu.Lock()
		index = r.index
		r.mu.Unlock()
	}

	f, ok := index[name]
	if !ok {
		return nil, false
	}
	el, err := construct(f)
	if err != nil {
		return nil, false
	}
	return el, true
}

func construct(f Factory) (el Element, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			el = nil
			err = fmt.Errorf("factory panicked: %v", rec)
		}
	}()

	el = f()
	if el == nil {
		return nil, errors.New("factory returned nil")
	}

	v := reflect.ValueOf(el)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%T is not a non-nil pointer to a struct", el)
	}
	return el, nil
}

func sortedKeys(m map[string]Element) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
