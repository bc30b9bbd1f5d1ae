// Package themer loads themes from files and applies them to a GUI
// toolkit's style store.
//
// A Themer owns one active theme. SetTheme loads a theme file, creating it
// with the discovered element defaults when it does not exist, and applies
// it; only widgets created afterwards pick up the new attributes. The
// active theme can be edited in place and written back with
// SaveActiveTheme.
//
// Themer does no locking of its own. Calls that change the active theme
// must not run concurrently.
package themer

import (
	"log/slog"

	"github.com/BrandonKowalski/themer/pkg/themer/apply"
	"github.com/BrandonKowalski/themer/pkg/themer/constants"
	"github.com/BrandonKowalski/themer/pkg/themer/element"
	_ "github.com/BrandonKowalski/themer/pkg/themer/elements" // registers the built-in element variants
	"github.com/BrandonKowalski/themer/pkg/themer/fonts"
	"github.com/BrandonKowalski/themer/pkg/themer/internal"
	"github.com/BrandonKowalski/themer/pkg/themer/style"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
	"go.uber.org/atomic"
)

// Options configures a Themer.
type Options struct {
	Styles           style.Styles      // Style store themes are applied to (required)
	Fonts            fonts.Converter   // Converts theme fonts; nil skips font attributes
	Registry         *element.Registry // Element variants; defaults to element.Default
	DefaultThemeName string            // Name for bootstrapped themes; defaults to "default"
	LogPath          string            // Full path for the log file; stderr only when empty
	Logger           *slog.Logger      // Overrides the internal logger
}

// Themer holds the active theme and the file it came from.
type Themer struct {
	loader     theme.Loader
	applicator apply.Applicator
	logger     *slog.Logger

	active     atomic.Pointer[theme.Theme]
	activeFile atomic.String
}

// New creates a Themer with no active theme.
func New(options Options) *Themer {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	logger := internal.LoggerOr(options.Logger)

	registry := options.Registry
	if registry == nil {
		registry = element.Default
	}
	if options.Logger != nil {
		registry.SetLogger(options.Logger)
	}

	name := options.DefaultThemeName
	if name == "" {
		name = constants.DefaultThemeName
	}

	return &Themer{
		loader: theme.Loader{
			Registry:    registry,
			DefaultName: name,
			Logger:      logger,
		},
		applicator: apply.Applicator{
			Styles: options.Styles,
			Fonts:  options.Fonts,
			Logger: logger,
		},
		logger: logger,
	}
}

// SetTheme loads the theme at path and applies it. A missing file is
// created with the discovered defaults. On error the active theme and file
// are left as they were.
func (t *Themer) SetTheme(path string) error {
	loaded, result, err := t.loader.Load(path)
	if err != nil {
		t.logger.Error("Failed to set theme", "path", path, "error", err)
		return err
	}

	t.active.Store(loaded)
	t.activeFile.Store(path)

	t.logger.Info("Set theme",
		"path", path,
		"theme", loaded.Name,
		"created", result.Created,
		"added", result.Added)

	t.ApplyTheme()
	return nil
}

// SaveActiveTheme writes the active theme back to its file. It does nothing
// if no theme has been set.
func (t *Themer) SaveActiveTheme() error {
	path := t.activeFile.Load()
	active := t.active.Load()
	if path == "" || active == nil {
		return nil
	}

	if err := theme.Save(active, path); err != nil {
		t.logger.Error("Failed to save theme", "path", path, "error", err)
		return err
	}
	return nil
}

// ActiveTheme returns the active theme, or nil if there is none. The theme
// may be modified in place; call ApplyTheme to push the changes.
func (t *Themer) ActiveTheme() *theme.Theme {
	return t.active.Load()
}

// ActiveThemeFile returns the path of the active theme, or "" if there is
// none.
func (t *Themer) ActiveThemeFile() string {
	return t.activeFile.Load()
}

// ApplyTheme writes the active theme to the style store again without
// touching its file. Changes only affect widgets created afterwards.
func (t *Themer) ApplyTheme() apply.Report {
	active := t.active.Load()
	if active == nil {
		t.logger.Warn("No active theme to apply", "error", ErrNoActiveTheme)
		return apply.Report{}
	}
	return t.applicator.Apply(active)
}

// SetLogLevel sets the minimum level of the internal logger.
func SetLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the internal log level from a string
// (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetInternalLogLevel(internal.ParseLevel(level))
}

// GetInternalLogger returns the logger themer's own packages write to. Its
// level is the one SetLogLevel and SetRawLogLevel control.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}
