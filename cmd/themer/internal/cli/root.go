// Package cli provides the themer command-line interface.
package cli

import (
	"strings"

	"github.com/BrandonKowalski/themer/pkg/themer"
	"github.com/BrandonKowalski/themer/pkg/themer/constants"
	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App represents the themer CLI application.
type App struct {
	Config   *viper.Viper
	Registry *element.Registry
}

// NewApp creates a CLI bound to the default element registry. Flags can
// also be set through THEMER_* environment variables.
func NewApp() *App {
	v := viper.New()
	v.SetEnvPrefix("THEMER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &App{
		Config:   v,
		Registry: element.Default,
	}
}

// CreateRootCommand creates and configures the root command.
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "themer",
		Short: "Create, inspect and apply GUI theme files",
		Long: `themer manages theme files for the GUI toolkit. A theme file holds one
entry per themeable element; missing files are created with defaults.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			themer.SetRawLogLevel(app.Config.GetString("log-level"))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", "error", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("style", constants.DefaultThemeName, "Style group name for new themes")
	_ = app.Config.BindPFlags(rootCmd.PersistentFlags())

	app.addInitCommand(rootCmd)
	app.addShowCommand(rootCmd)
	app.addApplyCommand(rootCmd)
	app.addVariantsCommand(rootCmd)

	return rootCmd
}

func (app *App) loader() *theme.Loader {
	return &theme.Loader{
		Registry:    app.Registry,
		DefaultName: app.Config.GetString("style"),
		Logger:      themer.GetInternalLogger(),
	}
}
